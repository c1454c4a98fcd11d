package bootstrap

import (
	"fmt"
	"sync"
)

// ── Role contracts ───────────────────────────────────────────────────────────

// Registry is the write side: bootstrap participants install factories and
// subscribe to the close event through it.
type Registry interface {
	// Register installs supplier under key, replacing any prior supplier.
	// Panics if an instance for key has already been materialized — a
	// supplier may only be replaced before its first use.
	Register(key string, supplier InstanceSupplier)

	// RegisterIfAbsent installs supplier only when key has no registration;
	// otherwise it is a no-op.
	RegisterIfAbsent(key string, supplier InstanceSupplier)

	// IsRegistered reports whether a supplier is installed for key.
	IsRegistered(key string) bool

	// RegisteredSupplier returns the currently installed supplier for key.
	RegisteredSupplier(key string) (InstanceSupplier, bool)

	// AddCloseListener appends a listener to be invoked when Close fires.
	// Duplicates are allowed and each is invoked independently.
	AddCloseListener(listener CloseListener)
}

// Context is the read side: participants resolve instances through it, and
// factories receive it so they can resolve other keys while building.
type Context interface {
	// Get returns the instance for key, materializing it on first use.
	// Returns an error naming the key when no supplier is registered.
	Get(key string) (any, error)

	// GetOrElse is like Get but returns other when key is unregistered.
	// The fallback path never invokes any factory.
	GetOrElse(key string, other any) any

	// GetOrElseSupply is like GetOrElse but computes the fallback lazily.
	GetOrElseSupply(key string, other func() any) any

	// GetOrElseThrow is like Get but the caller supplies the error returned
	// when key is unregistered.
	GetOrElseThrow(key string, errFn func() error) (any, error)

	// IsRegistered reports whether a supplier is installed for key.
	IsRegistered(key string) bool
}

// Initializer seeds registrations before the host prepares its environment.
// Libraries expose one so applications can opt into their bootstrap services.
type Initializer func(registry Registry)

// ── Bootstrap ────────────────────────────────────────────────────────────────

// Bootstrap is the concrete registry — one value implements both the
// Registry write side and the Context read side, like the container serves
// both binding and resolution.
//
// It is safe for concurrent use. Factories run outside the internal lock, so
// a factory may resolve other keys on the same goroutine; concurrent first
// resolutions of the same singleton key still run the factory exactly once.
type Bootstrap struct {
	mu sync.Mutex

	// key → registered supplier
	suppliers map[string]InstanceSupplier

	// key → materialized singleton. Presence marks "materialized", so a
	// factory that legitimately returns nil is still invoked only once.
	instances map[string]any

	// key → marker closed when an in-flight singleton construction finishes
	building map[string]chan struct{}

	listeners []CloseListener
}

var (
	_ Registry = (*Bootstrap)(nil)
	_ Context  = (*Bootstrap)(nil)
)

// New creates an empty bootstrap registry.
func New() *Bootstrap {
	return &Bootstrap{
		suppliers: make(map[string]InstanceSupplier),
		instances: make(map[string]any),
		building:  make(map[string]chan struct{}),
	}
}

// ── Registration ─────────────────────────────────────────────────────────────

// Register installs supplier under key, replacing any prior supplier.
// Panics once an instance for key exists: replacement is only legal before
// first use.
//
//	boot.Register("config", bootstrap.NewSupplier(func(ctx bootstrap.Context) any {
//	    return config.Load()
//	}))
func (b *Bootstrap) Register(key string, supplier InstanceSupplier) {
	b.register(key, supplier, true)
}

// RegisterIfAbsent installs supplier only when key has no registration.
//
//	boot.RegisterIfAbsent("clock", bootstrap.SupplierOf(time.Now()))
func (b *Bootstrap) RegisterIfAbsent(key string, supplier InstanceSupplier) {
	b.register(key, supplier, false)
}

func (b *Bootstrap) register(key string, supplier InstanceSupplier, replace bool) {
	if key == "" {
		panic("bootstrap: key must not be empty")
	}
	if supplier.zero() {
		panic("bootstrap: supplier must not be the zero value")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	_, registered := b.suppliers[key]
	if replace || !registered {
		if _, created := b.instances[key]; created {
			panic(fmt.Sprintf("bootstrap: [%s] has already been created", key))
		}
		b.suppliers[key] = supplier
	}
}

// IsRegistered reports whether a supplier is installed for key, regardless
// of whether its instance has been materialized yet.
func (b *Bootstrap) IsRegistered(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.suppliers[key]
	return ok
}

// RegisteredSupplier returns the supplier currently installed for key.
func (b *Bootstrap) RegisteredSupplier(key string) (InstanceSupplier, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.suppliers[key]
	return s, ok
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Get returns the instance for key, materializing it on first use.
func (b *Bootstrap) Get(key string) (any, error) {
	return b.GetOrElseThrow(key, func() error {
		return fmt.Errorf("bootstrap: [%s] has not been registered", key)
	})
}

// GetOrElse returns the instance for key, or other when unregistered.
func (b *Bootstrap) GetOrElse(key string, other any) any {
	return b.GetOrElseSupply(key, func() any { return other })
}

// GetOrElseSupply returns the instance for key, or other() when unregistered.
func (b *Bootstrap) GetOrElseSupply(key string, other func() any) any {
	supplier, ok := b.lookup(key)
	if !ok {
		return other()
	}
	return b.resolve(key, supplier)
}

// GetOrElseThrow returns the instance for key, or errFn() when unregistered.
func (b *Bootstrap) GetOrElseThrow(key string, errFn func() error) (any, error) {
	supplier, ok := b.lookup(key)
	if !ok {
		return nil, errFn()
	}
	return b.resolve(key, supplier), nil
}

func (b *Bootstrap) lookup(key string) (InstanceSupplier, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.suppliers[key]
	return s, ok
}

// resolve materializes the value for key using supplier.
//
// Prototype suppliers run unconditionally outside the lock. Singleton
// suppliers are serialized per key with an in-flight marker: the first
// caller runs the factory (also outside the lock, so the factory can
// re-enter the context), later callers wait on the marker and then read the
// cached instance.
func (b *Bootstrap) resolve(key string, supplier InstanceSupplier) any {
	if supplier.Scope() == Prototype {
		return supplier.Get(b)
	}

	for {
		b.mu.Lock()
		if instance, ok := b.instances[key]; ok {
			b.mu.Unlock()
			return instance
		}
		done, inFlight := b.building[key]
		if !inFlight {
			done = make(chan struct{})
			b.building[key] = done
			b.mu.Unlock()
			return b.build(key, supplier, done)
		}
		b.mu.Unlock()

		// Another caller is constructing this key; wait and re-read.
		<-done
	}
}

// build runs the factory for a singleton key and caches the result. If the
// factory panics the marker is still released without caching, so the next
// caller retries construction.
func (b *Bootstrap) build(key string, supplier InstanceSupplier, done chan struct{}) (instance any) {
	built := false
	defer func() {
		b.mu.Lock()
		if built {
			b.instances[key] = instance
		}
		delete(b.building, key)
		b.mu.Unlock()
		close(done)
	}()

	instance = supplier.Get(b)
	built = true
	return instance
}

// ── Generics helpers ─────────────────────────────────────────────────────────

// Resolve resolves key from ctx and type-asserts the result.
//
//	cfg, err := bootstrap.Resolve[*config.Config](boot, "config")
func Resolve[T any](ctx Context, key string) (T, error) {
	instance, err := ctx.Get(key)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("bootstrap: Resolve[%T]: [%s] resolved to %T", zero, key, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. Useful inside factories
// and close listeners, where a miss is a wiring bug.
func MustResolve[T any](ctx Context, key string) T {
	typed, err := Resolve[T](ctx, key)
	if err != nil {
		panic(err)
	}
	return typed
}
