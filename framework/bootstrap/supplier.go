package bootstrap

// ── Scope ────────────────────────────────────────────────────────────────────

// Scope controls how often a supplier's factory runs.
type Scope int

const (
	// Singleton runs the factory at most once and caches the result for the
	// registry's lifetime. This is the default scope.
	Singleton Scope = iota

	// Prototype runs the factory on every resolution; nothing is cached.
	Prototype
)

// String returns "singleton" or "prototype".
func (s Scope) String() string {
	switch s {
	case Singleton:
		return "singleton"
	case Prototype:
		return "prototype"
	default:
		return "unknown"
	}
}

// ── InstanceSupplier ─────────────────────────────────────────────────────────

// Factory builds a value on demand. The Context argument lets a factory
// resolve other bootstrap keys while constructing its own value.
type Factory func(ctx Context) any

// InstanceSupplier pairs a Factory with a Scope. Suppliers are immutable
// values: WithScope returns a new supplier and never mutates the receiver.
// The zero value is invalid; build suppliers with NewSupplier, SupplierOf
// or SupplierFrom.
type InstanceSupplier struct {
	factory Factory
	scope   Scope
}

// NewSupplier wraps a factory as a Singleton-scoped supplier.
func NewSupplier(factory Factory) InstanceSupplier {
	return InstanceSupplier{factory: factory}
}

// SupplierOf wraps an already-built value. The context argument is ignored.
//
//	boot.Register("arguments", bootstrap.SupplierOf(args))
func SupplierOf(instance any) InstanceSupplier {
	return NewSupplier(func(Context) any { return instance })
}

// SupplierFrom adapts a zero-argument producer. A nil producer yields a nil
// instance rather than panicking.
//
//	boot.Register("clock", bootstrap.SupplierFrom(time.Now))
func SupplierFrom(producer func() any) InstanceSupplier {
	return NewSupplier(func(Context) any {
		if producer == nil {
			return nil
		}
		return producer()
	})
}

// Get invokes the underlying factory.
func (s InstanceSupplier) Get(ctx Context) any { return s.factory(ctx) }

// Scope returns the scope the supplier was built with.
func (s InstanceSupplier) Scope() Scope { return s.scope }

// WithScope returns a copy of the supplier with an updated scope.
//
//	proto := bootstrap.SupplierFrom(newID).WithScope(bootstrap.Prototype)
func (s InstanceSupplier) WithScope(scope Scope) InstanceSupplier {
	return InstanceSupplier{factory: s.factory, scope: scope}
}

// zero reports whether the supplier was never initialized.
func (s InstanceSupplier) zero() bool { return s.factory == nil }
