// Package bootstrap provides a small, type-keyed instance registry for the
// window of time before the full IoC container exists.
//
// # Why a bootstrap registry?
//
// Some services are needed while the application is still assembling itself —
// loading configuration, preparing the environment — and they may be expensive
// to construct or need to be shared across several bootstrap participants.
// The container can't hold them yet because the container isn't ready. The
// bootstrap registry fills that gap: factories are registered up front, values
// are materialized lazily on first use, and when the container is finally
// prepared the registry fires a one-shot close event so participants can
// promote their instances into it.
//
// # Lifecycle
//
//  1. Create: boot := bootstrap.New()
//  2. Register factories: boot.Register("config", bootstrap.NewSupplier(...))
//  3. Resolve lazily: cfg, err := boot.Get("config")
//  4. Close once the container is prepared: boot.Close(c)
//
// # Registering
//
//	// Replace any prior registration (only legal before first use)
//	boot.Register("config", bootstrap.NewSupplier(func(ctx bootstrap.Context) any {
//	    return config.Load()
//	}))
//
//	// Keep an existing registration if one is present
//	boot.RegisterIfAbsent("clock", bootstrap.SupplierOf(time.Now()))
//
//	// Fresh value on every resolution
//	boot.Register("request-id", bootstrap.SupplierFrom(newID).WithScope(bootstrap.Prototype))
//
// # Resolving
//
//	raw, err := boot.Get("config")             // error if unregistered
//	cfg := boot.GetOrElse("config", defaults)  // fallback if unregistered
//
//	// Generic (no type assertion required)
//	cfg, err := bootstrap.Resolve[*config.Config](boot, "config")
//
// A factory receives the read-side Context and may resolve other keys from
// it; nested resolution on the same goroutine is safe as long as the keys do
// not form a cycle.
//
// # Close
//
//	boot.AddCloseListener(func(ev bootstrap.ClosedEvent) {
//	    cfg := bootstrap.MustResolve[*config.Config](ev.Bootstrap, "config")
//	    ev.App.Instance("config", cfg)
//	})
//	boot.Close(app) // listeners run synchronously, in order, exactly once
package bootstrap
