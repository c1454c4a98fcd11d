// Package container provides the IoC container that takes over once the
// bootstrap phase closes.
//
// # Overview
//
// The container manages the application's long-lived services. It supports
// transient bindings, singletons, pre-built instances and aliases, resolved
// either untyped via Make or typed via the generic Resolve helper. Because
// Go has no runtime constructor reflection, auto-wiring is replaced by
// explicit factory functions.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Close the bootstrap registry into it: boot.Close(c)
//     — close listeners promote bootstrap singletons via c.Instance(...)
//  4. Boot: registry.Boot() — safe to resolve everything after this
//
// # Bindings
//
//	// Transient — new value every Make()
//	c.Bind("uuid", func(c *container.Container) any { return newUUID() })
//
//	// Singleton — created once, reused
//	c.Singleton("router", func(c *container.Container) any {
//	    return routing.New()
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("config", "configuration")
//
// # Resolving
//
//	raw := c.Make("router")
//	router := container.Resolve[*routing.Router](c, "router")
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("mailer", func(c *container.Container) any {
//	        cfg := container.Resolve[*config.Config](c, "config")
//	        return mail.New(cfg)
//	    })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
package container
