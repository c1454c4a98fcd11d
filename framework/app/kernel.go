package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-bootstrap/framework/arguments"
	"github.com/km-arc/go-bootstrap/framework/bootstrap"
	"github.com/km-arc/go-bootstrap/framework/config"
	"github.com/km-arc/go-bootstrap/framework/container"
	"github.com/km-arc/go-bootstrap/framework/logging"
	"github.com/km-arc/go-bootstrap/framework/providers"
	"github.com/km-arc/go-bootstrap/framework/routing"
)

// Bootstrap keys for the services the kernel materializes before the
// container exists. The same names are used for the container bindings the
// close listener promotes them to.
const (
	ArgumentsKey = "arguments"
	ConfigKey    = "config"
	LoggerKey    = "logger"
)

// Application is the top-level application. It embeds the IoC Container so
// user code can call app.Bind(), app.Singleton(), app.Make() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New runs the bootstrap phase and returns a prepared application:
//
//  1. Create the bootstrap registry and parse the process arguments.
//  2. Run the caller's bootstrap initializers, then seed default suppliers
//     for config and logger (RegisterIfAbsent — an initializer's own
//     registration wins).
//  3. Prepare the environment, materializing config and logger lazily.
//     A "--config=path" option overlays a YAML file onto the env config.
//  4. Prepare the container and framework providers, promote the
//     materialized bootstrap singletons into the container, and close the
//     bootstrap registry.
//
//	application, err := app.New(os.Args[1:])
//	application.Router().Get("/", handler)
//	application.Run()
func New(args []string, initializers ...bootstrap.Initializer) (*Application, error) {
	boot := bootstrap.New()

	parsed, err := arguments.Parse(args...)
	if err != nil {
		return nil, err
	}
	boot.Register(ArgumentsKey, bootstrap.SupplierOf(parsed))

	for _, initializer := range initializers {
		initializer(boot)
	}

	boot.RegisterIfAbsent(ConfigKey, bootstrap.NewSupplier(loadConfig))
	boot.RegisterIfAbsent(LoggerKey, bootstrap.NewSupplier(buildLogger))

	// Environment preparation: first use of the shared singletons.
	cfg, err := bootstrap.Resolve[*config.Config](boot, ConfigKey)
	if err != nil {
		return nil, err
	}
	log := bootstrap.MustResolve[zerolog.Logger](boot, LoggerKey)

	c := container.New()
	registry := container.NewProviderRegistry(c)
	registry.Register(&providers.RoutingServiceProvider{})

	// Hand the bootstrap singletons over to the container, then retire the
	// bootstrap registry.
	boot.AddCloseListener(func(ev bootstrap.ClosedEvent) {
		ev.App.Instance(ArgumentsKey, bootstrap.MustResolve[*arguments.Arguments](ev.Bootstrap, ArgumentsKey))
		ev.App.Instance(ConfigKey, bootstrap.MustResolve[*config.Config](ev.Bootstrap, ConfigKey))
		ev.App.Instance(LoggerKey, bootstrap.MustResolve[zerolog.Logger](ev.Bootstrap, LoggerKey))
		ev.App.Alias(ConfigKey, "configuration")
	})
	boot.Close(c)

	log.Debug().Str("env", cfg.App.Env).Msg("bootstrap phase closed")

	return &Application{Container: c, Providers: registry}, nil
}

// loadConfig is the default config supplier. It resolves the parsed process
// arguments from the bootstrap context: a "--config=path" option selects a
// YAML overlay file (last occurrence wins). A broken overlay file panics —
// starting with half-applied configuration is worse than not starting.
func loadConfig(ctx bootstrap.Context) any {
	args := bootstrap.MustResolve[*arguments.Arguments](ctx, ArgumentsKey)
	if paths := args.OptionValues("config"); len(paths) > 0 {
		cfg, err := config.LoadFile(paths[len(paths)-1])
		if err != nil {
			panic(err)
		}
		return cfg
	}
	return config.Load()
}

// buildLogger is the default logger supplier. It resolves config through the
// bootstrap context, so whichever config supplier won registration feeds it.
func buildLogger(ctx bootstrap.Context) any {
	cfg := bootstrap.MustResolve[*config.Config](ctx, ConfigKey)
	return logging.New(cfg)
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, ConfigKey)
}

// Logger resolves the application logger from the container.
func (a *Application) Logger() zerolog.Logger {
	return container.Resolve[zerolog.Logger](a.Container, LoggerKey)
}

// Args resolves the parsed process arguments from the container.
func (a *Application) Args() *arguments.Arguments {
	return container.Resolve[*arguments.Arguments](a.Container, ArgumentsKey)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	log := a.Logger()

	addr := ":" + cfg.App.Port
	log.Info().Str("addr", addr).Str("env", cfg.App.Env).Msgf("%s listening", cfg.App.Name)
	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
func (a *Application) Version() string     { return "0.1.0" }
