package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/km-arc/go-bootstrap/framework/app"
	"github.com/km-arc/go-bootstrap/framework/bootstrap"
	"github.com/km-arc/go-bootstrap/framework/config"
)

func TestNew_PromotesBootstrapSingletons(t *testing.T) {
	application, err := app.New([]string{"--debug", "serve"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, key := range []string{app.ArgumentsKey, app.ConfigKey, app.LoggerKey} {
		if !application.Resolved(key) {
			t.Errorf("[%s] should be promoted into the container as an instance", key)
		}
	}

	args := application.Args()
	if !args.ContainsOption("debug") {
		t.Error("promoted arguments should carry the parsed options")
	}
	if got := args.NonOptionArgs(); len(got) != 1 || got[0] != "serve" {
		t.Errorf("NonOptionArgs: got %v, want [serve]", got)
	}
}

func TestNew_ConfigAlias(t *testing.T) {
	application, err := app.New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if application.Make("configuration") != application.Make("config") {
		t.Error("'configuration' should alias 'config'")
	}
}

func TestNew_ConfigOptionSelectsOverlayFile(t *testing.T) {
	yamlFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(yamlFile, []byte("app:\n  name: Overlaid\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	application, err := app.New([]string{"--config=" + yamlFile})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := application.Config().App.Name; got != "Overlaid" {
		t.Errorf("App.Name: got %q, want the overlay value", got)
	}
}

func TestNew_InitializerRegistrationWins(t *testing.T) {
	custom := &config.Config{
		App: config.AppConfig{Name: "FromInitializer", Env: "testing"},
		Log: config.LogConfig{Level: "error"},
	}

	application, err := app.New(nil, func(registry bootstrap.Registry) {
		registry.Register(app.ConfigKey, bootstrap.SupplierOf(custom))
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if application.Config() != custom {
		t.Error("an initializer's config supplier should beat the kernel default")
	}
	if !application.IsTesting() {
		t.Error("environment should come from the initializer's config")
	}
}

func TestNew_BadArguments_Error(t *testing.T) {
	if _, err := app.New([]string{"--=broken"}); err == nil {
		t.Error("malformed options should fail New")
	}
}

func TestRouter_BoundByFrameworkProvider(t *testing.T) {
	application, err := app.New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if application.Router() == nil {
		t.Error("router should be resolvable from the container")
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")

	application, err := app.New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !application.IsProduction() || application.IsLocal() {
		t.Errorf("Environment: got %q, want production", application.Environment())
	}
	if application.IsDebug() {
		t.Error("IsDebug should reflect APP_DEBUG=false")
	}
}
