package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/km-arc/go-bootstrap/framework/app"
	"github.com/km-arc/go-bootstrap/framework/bootstrap"
	"github.com/km-arc/go-bootstrap/framework/routing"
)

func main() {
	// An initializer can seed its own bootstrap services before the kernel
	// prepares the environment. Here: a build identifier shared by every
	// bootstrap participant and promoted nowhere — it dies with the phase.
	application, err := app.New(os.Args[1:], func(registry bootstrap.Registry) {
		registry.RegisterIfAbsent("build", bootstrap.SupplierOf("dev"))
	})
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{
			"app": application.Config().App.Name,
			"env": application.Environment(),
		})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/args", func(w http.ResponseWriter, req *http.Request) {
			args := application.Args()
			writeJSON(w, map[string]any{
				"options":    args.OptionNames(),
				"nonOptions": args.NonOptionArgs(),
			})
		})

		api.Get("/options/{name}", func(w http.ResponseWriter, req *http.Request) {
			name := routing.Param(req, "name")
			args := application.Args()
			if !args.ContainsOption(name) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeJSON(w, map[string]any{"values": args.OptionValues(name)})
		})
	})

	application.Run()
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
