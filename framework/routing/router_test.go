package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-bootstrap/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	r := routing.New()
	r.Get("/a", okHandler)
	r.Post("/a", okHandler)
	r.Put("/a", okHandler)
	r.Patch("/a", okHandler)
	r.Delete("/a", okHandler)

	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		if rr := do(t, r, method, "/a"); rr.Code != http.StatusOK {
			t.Errorf("%s /a: got %d, want 200", method, rr.Code)
		}
	}
}

func TestRouter_MethodNotRegistered(t *testing.T) {
	r := routing.New()
	r.Get("/only-get", okHandler)

	if rr := do(t, r, http.MethodPost, "/only-get"); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /only-get: got %d, want 405", rr.Code)
	}
}

// ── Groups & Prefixes ─────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/users", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/v1/users"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/v1/users: got %d, want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/users"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /users: got %d, want 404", rr.Code)
	}
}

func TestRouter_GroupMiddlewareScoped(t *testing.T) {
	r := routing.New()
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	r.Group(func(protected *routing.Router) {
		protected.Middleware(deny)
		protected.Get("/secret", okHandler)
	})
	r.Get("/public", okHandler)

	if rr := do(t, r, http.MethodGet, "/secret"); rr.Code != http.StatusUnauthorized {
		t.Errorf("GET /secret: got %d, want 401", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/public"); rr.Code != http.StatusOK {
		t.Errorf("GET /public: got %d, want 200", rr.Code)
	}
}

// ── Params ────────────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/42")
	if rr.Body.String() != "42" {
		t.Errorf("param: got %q, want '42'", rr.Body.String())
	}
}
