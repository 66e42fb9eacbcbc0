package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/mw"
)

func init() { Register(registerOps) }

// registerOps mounts the probes and the reload trigger. Everything but
// /healthz is limited to AllowedCIDRS.
func registerOps(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))

	internal := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	internal.Get("/readyz", handlers.Readyz(d))
	internal.Get("/infra", handlers.Infra(d))
	internal.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/reload", handlers.Reload(d))
}
