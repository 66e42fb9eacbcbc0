package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	loginLimit := mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.LoginBurst,
		RefillPerMin: d.LoginPerMin,
		MaxEntries:   10000,
		TrustProxy:   d.TrustProxy,
	}, d.Logger)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))

		r.With(loginLimit).Post("/login", handlers.AdminLogin(d))
		r.Post("/logout", handlers.AdminLogout(d))

		r.Group(func(r chi.Router) {
			r.Use(mw.AdminAuth(d.Sessions, d.Logger))

			r.Get("/user-agents", handlers.AdminListUserAgents(d))
			r.Post("/user-agents", handlers.AdminCreateUserAgent(d))
			r.Put("/user-agents/{id}", handlers.AdminUpdateUserAgent(d))
			r.Delete("/user-agents/{id}", handlers.AdminDeleteUserAgent(d))

			r.Get("/articles", handlers.AdminListArticles(d))
			r.Post("/articles", handlers.AdminCreateArticle(d))
			r.Put("/articles/{id}", handlers.AdminUpdateArticle(d))
			r.Delete("/articles/{id}", handlers.AdminDeleteArticle(d))

			r.Get("/settings", handlers.AdminGetSettings(d))
			r.Put("/settings", handlers.AdminSaveSettings(d))
			r.Put("/password", handlers.AdminChangePassword(d))

			r.Get("/auto-update", handlers.AdminGetAutoUpdate(d))
			r.Put("/auto-update", handlers.AdminSaveAutoUpdate(d))
			r.Post("/auto-update/run", handlers.AdminRunAutoUpdate(d))
		})
	})
}
