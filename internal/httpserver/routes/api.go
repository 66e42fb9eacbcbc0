package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/mw"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	api := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))

	api.Get("/api/search", handlers.Search(d))
	api.Get("/api/categories", handlers.Categories(d))
	api.Get("/api/user-agents", handlers.UserAgents(d))
	api.Get("/api/user-agents/{id}", handlers.UserAgent(d))
	api.Get("/api/advice", handlers.AdviceList(d))
	api.Get("/api/advice/{id}", handlers.Advice(d))
	api.Get("/api/my-agent", handlers.MyAgent(d))
	api.Post("/api/contact", handlers.Contact(d))
}
