package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
)

// Registrar mounts one group of routes. Per-route middlewares are built
// inside the registrar since most of them need d.
type Registrar func(r chi.Router, d deps.Deps)

var registry []Registrar

// Register is called from the init() of each route file.
func Register(reg Registrar) {
	registry = append(registry, reg)
}

// RegisterAll is called once from httpserver.New, after the global
// middlewares are installed.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, reg := range registry {
		reg(r, d)
	}
}
