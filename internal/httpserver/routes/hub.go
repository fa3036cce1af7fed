package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() {
	Register(registerHub, middleware.NoCache)
	Register(registerStatic)
}

func registerHub(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Page(d))
	r.Post("/session", handlers.Session(d))
	r.Get("/tabs/{tab}", handlers.Tab(d))
}

func registerStatic(r chi.Router, d deps.Deps) {
	r.Method("GET", "/static/*", handlers.Static(d))
}
