package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() { Register(registerForms, middleware.NoCache) }

func registerForms(r chi.Router, d deps.Deps) {
	r.Get("/suggestions/form", handlers.SuggestionForm(d))
	r.Post("/suggestions/submit", handlers.SuggestionSubmit(d))
	r.Post("/admin/access", handlers.AdminAccess(d))
	r.Post("/admin/notify", handlers.AdminNotify(d))
	r.Post("/subscribe", handlers.Subscribe(d))
}
