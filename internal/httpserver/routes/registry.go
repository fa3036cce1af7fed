// Package routes collects the route groups mounted on the router.
// Each file registers its group from init; server.NewRouter mounts them all.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type group struct {
	reg Registrar
	mws []Middleware
}

var groups []group

// Register queues a route group. mws apply to every route of the group only.
func Register(reg Registrar, mws ...Middleware) {
	groups = append(groups, group{reg: reg, mws: mws})
}

// RegisterAll mounts every queued group on r in registration order.
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, g := range groups {
		r.Group(func(sub chi.Router) {
			if len(g.mws) > 0 {
				sub.Use(g.mws...)
			}
			g.reg(sub, d)
		})
	}
}
