package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
)

// Metrics exposes the Prometheus registry.
func Metrics(deps.Deps) http.Handler {
	return promhttp.Handler()
}
