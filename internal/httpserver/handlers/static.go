package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
)

// Static serves the embedded assets under /static/.
func Static(d deps.Deps) http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(d.Assets))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
