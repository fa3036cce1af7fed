package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/redis"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	LinksLoaded *int   `json:"links_loaded,omitempty"`
	LastReload  string `json:"last_reload,omitempty"`
	Source      string `json:"source,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the catalog, Redis and the backend configuration.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linksCount := d.Links.Count()
		lastReload := "never"
		if t := d.Links.GetLastReload(); !t.IsZero() {
			lastReload = t.Format(time.RFC3339)
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:          linksCount > 0,
				LinksLoaded: &linksCount,
				LastReload:  lastReload,
				Source:      d.Links.Source(),
			},
			"redis": checkRedis(r.Context(), d),
			"upstream": {
				OK:   d.APIHost != "",
				Mode: d.APIHost,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if !components["catalog"].OK {
		return "critical"
	}
	if !components["redis"].OK || !components["upstream"].OK {
		return "degraded"
	}
	return "operational"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "memory-only catalog and in-flight guard",
		}
	}

	if err := redis.Ping(ctx, d.RedisClient, 2*time.Second); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "catalog mirror and shared in-flight guard unavailable",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "mirror",
	}
}
