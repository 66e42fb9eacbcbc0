package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	UserAgents *int   `json:"user_agents,omitempty"`
	Articles   *int   `json:"articles,omitempty"`
	LastReload string `json:"last_reload,omitempty"`
	Source     string `json:"source,omitempty"`
	Active     *int   `json:"active,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	LastSync   string `json:"last_sync,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uaCount := d.MemoryIndex.Count()
		artCount := d.MemoryIndex.ArticleCount()
		lastReload := d.MemoryIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format(time.RFC3339)
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:         uaCount > 0,
				UserAgents: &uaCount,
				Articles:   &artCount,
				LastReload: lastReloadStr,
				Source:     d.CatalogSource,
			},
			"redis": checkRedis(r.Context(), d),
		}
		if d.Sessions != nil {
			active := d.Sessions.Count()
			components["admin_sessions"] = componentStatus{OK: true, Active: &active}
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if catalog, ok := components["catalog"]; ok && !catalog.OK {
		return "critical" // nothing to serve
	}

	// Redis down only loses the mirror and persisted settings.
	if redis, ok := components["redis"]; ok && !redis.OK {
		return "degraded"
	}

	return "ok"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Redis == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "settings-in-memory",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Redis.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "mirror-and-settings-unavailable",
			Error:  err.Error(),
		}
	}

	status := componentStatus{
		OK:       true,
		Mode:     "optimal",
		Impact:   "mirror-and-settings-persisted",
		LastSync: "never",
	}
	synced, err := d.Redis.SyncedAt(ctx)
	switch {
	case err != nil:
		status.Error = err.Error()
	case !synced.IsZero():
		status.LastSync = synced.Format(time.RFC3339)
	}
	return status
}
