package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready      bool `json:"ready"`
	UserAgents int  `json:"user_agents"`
	Articles   int  `json:"articles"`
}

// Readyz reports 503 until the first catalog snapshot has been published.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{
			Ready:      !d.MemoryIndex.GetLastReload().IsZero(),
			UserAgents: d.MemoryIndex.Count(),
			Articles:   d.MemoryIndex.ArticleCount(),
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
