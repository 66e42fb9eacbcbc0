package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/logger"
)

type searchResponse struct {
	Query    string              `json:"query"`
	Featured bool                `json:"featured"`
	Total    int                 `json:"total"`
	Results  []*domain.UserAgent `json:"results"`
}

// Search backs the home page: featured records for a blank query, otherwise
// every record matching q.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		results := domain.Search(d.MemoryIndex.AllUserAgents(), query)

		if query != "" {
			d.Logger.Debug("search request",
				logger.String("query", query),
				logger.Int("results", len(results)))
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Query:    query,
			Featured: query == "",
			Total:    len(results),
			Results:  results,
		})
	}
}
