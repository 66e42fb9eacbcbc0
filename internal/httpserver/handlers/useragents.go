package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
)

// relatedCount is how many related entries a detail page shows.
const relatedCount = 2

type categoryInfo struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

type categoriesResponse struct {
	Total      int            `json:"total"`
	Categories []categoryInfo `json:"categories"`
}

// Categories lists the browse menu with the number of records in each entry.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := d.MemoryIndex.AllUserAgents()
		taxonomies := domain.Taxonomies()

		cats := make([]categoryInfo, 0, len(taxonomies))
		for _, t := range taxonomies {
			cats = append(cats, categoryInfo{
				Key:         t.Key,
				Title:       t.Title,
				Description: t.Description,
				Count:       len(domain.FilterUserAgents(all, t.Key, "")),
			})
		}

		writeJSON(w, http.StatusOK, categoriesResponse{Total: len(all), Categories: cats})
	}
}

type userAgentsResponse struct {
	Category   categoryInfo        `json:"category"`
	Query      string              `json:"query"`
	Total      int                 `json:"total"`
	UserAgents []*domain.UserAgent `json:"userAgents"`
}

// UserAgents filters the catalog by ?category= and ?q=. Unknown categories
// browse the whole catalog under the "All User Agents" heading.
func UserAgents(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		query := r.URL.Query().Get("q")

		tax, ok := domain.LookupTaxonomy(category)
		if !ok {
			tax = domain.AllTaxonomy
		}

		results := domain.FilterUserAgents(d.MemoryIndex.AllUserAgents(), category, query)
		writeJSON(w, http.StatusOK, userAgentsResponse{
			Category: categoryInfo{
				Key:         tax.Key,
				Title:       tax.Title,
				Description: tax.Description,
				Count:       len(results),
			},
			Query:      strings.TrimSpace(query),
			Total:      len(results),
			UserAgents: results,
		})
	}
}

type userAgentResponse struct {
	UserAgent *domain.UserAgent   `json:"userAgent"`
	Related   []*domain.UserAgent `json:"related"`
}

func UserAgent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ua, ok := d.MemoryIndex.GetUserAgent(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "user agent not found")
			return
		}

		writeJSON(w, http.StatusOK, userAgentResponse{
			UserAgent: ua,
			Related:   domain.RelatedUserAgents(d.MemoryIndex.AllUserAgents(), ua, relatedCount),
		})
	}
}
