package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
)

type adviceListResponse struct {
	Category   string            `json:"category"`
	Categories []string          `json:"categories"`
	Total      int               `json:"total"`
	Articles   []*domain.Article `json:"articles"`
}

// AdviceList returns the articles of ?category= (all when empty) plus the
// category list derived from the whole catalog.
func AdviceList(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		all := d.MemoryIndex.AllArticles()
		articles := domain.FilterArticlesByCategory(all, category)

		writeJSON(w, http.StatusOK, adviceListResponse{
			Category:   category,
			Categories: domain.ArticleCategories(all),
			Total:      len(articles),
			Articles:   articles,
		})
	}
}

type adviceResponse struct {
	Article *domain.Article   `json:"article"`
	Blocks  []domain.Block    `json:"blocks"`
	Related []*domain.Article `json:"related"`
}

func Advice(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := d.MemoryIndex.GetArticle(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}

		writeJSON(w, http.StatusOK, adviceResponse{
			Article: a,
			Blocks:  domain.ParseContent(a.Content),
			Related: domain.RelatedArticles(d.MemoryIndex.AllArticles(), a, relatedCount),
		})
	}
}
