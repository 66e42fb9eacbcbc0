package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
)

type adminUserAgentsResponse struct {
	Total      int                 `json:"total"`
	UserAgents []*domain.UserAgent `json:"userAgents"`
}

func AdminListUserAgents(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		uas := ws.UserAgents(r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, adminUserAgentsResponse{Total: len(uas), UserAgents: uas})
	}
}

func AdminCreateUserAgent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		var in domain.UserAgent
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		ua, err := ws.AddUserAgent(in)
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, ua)
	}
}

func AdminUpdateUserAgent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		var in domain.UserAgent
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		ua, err := ws.UpdateUserAgent(chi.URLParam(r, "id"), in)
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ua)
	}
}

func AdminDeleteUserAgent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		if err := ws.DeleteUserAgent(chi.URLParam(r, "id")); err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type adminArticlesResponse struct {
	Total    int               `json:"total"`
	Articles []*domain.Article `json:"articles"`
}

func AdminListArticles(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		arts := ws.Articles(r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, adminArticlesResponse{Total: len(arts), Articles: arts})
	}
}

func AdminCreateArticle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		var in domain.Article
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		a, err := ws.AddArticle(in)
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

func AdminUpdateArticle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		var in domain.Article
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		a, err := ws.UpdateArticle(chi.URLParam(r, "id"), in)
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func AdminDeleteArticle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspace(w, r)
		if !ok {
			return
		}
		if err := ws.DeleteArticle(chi.URLParam(r, "id")); err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
