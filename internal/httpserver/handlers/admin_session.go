package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/mw"
	"github.com/MrSnakeDoc/uadb/internal/logger"
	"github.com/MrSnakeDoc/uadb/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresIn int    `json:"expiresIn"` // idle timeout, seconds
}

// AdminLogin checks the credentials and opens a session whose workspace is
// a copy of the current catalog.
func AdminLogin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Username = strings.TrimSpace(req.Username)

		if err := d.Auth.Login(req.Username, req.Password); err != nil {
			d.Logger.Warn("admin login failed",
				logger.String("username", req.Username),
				logger.String("remote_ip", utils.ClientIP(r, d.TrustProxy)))
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		ws := admin.NewWorkspace(d.MemoryIndex.AllUserAgents(), d.MemoryIndex.AllArticles())
		sess := d.Sessions.Open(req.Username, ws)

		d.Logger.Info("admin logged in",
			logger.String("username", sess.Username),
			logger.Int("active_sessions", d.Sessions.Count()))

		writeJSON(w, http.StatusOK, loginResponse{
			Token:     sess.Token,
			Username:  sess.Username,
			ExpiresIn: int(d.Sessions.TTL().Seconds()),
		})
	}
}

// AdminLogout drops the caller's session. Unknown tokens are ignored.
func AdminLogout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := mw.BearerToken(r); token != "" && d.Sessions.Close(token) {
			d.Logger.Info("admin logged out")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// workspace returns the session workspace attached by mw.AdminAuth.
func workspace(w http.ResponseWriter, r *http.Request) (*admin.Workspace, bool) {
	sess, ok := mw.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return nil, false
	}
	return sess.Workspace, true
}
