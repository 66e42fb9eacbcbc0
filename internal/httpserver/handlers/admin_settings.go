package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/logger"
)

func AdminGetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site, err := d.Settings.Site(r.Context())
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, site)
	}
}

func AdminSaveSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in admin.SiteSettings
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		site, err := d.Settings.SaveSite(r.Context(), in)
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, site)
	}
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// AdminChangePassword answers a wrong current password with 400, not 401:
// the session itself is still valid.
func AdminChangePassword(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req passwordRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		err := d.Auth.ChangePassword(req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
		switch {
		case err == nil:
			d.Logger.Info("admin password changed")
			writeJSON(w, http.StatusOK, statusResponse{Status: "password updated"})
		case errors.Is(err, admin.ErrUnauthorized):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeAdminError(d, w, r, err)
		}
	}
}

func AdminGetAutoUpdate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		au, err := d.Settings.AutoUpdate(r.Context())
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, au)
	}
}

func AdminSaveAutoUpdate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in admin.AutoUpdateSettings
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		au, err := d.Settings.SaveAutoUpdate(r.Context(), in)
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, au)
	}
}

// AdminRunAutoUpdate records a simulated update run.
func AdminRunAutoUpdate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		au, err := d.Settings.RunNow(r.Context())
		if err != nil {
			writeAdminError(d, w, r, err)
			return
		}
		d.Logger.Info("auto-update run recorded", logger.String("source_url", au.SourceURL))
		writeJSON(w, http.StatusOK, au)
	}
}
