package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/logger"
	"github.com/MrSnakeDoc/uadb/internal/utils"
)

type reloadResponse struct {
	Status string `json:"status"`
}

// Reload queues a catalog reload. Only one trigger can be pending at a time.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := utils.ClientIP(r, d.TrustProxy)

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual catalog reload triggered via endpoint",
				logger.String("remote_ip", ip))
			writeJSON(w, http.StatusAccepted, reloadResponse{Status: "reload triggered"})
		default:
			d.Logger.Warn("catalog reload already pending",
				logger.String("remote_ip", ip))
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{Status: "reload already pending, please wait"})
		}
	}
}
