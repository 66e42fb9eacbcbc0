package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/utils"
)

const notSpecified = "Not specified"

type myAgentResponse struct {
	domain.Detection
	AcceptLanguage string `json:"acceptLanguage"`
	DoNotTrack     string `json:"doNotTrack"`
	IP             string `json:"ip"`
}

// MyAgent describes what the caller's own request headers reveal.
func MyAgent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := myAgentResponse{
			Detection:      domain.Detect(r.UserAgent()),
			AcceptLanguage: r.Header.Get("Accept-Language"),
			DoNotTrack:     r.Header.Get("DNT"),
			IP:             utils.ClientIP(r, d.TrustProxy),
		}
		if resp.AcceptLanguage == "" {
			resp.AcceptLanguage = notSpecified
		}
		if resp.DoNotTrack == "" {
			resp.DoNotTrack = notSpecified
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
