package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/logger"
	"github.com/MrSnakeDoc/uadb/internal/utils"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *contactRequest) validate() string {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)

	if c.Name == "" || c.Email == "" || c.Subject == "" || c.Message == "" {
		return "please fill in all fields"
	}
	if !strings.Contains(c.Email, "@") {
		return "please enter a valid email address"
	}
	return ""
}

type contactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Contact accepts the contact form. Messages are logged, not delivered.
func Contact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		d.Logger.Info("contact message received",
			logger.String("name", req.Name),
			logger.String("email", req.Email),
			logger.String("subject", req.Subject),
			logger.Int("message_length", len(req.Message)),
			logger.String("remote_ip", utils.ClientIP(r, d.TrustProxy)))

		writeJSON(w, http.StatusAccepted, contactResponse{
			Status:  "received",
			Message: "Thank you for your message. We'll get back to you soon.",
		})
	}
}
