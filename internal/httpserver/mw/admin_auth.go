package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/logger"
)

type sessionKey struct{}

// WithSession stores sess in ctx.
func WithSession(ctx context.Context, sess *admin.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFrom returns the admin session set by AdminAuth.
func SessionFrom(ctx context.Context) (*admin.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*admin.Session)
	return sess, ok && sess != nil
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AdminAuth rejects requests without a live admin session.
func AdminAuth(sessions *admin.Sessions, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="uadb-admin"`)
				reject(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			sess, err := sessions.Get(token)
			if err != nil {
				log.Debug("admin request with unknown or expired session",
					logger.String("path", r.URL.Path))
				w.Header().Set("WWW-Authenticate", `Bearer realm="uadb-admin", error="invalid_token"`)
				reject(w, http.StatusUnauthorized, "session expired or invalid")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
