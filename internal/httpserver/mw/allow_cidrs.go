package mw

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/uadb/internal/logger"
	"github.com/MrSnakeDoc/uadb/internal/utils"
)

// AllowOnlyCIDRS restricts a route to the given IPs and CIDRs.
// An empty (or entirely unparsable) list disables the filter.
// trustProxy resolves the client from proxy headers, see utils.ClientIP.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		log.Debug("AllowOnlyCIDRS: empty matcher, passthrough mode")
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if m.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("request rejected by CIDR filter",
				logger.String("ip", ip),
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("request_id", middleware.GetReqID(r.Context())))
			reject(w, http.StatusForbidden, "forbidden")
		})
	}
}
