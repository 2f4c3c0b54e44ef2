package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/flamescrm/agent-platform/internal/config"
)

// CORS returns middleware that applies Cross-Origin Resource Sharing headers
// from configuration. A "*" entry in Origins allows every origin; when
// credentials are also allowed, the request origin is echoed back instead of
// the wildcard so browsers accept the response.
func CORS(cfg *config.CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.IsEnabled() {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")
			if allowed, value := allowOrigin(cfg, origin); allowed {
				w.Header().Set("Access-Control-Allow-Origin", value)
				if value != "*" {
					w.Header().Add("Vary", "Origin")
				}

				if len(cfg.AllowedMethods) > 0 {
					w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				}
				if len(cfg.AllowedHeaders) > 0 {
					w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
				}
				if cfg.Credentials() {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				if cfg.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowOrigin(cfg *config.CORSConfig, origin string) (bool, string) {
	if slices.Contains(cfg.Origins, "*") {
		if cfg.Credentials() && origin != "" {
			return true, origin
		}
		return true, "*"
	}

	if origin != "" && slices.Contains(cfg.Origins, origin) {
		return true, origin
	}

	return false, ""
}
