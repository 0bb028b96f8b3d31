package middleware

import (
	"net/http"
	"strings"
)

// matchOrigin informa se a origem é aceita e se foi listada explicitamente
func matchOrigin(allowedOrigins []string, origin string) (allowed bool, explicit bool) {
	if origin == "" {
		return false, false
	}
	for _, allowedOrigin := range allowedOrigins {
		if strings.EqualFold(origin, allowedOrigin) {
			return true, true
		}
		if allowedOrigin == "*" {
			allowed = true
		}
	}
	return allowed, false
}

// Cors libera as origens configuradas em CORS_ALLOWED_ORIGINS. "*" aceita qualquer origem, sem credenciais.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowed, explicit := matchOrigin(allowedOrigins, origin); allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With, "+CorrelationIDHeader)
				w.Header().Set("Access-Control-Expose-Headers", CorrelationIDHeader)
				// Credenciais apenas para origens listadas, nunca pelo curinga
				if explicit {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
