package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tovrr/belmobile-backend/pkg/config"
	"github.com/tovrr/belmobile-backend/pkg/session"
)

// StaffAuth validates staff session tokens on admin endpoints.
//
// Expected header:
// - Authorization: Bearer <JWT>
//
// In dev, if Authorization is missing, it can fall back to X-Staff-Email to
// keep local testing simple.
func StaffAuth(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				token := strings.TrimSpace(authz[7:])
				id, err := session.VerifyStaffToken(token, cfg.Staff.Issuer, cfg.Staff.JWTSecret, time.Now())
				if err != nil {
					WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid session token")
					return
				}
				next.ServeHTTP(w, r.WithContext(WithStaff(r.Context(), id)))
				return
			}

			// Dev fallback
			if cfg.AppEnv != "prod" {
				email := strings.TrimSpace(r.Header.Get("X-Staff-Email"))
				if email == "" {
					email = cfg.Staff.DevFallbackEmail
				}
				if email != "" {
					id := &session.StaffIdentity{Email: email, Role: "admin"}
					next.ServeHTTP(w, r.WithContext(WithStaff(r.Context(), id)))
					return
				}
			}

			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session token")
		})
	}
}

// RequireRole gates an endpoint on the staff role carried by the session.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := StaffFromContext(r.Context())
			if id == nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing staff identity")
				return
			}
			if id.Role != role {
				WriteError(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
