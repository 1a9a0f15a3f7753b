package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/echal/gembira-sub001/internal/handler/http/response"
)

// RequireAdmin requires the admin role for HR-wide read surfaces
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
