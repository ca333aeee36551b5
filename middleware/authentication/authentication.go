package authentication

import (
	"log"
	"net/http"
	"time"
)

// Middleware guards admin routes. Requests without a valid admin session
// token are rejected before reaching the handler.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			claims, err := authenticate(r, secret)
			if err != nil {
				log.Printf("admin auth rejected: %v (took %s)", err, time.Since(start))
				http.Error(w, "authorization is missing/expired", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}
