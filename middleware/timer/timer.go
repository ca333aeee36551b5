package timer

import (
	"log"
	"net/http"
	"time"
)

// Middleware logs how long each request took.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("Request - Method:%s\tPath:%s\tDuration:%s\n",
			r.Method,
			r.URL.Path,
			time.Since(start))
	})
}
