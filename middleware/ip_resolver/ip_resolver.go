package ipresolver

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type callerIPKey struct{}

// Middleware resolves the caller's IP and stores it on the request
// context. The forwarded address, when present, wins over the socket
// peer; the user IP is always the first entry of X-Forwarded-For.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := forwardedIP(r)
		if ip == "" {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			ip = host
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerIPKey{}, ip)))
	})
}

func forwardedIP(r *http.Request) string {
	forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if forwarded == "" {
		return ""
	}
	return strings.TrimSpace(strings.Split(forwarded, ",")[0])
}

// FromContext returns the resolved caller IP, or "" when the middleware
// did not run.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(callerIPKey{}).(string)
	return ip
}
