package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, role string, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func guardedHandler(t *testing.T) http.Handler {
	t.Helper()
	return Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := FromContext(r.Context())
		if !ok || claims.Role != "admin" {
			t.Error("expected admin claims on the request context")
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddlewareAcceptsBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", testSecret, time.Hour))
	rec := httptest.NewRecorder()

	guardedHandler(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMiddlewareAcceptsSessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/rates", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: signToken(t, "admin", testSecret, time.Hour)})
	rec := httptest.NewRecorder()

	guardedHandler(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMiddlewareRejects(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(r *http.Request) {}},
		{"wrong secret", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "other-secret", time.Hour))
		}},
		{"expired token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "admin", testSecret, -time.Minute))
		}},
		{"wrong role", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "customer", testSecret, time.Hour))
		}},
		{"garbage token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-jwt")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()

			handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run for a rejected request")
			}))
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
