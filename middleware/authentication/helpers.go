package authentication

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type claimsKey struct{}

const sessionCookieName = "admin_token"

// authenticate extracts the session token from the Authorization header or
// the admin cookie and validates it.
func authenticate(r *http.Request, secret string) (*CustomClaims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("admin jwt secret is not configured")
	}

	tokenStr := bearerToken(r)
	if tokenStr == "" {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			tokenStr = strings.TrimSpace(cookie.Value)
		}
	}
	if tokenStr == "" {
		return nil, errors.WithStack(errors.New("authorization token is missing"))
	}

	var parsedClaims CustomClaims
	token, err := jwt.ParseWithClaims(tokenStr, &parsedClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "token parse failed")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if parsedClaims.Role != "admin" {
		return nil, errors.Errorf("role %q is not permitted", parsedClaims.Role)
	}
	return &parsedClaims, nil
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func withClaims(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// FromContext returns the admin claims attached by the middleware.
func FromContext(ctx context.Context) (*CustomClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*CustomClaims)
	return claims, ok
}

// SessionCookieName is the cookie the login handler sets so the HTML admin
// pages work without an Authorization header.
func SessionCookieName() string {
	return sessionCookieName
}
