// Package auth provides optional bearer-token authentication. complyd is a
// demonstration platform: token issuance and user management live with an
// external identity provider, this middleware only validates what arrives.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	dErrors "complyd/pkg/domain-errors"
	"complyd/pkg/platform/httputil"
)

// Middleware validates HS256 bearer tokens signed with signingKey. When the
// key is empty, authentication is disabled and every request passes through.
func Middleware(signingKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if signingKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, err.Error()))
				return
			}

			_, err = jwt.Parse(token, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(signingKey), nil
			})
			if err != nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("authorization header required")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("authorization header must use the Bearer scheme")
	}
	return strings.TrimPrefix(header, prefix), nil
}
