package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ctxKeyOwnerID contextKey = "owner_id"

// ownerIDFromContext returns the authenticated owner id, or "" when the
// request was not authenticated.
func ownerIDFromContext(ctx context.Context) string {
	ownerID, _ := ctx.Value(ctxKeyOwnerID).(string)
	return ownerID
}

// parseBearerToken validates an HS256 bearer token and returns its subject.
func parseBearerToken(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

// authMiddleware requires a valid bearer token on every request and stores
// its subject as the owner id on the request context.
func authMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				respondError(w, ErrorResp{Error: Error{
					Code:    ErrorCode_Unauthorized,
					Message: "missing bearer token",
				}})
				return
			}
			ownerID, err := parseBearerToken(secret, tokenString)
			if err != nil {
				respondError(w, ErrorResp{Error: Error{
					Code:    ErrorCode_Unauthorized,
					Message: "invalid bearer token",
				}})
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyOwnerID, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
