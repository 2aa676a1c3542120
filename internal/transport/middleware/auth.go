package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/bloglist-backend/internal/domain"
	"github.com/heartmarshall/bloglist-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// Auth attaches the caller's identity to the request context. Requests
// without a bearer token pass through anonymously; a token that fails
// verification is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.Authenticate(r.Context(), token)
			if err != nil {
				msg := "token invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					msg = "token expired"
				}
				writeError(w, http.StatusUnauthorized, msg)
				return
			}
			annotateUser(r.Context(), identity.UserID)
			ctx := ctxutil.WithIdentity(r.Context(), identity.UserID, identity.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
