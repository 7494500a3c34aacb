package middleware

import (
	"net/http"
	"regexp"

	"conduit-in-go/pkg/audit"
	"conduit-in-go/pkg/identity"
	"conduit-in-go/pkg/server/store"
)

var tokenRegex = regexp.MustCompile(`^Token (\S+)$`)

// TokenAuthenticator is middleware that resolves opaque bearer tokens
// against the users store
type TokenAuthenticator struct {
	Users store.UsersStore
}

// NewTokenAuthenticator creates a new token authenticator middleware
func NewTokenAuthenticator(users store.UsersStore) *TokenAuthenticator {
	return &TokenAuthenticator{Users: users}
}

// Middleware returns an HTTP middleware that validates opaque tokens.
// On success the caller identity is placed on the request context.
func (t *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenMatches := tokenRegex.FindStringSubmatch(authHeader)

		if len(tokenMatches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		user, err := t.Users.FindByToken(tokenMatches[1])
		if err != nil {
			audit.Log(audit.AuthnEvent{
				ClientIP:     r.RemoteAddr,
				Success:      false,
				ErrorMessage: "invalid token",
			})
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid authorization token"))
			return
		}

		ctx := identity.Set(r.Context(), identity.FromUser(user))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
