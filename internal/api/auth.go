package api

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	models "github.com/astanton/launchbook/internal"
	"github.com/astanton/launchbook/internal/ports"
	"github.com/astanton/launchbook/internal/validator"
)

type contextKey string

const userContextKey contextKey = "launchbook.user"

// AuthContext resolves the Authorization header into the request user.
// The header carries the login token, which is the base64-encoded email.
// Anything that fails to decode to a known user leaves the request
// anonymous; the middleware never rejects.
func AuthContext(store ports.TripStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := resolveUser(r, store)
			if user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

func resolveUser(r *http.Request, store ports.TripStore) *models.User {
	token := r.Header.Get("Authorization")
	if token == "" {
		return nil
	}
	email, err := base64.StdEncoding.DecodeString(token)
	if err != nil || !validator.IsEmail(string(email)) {
		return nil
	}
	user, err := store.UserByEmail(r.Context(), string(email))
	if err != nil {
		log.Printf("resolving user from token: %v", err)
		return nil
	}
	return user
}
