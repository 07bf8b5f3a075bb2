package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/coursehub/coursehub-go/internal/crypto"
	"github.com/coursehub/coursehub-go/internal/model"
	"github.com/coursehub/coursehub-go/internal/repository"
)

type contextKey string

const userKey contextKey = "user"

// UserLookup resolves the user a token was issued for.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// Authenticate returns middleware that requires a valid Bearer token for an
// existing user and stores that user in the request context.
func Authenticate(tokens *crypto.TokenService, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := tokens.Decode(bearerToken(r.Header.Get("Authorization")))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or missing token")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "User not found")
					return
				}
				slog.ErrorContext(r.Context(), "loading authenticated user",
					"error", err,
					"user_id", userID,
					"request_id", chimw.GetReqID(r.Context()),
				)
				writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value, or returns "" when the header has another shape.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// UserFromContext returns the authenticated user stored by Authenticate.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return 0, false
	}
	return user.ID, true
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
