package middleware

import (
	"context"
	"net/http"

	"github.com/esenmoda/esen/internal/domain"
	"github.com/esenmoda/esen/internal/handler"
	"github.com/esenmoda/esen/internal/service"
)

const (
	// UserContextKey is the context key for storing the authenticated user
	UserContextKey contextKey = "user"

	authCookieName = "esen_auth"
)

// WithUser extracts the user from the auth cookie and adds it to the request context.
// This middleware is optional - it adds the user if present but doesn't require authentication.
func WithUser(userService service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userService.GetUserBySessionToken(r.Context(), cookie.Value)
			if err != nil {
				// Stale or invalid token, continue without user
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the user is authenticated, returning 401 if not
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			handler.ErrorResponse(w, r, domain.Unauthorized("auth.require", "Not logged in"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the user is an admin, returning 401 or 403 as appropriate
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			handler.ErrorResponse(w, r, domain.Unauthorized("auth.admin", "Not logged in"))
			return
		}
		if !user.IsAdmin {
			handler.ErrorResponse(w, r, domain.Forbidden("auth.admin", "Admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil when no user is attached.
func GetUserFromContext(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(UserContextKey).(*domain.User); ok {
		return user
	}
	return nil
}
