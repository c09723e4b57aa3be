package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
)

// Authenticator resolves a bearer token into the caller it was issued to
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (access.Caller, error)
}

type contextKey string

const callerContextKey contextKey = "caller"

// WithCaller stores the authenticated caller in ctx
func WithCaller(ctx context.Context, c access.Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, c)
}

// CallerFromContext returns the caller stored by AuthMiddleware
func CallerFromContext(ctx context.Context) (access.Caller, bool) {
	c, ok := ctx.Value(callerContextKey).(access.Caller)
	return c, ok
}

// AuthMiddleware rejects requests without a valid bearer token with 401.
// Accepted requests carry the resolved caller in their context.
func AuthMiddleware(auth Authenticator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := Logger(r.Context())

			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Debugf("Rejected request: %v", err)
				unauthorized(w, "Not authenticated")
				return
			}

			caller, err := auth.Authenticate(r.Context(), token)
			if errors.Is(err, models.ErrUnauthorized) {
				log.Debugf("Rejected token: %v", err)
				unauthorized(w, "Could not validate credentials")
				return
			}
			if err != nil {
				log.Errorf("Failed to authenticate request: %v", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
