package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/skinbet/pkg/utils"
)

type ContextKey string

const SteamIDKey ContextKey = "steamID"

// Middleware puts the steam id of a valid bearer token into the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), SteamIDKey, claims.SteamID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SteamID returns the steam id put into ctx by Middleware.
func SteamID(ctx context.Context) string {
	steamID, _ := ctx.Value(SteamIDKey).(string)
	return steamID
}
