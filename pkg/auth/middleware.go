package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/campuspay/pkg/utils"
)

type ContextKey string

const AddressKey ContextKey = "address"

// Middleware rejects requests without a valid bearer token and stores the
// caller address in the request context.
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

			ctx := context.WithValue(r.Context(), AddressKey, claims.Address)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(AddressKey).(string)
	return addr, ok && addr != ""
}
