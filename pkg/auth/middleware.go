package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/pointpay/pkg/utils"
)

type ContextKey string

const CustomerIDKey ContextKey = "customerID"

// Middleware puts the customer id of a valid bearer token into the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), CustomerIDKey, claims.CustomerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CustomerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CustomerIDKey).(int64)
	return id, ok
}
