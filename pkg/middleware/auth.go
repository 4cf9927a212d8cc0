package middleware

import (
	"net/http"
	"strings"

	"marketplace-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthJWT middleware memvalidasi access token terhadap access secret,
// lalu set identitas principal ke request context.
func AuthJWT(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.VerifyAccessToken(parts[1], jwtConfig.AccessSecret)
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Access token with malformed user id",
					zap.String("user_id", claims.UserID), zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Set context dengan user info
			ctx := utils.SetUserContext(r.Context(), userID, claims.Email, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
