package middleware

import (
	"net/http"
	"strings"

	"eldercare-booking/internal/data/repository"
	"eldercare-booking/pkg/token"
	"eldercare-booking/pkg/utils"

	"go.uber.org/zap"
)

// unauthorizedMsg is the single message for every guard failure.
// Missing header, bad signature, expiry and deleted user must be
// indistinguishable to the caller.
const unauthorizedMsg = "Invalid or expired token"

// Auth validates the bearer token, resolves the user and attaches the
// identity to the request context.
func Auth(tokens *token.Service, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing authorization header", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, unauthorizedMsg)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn("Malformed authorization header", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, unauthorizedMsg)
				return
			}

			// Verify signature and expiry
			userID, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("Token validation failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, unauthorizedMsg)
				return
			}

			// Resolve identity; the token may outlive the account
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve user for token",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token for unknown user", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, unauthorizedMsg)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
