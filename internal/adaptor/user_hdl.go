package adaptor

import (
	"net/http"
	"strings"

	"eldercare-booking/internal/usecase"
	"eldercare-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Me handles GET /api/auth/me (protected)
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		// The guard resolved the identity moments ago; anything that
		// fails now still answers as unauthorized, not found included.
		if strings.Contains(err.Error(), "not found") {
			h.log.Warn("Profile lookup for vanished user", zap.String("user_id", userID.String()))
			utils.ResponseUnauthorized(w, "Invalid or expired token")
			return
		}
		h.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}
