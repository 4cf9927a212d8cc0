package adaptor

import (
	"errors"
	"net/http"

	"marketplace-auth/internal/data/entity"
	"marketplace-auth/internal/usecase"
	"marketplace-auth/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /api/profile (butuh access token valid)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID, entity.UserRole(role))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			h.log.Warn("Profile not found", zap.String("user_id", userID.String()))
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Profile fetched", profile)
}
