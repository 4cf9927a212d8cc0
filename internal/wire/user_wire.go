package wire

import (
	"marketplace-auth/internal/adaptor"
	"marketplace-auth/pkg/middleware"
	"marketplace-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthJWT(config.JWT, log)).Get("/api/profile", userHandler.GetProfile)
}
