package wire

import (
	"marketplace-auth/internal/adaptor"
	"marketplace-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Semua route auth publik; logout sengaja tanpa guard karena
	// selalu sukses apapun tokennya
	r.Post("/api/register/vendor", authHandler.RegisterVendor)
	r.Post("/api/register/client", authHandler.RegisterClient)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/refresh-token", authHandler.RefreshToken)
	r.Post("/api/logout", authHandler.Logout)
}
