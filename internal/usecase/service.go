package usecase

import (
	"marketplace-auth/internal/data/repository"
	"marketplace-auth/pkg/database"
	"marketplace-auth/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(db, repo, config, log),
		User: NewUserService(repo, log),
	}
}
