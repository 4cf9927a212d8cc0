package repository

import (
	"marketplace-auth/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Vendor       VendorRepository
	Client       ClientRepository
	RefreshToken RefreshTokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Vendor:       NewVendorRepository(db, log),
		Client:       NewClientRepository(db, log),
		RefreshToken: NewRefreshTokenRepository(db, log),
	}
}
