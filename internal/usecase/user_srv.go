package usecase

import (
	"context"

	"marketplace-auth/internal/data/entity"
	"marketplace-auth/internal/data/repository"
	"marketplace-auth/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID, role entity.UserRole) (*response.ProfileResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

// GetProfile join read-only user + profile sesuai role.
// Profile hilang padahal user ada = anomali integritas, dilaporkan not found.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID, role entity.UserRole) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user for profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	switch role {
	case entity.RoleVendor:
		vendor, err := s.repo.Vendor.FindByUserID(ctx, userID)
		if err != nil {
			s.log.Error("Failed to load vendor profile", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, err
		}
		if vendor == nil {
			s.log.Error("Vendor user without profile row", zap.String("user_id", userID.String()))
			return nil, ErrNotFound
		}
		return response.VendorProfileToResponse(user, vendor), nil

	case entity.RoleClient:
		client, err := s.repo.Client.FindByUserID(ctx, userID)
		if err != nil {
			s.log.Error("Failed to load client profile", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, err
		}
		if client == nil {
			s.log.Error("Client user without profile row", zap.String("user_id", userID.String()))
			return nil, ErrNotFound
		}
		return response.ClientProfileToResponse(user, client), nil

	default:
		// Admin tidak punya tabel profile
		return response.UserProfileToResponse(user), nil
	}
}
