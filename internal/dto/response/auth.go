package response

import (
	"marketplace-auth/internal/data/entity"
)

type UserResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
}

// AuthResponse dikembalikan login dan register client: user + token pair.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RegisterVendorResponse tanpa token: vendor belum bisa login
// sebelum di-approve admin.
type RegisterVendorResponse struct {
	Email  string              `json:"email"`
	Status entity.VendorStatus `json:"status"`
}

// TokenPairResponse dikembalikan endpoint refresh-token.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
}

func AuthToResponse(user *entity.User, accessToken, refreshToken string) *AuthResponse {
	return &AuthResponse{
		User:         UserToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}
