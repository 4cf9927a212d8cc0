package response

import (
	"marketplace-auth/internal/data/entity"
)

// ProfileResponse menggabungkan field user dengan field profile sesuai role.
// Field profile role lain dibiarkan kosong (omitempty).
type ProfileResponse struct {
	ID               string              `json:"id"`
	Email            string              `json:"email"`
	Role             entity.UserRole     `json:"role"`
	CompanyName      string              `json:"company_name,omitempty"`
	ContactPerson    string              `json:"contact_person,omitempty"`
	Phone            string              `json:"phone,omitempty"`
	Address          string              `json:"address,omitempty"`
	NPWP             string              `json:"npwp,omitempty"`
	Status           entity.VendorStatus `json:"status,omitempty"`
	RegistrationType string              `json:"registration_type,omitempty"`
}

func VendorProfileToResponse(user *entity.User, vendor *entity.VendorProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:               user.ID.String(),
		Email:            user.Email,
		Role:             user.Role,
		CompanyName:      vendor.CompanyName,
		Phone:            vendor.Phone,
		Address:          vendor.Address,
		NPWP:             vendor.NPWP,
		Status:           vendor.Status,
		RegistrationType: vendor.RegistrationType,
	}
}

func ClientProfileToResponse(user *entity.User, client *entity.ClientProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Role:          user.Role,
		CompanyName:   client.CompanyName,
		ContactPerson: client.ContactPerson,
		Phone:         client.Phone,
		Address:       client.Address,
	}
}

func UserProfileToResponse(user *entity.User) *ProfileResponse {
	return &ProfileResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
}
