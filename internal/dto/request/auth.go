package request

type RegisterVendorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"required,min=2,max=255"`
	Phone       string `json:"phone" validate:"required,min=8,max=20"`
	Address     string `json:"address" validate:"required"`
	NPWP        string `json:"npwp" validate:"required,min=15,max=20"`
}

type RegisterClientRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	CompanyName   string `json:"company_name" validate:"required,min=2,max=255"`
	ContactPerson string `json:"contact_person" validate:"required,min=2,max=255"`
	Phone         string `json:"phone" validate:"required,min=8,max=20"`
	Address       string `json:"address" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}
