package usecase

import "errors"

// Taksonomi kegagalan auth. Handler memetakan nilai-nilai ini ke status
// HTTP lewat errors.Is; selain ini dianggap internal error dan tidak
// bocor ke caller.
var (
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials dipakai untuk email tidak terdaftar DAN
	// password salah, supaya tidak bisa dipakai enumerasi akun.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountInactive = errors.New("account is inactive")

	ErrPendingApproval = errors.New("account is pending approval")
	ErrRejected        = errors.New("account has been rejected")
	ErrSuspended       = errors.New("account has been suspended")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrNotFound = errors.New("profile not found")
)
