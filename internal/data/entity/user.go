package entity

type UserRole string

const (
	RoleVendor UserRole = "vendor"
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password_hash"`
	Role          UserRole `db:"role"`
	IsActive      bool     `db:"is_active"`
	EmailVerified bool     `db:"email_verified"`
}
