package entity

import "github.com/google/uuid"

type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusRejected  VendorStatus = "rejected"
	VendorStatusSuspended VendorStatus = "suspended"
)

// RegistrationTypeSelf menandai vendor yang daftar lewat endpoint publik.
const RegistrationTypeSelf = "self_register"

type VendorProfile struct {
	Base
	UserID           uuid.UUID    `db:"user_id"`
	CompanyName      string       `db:"company_name"`
	Phone            string       `db:"phone"`
	Address          string       `db:"address"`
	NPWP             string       `db:"npwp"`
	Status           VendorStatus `db:"status"`
	RegistrationType string       `db:"registration_type"`
}
