package entity

import "github.com/google/uuid"

type ClientProfile struct {
	Base
	UserID        uuid.UUID `db:"user_id"`
	CompanyName   string    `db:"company_name"`
	ContactPerson string    `db:"contact_person"`
	Phone         string    `db:"phone"`
	Address       string    `db:"address"`
}
