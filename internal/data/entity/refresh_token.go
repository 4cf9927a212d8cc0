package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken adalah satu baris ledger. Token valid hanya kalau
// barisnya masih ada dan belum lewat expires_at.
type RefreshToken struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
