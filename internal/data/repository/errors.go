// Package repository sentinel errors. Layer usecase membedakan
// kegagalan constraint dari kegagalan store lewat nilai-nilai ini.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail dikembalikan saat insert users kena unique constraint
// email. Ini guarantee utama anti duplikat, bukan pre-check FindByEmail.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrProfileExists dikembalikan saat user_id sudah punya baris profile.
var ErrProfileExists = errors.New("profile already exists for user")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
