package repository

import (
	"context"
	"fmt"

	"marketplace-auth/internal/data/entity"
	"marketplace-auth/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RefreshTokenRepository interface {
	Store(ctx context.Context, token *entity.RefreshToken) error
	FindByToken(ctx context.Context, token string, userID uuid.UUID) (*entity.RefreshToken, error)
	Rotate(ctx context.Context, oldID uuid.UUID, newToken *entity.RefreshToken) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type refreshTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRefreshTokenRepository(db database.PgxIface, log *zap.Logger) RefreshTokenRepository {
	return &refreshTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "refresh_token")),
	}
}

func (r *refreshTokenRepository) Store(ctx context.Context, token *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store refresh token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("store refresh token for user %s: %w", token.UserID.String(), err)
	}

	return nil
}

// FindByToken mencocokkan token value DAN user id dari claims.
// Baris orang lain tidak boleh kepakai walau token-nya sama.
func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string, userID uuid.UUID) (*entity.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1 AND user_id = $2
	`

	var row entity.RefreshToken
	err := r.db.QueryRow(ctx, query, token, userID).Scan(
		&row.ID,
		&row.UserID,
		&row.Token,
		&row.ExpiresAt,
		&row.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find refresh token",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find refresh token for user %s: %w", userID.String(), err)
	}

	return &row, nil
}

// Rotate menghapus baris lama dan insert baris baru dalam satu transaksi.
// Kalau gagal di tengah, rollback menyisakan baris lama supaya
// client masih bisa retry dengan token yang sama.
func (r *refreshTokenRepository) Rotate(ctx context.Context, oldID uuid.UUID, newToken *entity.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin rotate transaction", zap.Error(err))
		return fmt.Errorf("begin rotate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, oldID); err != nil {
		r.log.Error("Failed to delete old refresh token",
			zap.Error(err),
			zap.String("token_id", oldID.String()),
		)
		return fmt.Errorf("delete refresh token %s: %w", oldID.String(), err)
	}

	insert := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, insert,
		newToken.ID,
		newToken.UserID,
		newToken.Token,
		newToken.ExpiresAt,
		newToken.CreatedAt,
	); err != nil {
		r.log.Error("Failed to insert new refresh token",
			zap.Error(err),
			zap.String("user_id", newToken.UserID.String()),
		)
		return fmt.Errorf("insert rotated refresh token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit rotate transaction", zap.Error(err))
		return fmt.Errorf("commit rotate transaction: %w", err)
	}

	return nil
}

// DeleteByToken idempotent: token yang tidak ada bukan error.
func (r *refreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		r.log.Error("Failed to delete refresh token", zap.Error(err))
		return fmt.Errorf("delete refresh token: %w", err)
	}

	return nil
}

// DeleteByID housekeeping untuk baris yang ketahuan expired saat dipakai.
func (r *refreshTokenRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete refresh token by id",
			zap.Error(err),
			zap.String("token_id", id.String()),
		)
		return fmt.Errorf("delete refresh token %s: %w", id.String(), err)
	}

	return nil
}
