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

type ClientRepository interface {
	Create(ctx context.Context, q database.Querier, client *entity.ClientProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error)
}

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

func (cr *clientRepository) Create(ctx context.Context, q database.Querier, client *entity.ClientProfile) error {
	query := `
		INSERT INTO clients (id, user_id, company_name, contact_person,
		                    phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		client.ID,
		client.UserID,
		client.CompanyName,
		client.ContactPerson,
		client.Phone,
		client.Address,
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		cr.log.Error("Failed to create client profile",
			zap.Error(err),
			zap.String("user_id", client.UserID.String()),
		)
		return fmt.Errorf("create client profile for user %s: %w", client.UserID.String(), err)
	}

	return nil
}

func (cr *clientRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error) {
	query := `
		SELECT id, user_id, company_name, contact_person,
		       phone, address, created_at, updated_at
		FROM clients
		WHERE user_id = $1
	`

	var client entity.ClientProfile
	err := cr.db.QueryRow(ctx, query, userID).Scan(
		&client.ID,
		&client.UserID,
		&client.CompanyName,
		&client.ContactPerson,
		&client.Phone,
		&client.Address,
		&client.CreatedAt,
		&client.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find client profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find client profile for user %s: %w", userID.String(), err)
	}

	return &client, nil
}
