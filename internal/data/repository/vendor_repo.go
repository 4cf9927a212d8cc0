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

type VendorRepository interface {
	Create(ctx context.Context, q database.Querier, vendor *entity.VendorProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)
	GetStatusByUserID(ctx context.Context, userID uuid.UUID) (entity.VendorStatus, error)
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

func (vr *vendorRepository) Create(ctx context.Context, q database.Querier, vendor *entity.VendorProfile) error {
	query := `
		INSERT INTO vendors (id, user_id, company_name, phone, address, npwp,
		                    status, registration_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.CompanyName,
		vendor.Phone,
		vendor.Address,
		vendor.NPWP,
		vendor.Status,
		vendor.RegistrationType,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		vr.log.Error("Failed to create vendor profile",
			zap.Error(err),
			zap.String("user_id", vendor.UserID.String()),
		)
		return fmt.Errorf("create vendor profile for user %s: %w", vendor.UserID.String(), err)
	}

	return nil
}

func (vr *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	query := `
		SELECT id, user_id, company_name, phone, address, npwp,
		       status, registration_type, created_at, updated_at
		FROM vendors
		WHERE user_id = $1
	`

	var vendor entity.VendorProfile
	err := vr.db.QueryRow(ctx, query, userID).Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.CompanyName,
		&vendor.Phone,
		&vendor.Address,
		&vendor.NPWP,
		&vendor.Status,
		&vendor.RegistrationType,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		vr.log.Error("Failed to find vendor profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find vendor profile for user %s: %w", userID.String(), err)
	}

	return &vendor, nil
}

// GetStatusByUserID membaca status approval saja, dipakai gate login vendor.
func (vr *vendorRepository) GetStatusByUserID(ctx context.Context, userID uuid.UUID) (entity.VendorStatus, error) {
	query := `SELECT status FROM vendors WHERE user_id = $1`

	var status entity.VendorStatus
	err := vr.db.QueryRow(ctx, query, userID).Scan(&status)

	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		vr.log.Error("Failed to get vendor status",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return "", fmt.Errorf("get vendor status for user %s: %w", userID.String(), err)
	}

	return status, nil
}
