package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketplace-auth/internal/data/entity"
	"marketplace-auth/internal/data/repository"
	"marketplace-auth/internal/dto/request"
	"marketplace-auth/internal/dto/response"
	"marketplace-auth/pkg/database"
	"marketplace-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	RegisterVendor(ctx context.Context, req *request.RegisterVendorRequest) (*response.RegisterVendorResponse, error)
	RegisterClient(ctx context.Context, req *request.RegisterClientRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	db     database.PgxIface
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	db database.PgxIface,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		db:     db,
		repo:   repo,
		config: config,
		log:    log,
	}
}

// RegisterVendor membuat user + profile vendor dalam satu transaksi.
// Vendor mulai dengan status pending, TANPA token: login baru bisa
// setelah admin approve.
func (s *authService) RegisterVendor(ctx context.Context, req *request.RegisterVendorRequest) (*response.RegisterVendorResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. Cek email sudah terdaftar (fast path; guarantee asli tetap
	//    unique constraint di dalam transaksi)
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrDuplicateEmail
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// 3. User + vendor profile dalam satu transaksi: dua-duanya masuk
	//    atau tidak sama sekali
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:         email,
		PasswordHash:  hashedPassword,
		Role:          entity.RoleVendor,
		IsActive:      true,
		EmailVerified: false,
	}
	vendor := &entity.VendorProfile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           user.ID,
		CompanyName:      req.CompanyName,
		Phone:            req.Phone,
		Address:          req.Address,
		NPWP:             req.NPWP,
		Status:           entity.VendorStatusPending,
		RegistrationType: entity.RegistrationTypeSelf,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin registration transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.repo.User.Create(ctx, tx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		s.log.Error("Failed to create vendor user", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	if err := s.repo.Vendor.Create(ctx, tx, vendor); err != nil {
		s.log.Error("Failed to create vendor profile", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit vendor registration", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	s.log.Info("Vendor registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return &response.RegisterVendorResponse{
		Email:  email,
		Status: entity.VendorStatusPending,
	}, nil
}

// RegisterClient membuat user + profile client dalam satu transaksi,
// lalu langsung terbitkan token: client tidak pakai approval gate.
func (s *authService) RegisterClient(ctx context.Context, req *request.RegisterClientRequest) (*response.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:         email,
		PasswordHash:  hashedPassword,
		Role:          entity.RoleClient,
		IsActive:      true,
		EmailVerified: false,
	}
	client := &entity.ClientProfile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        user.ID,
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Address:       req.Address,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin registration transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.repo.User.Create(ctx, tx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		s.log.Error("Failed to create client user", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	if err := s.repo.Client.Create(ctx, tx, client); err != nil {
		s.log.Error("Failed to create client profile", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit client registration", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("Client registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	if user == nil {
		// Error sama dengan password salah: jangan kasih tahu email mana
		// yang terdaftar
		s.log.Warn("Login for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 2. Check if account is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountInactive
	}

	// 3. Verify password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Vendor harus sudah approved
	if user.Role == entity.RoleVendor {
		status, err := s.repo.Vendor.GetStatusByUserID(ctx, user.ID)
		if err != nil {
			s.log.Error("Failed to get vendor status", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, err
		}

		switch status {
		case entity.VendorStatusPending:
			return nil, ErrPendingApproval
		case entity.VendorStatusRejected:
			return nil, ErrRejected
		case entity.VendorStatusSuspended:
			return nil, ErrSuspended
		}
	}

	// 5. Issue tokens
	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

// RefreshToken menukar refresh token valid dengan pasangan token baru.
// Token lama dirotasi (hapus + insert atomik): sekali pakai.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	// 1. Verify signature + expiry terhadap refresh secret
	claims, err := utils.VerifyRefreshToken(refreshToken, s.config.JWT.RefreshSecret)
	if err != nil {
		s.log.Warn("Refresh token verification failed", zap.Error(err))
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		s.log.Warn("Refresh token with malformed user id", zap.String("user_id", claims.UserID))
		return nil, ErrInvalidRefreshToken
	}

	// 2. Ledger lookup: token + user id dari claims harus match
	row, err := s.repo.RefreshToken.FindByToken(ctx, refreshToken, userID)
	if err != nil {
		s.log.Error("Failed to look up refresh token", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidRefreshToken
	}

	// 3. Expiry dicek setelah baris ketemu; baris expired dihapus supaya
	//    pemakaian berikutnya dilaporkan invalid, bukan expired
	if time.Now().After(row.ExpiresAt) {
		if err := s.repo.RefreshToken.DeleteByID(ctx, row.ID); err != nil {
			s.log.Warn("Failed to delete expired refresh token", zap.Error(err))
		}
		return nil, ErrRefreshTokenExpired
	}

	// 4. Load user
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user for refresh", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	// 5. Issue pasangan baru + rotate ledger
	accessToken, newRefreshToken, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	newRow := s.newRefreshRow(user.ID, newRefreshToken)
	if err := s.repo.RefreshToken.Rotate(ctx, row.ID, newRow); err != nil {
		s.log.Error("Failed to rotate refresh token", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	s.log.Info("Tokens refreshed", zap.String("user_id", user.ID.String()))

	return &response.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout best-effort: baris ledger dihapus kalau ada, dan selalu sukses.
// Token yang tidak dikenal tidak boleh jadi oracle.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.repo.RefreshToken.DeleteByToken(ctx, refreshToken); err != nil {
		s.log.Warn("Failed to delete refresh token on logout", zap.Error(err))
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) generateTokenPair(user *entity.User) (string, string, error) {
	accessTTL := time.Duration(s.config.JWT.AccessExpiryMinutes) * time.Minute
	accessToken, err := utils.GenerateAccessToken(
		user.ID, user.Email, string(user.Role), s.config.JWT.AccessSecret, accessTTL)
	if err != nil {
		s.log.Error("Failed to generate access token", zap.Error(err))
		return "", "", err
	}

	refreshTTL := time.Duration(s.config.JWT.RefreshExpiryDays) * 24 * time.Hour
	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.config.JWT.RefreshSecret, refreshTTL)
	if err != nil {
		s.log.Error("Failed to generate refresh token", zap.Error(err))
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *authService) newRefreshRow(userID uuid.UUID, token string) *entity.RefreshToken {
	// expires_at di ledger mengikuti TTL refresh token
	return &entity.RefreshToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.RefreshExpiryDays) * 24 * time.Hour),
	}
}

func (s *authService) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, refreshToken, err := s.generateTokenPair(user)
	if err != nil {
		return "", "", err
	}

	if err := s.repo.RefreshToken.Store(ctx, s.newRefreshRow(user.ID, refreshToken)); err != nil {
		s.log.Error("Failed to store refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
