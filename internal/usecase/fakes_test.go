package usecase_test

import (
	"context"
	"sync"

	"marketplace-auth/internal/data/entity"
	"marketplace-auth/internal/data/repository"
	"marketplace-auth/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx memenuhi pgx.Tx; fake repo tidak peduli querier-nya.
type fakeTx struct{}

func (fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }
func (fakeTx) Commit(ctx context.Context) error          { return nil }
func (fakeTx) Rollback(ctx context.Context) error        { return nil }
func (fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (fakeTx) Conn() *pgx.Conn                                               { return nil }

// fakeDB memenuhi database.PgxIface. Service hanya memakai Begin;
// query jalan lewat fake repository.
type fakeDB struct{}

func (fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }
func (fakeDB) Ping(ctx context.Context) error            { return nil }
func (fakeDB) Close()                                    {}

// ==================== USER ====================

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

// Create menegakkan unique email seperti constraint di database.
func (f *fakeUserRepo) Create(ctx context.Context, q database.Querier, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byEmail[email], nil
}

// ==================== VENDOR ====================

type fakeVendorRepo struct {
	mu       sync.Mutex
	byUserID map[uuid.UUID]*entity.VendorProfile
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{byUserID: make(map[uuid.UUID]*entity.VendorProfile)}
}

func (f *fakeVendorRepo) Create(ctx context.Context, q database.Querier, vendor *entity.VendorProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byUserID[vendor.UserID]; exists {
		return repository.ErrProfileExists
	}
	f.byUserID[vendor.UserID] = vendor
	return nil
}

func (f *fakeVendorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byUserID[userID], nil
}

func (f *fakeVendorRepo) GetStatusByUserID(ctx context.Context, userID uuid.UUID) (entity.VendorStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.byUserID[userID]; ok {
		return v.Status, nil
	}
	return "", nil
}

// ==================== CLIENT ====================

type fakeClientRepo struct {
	mu       sync.Mutex
	byUserID map[uuid.UUID]*entity.ClientProfile
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byUserID: make(map[uuid.UUID]*entity.ClientProfile)}
}

func (f *fakeClientRepo) Create(ctx context.Context, q database.Querier, client *entity.ClientProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byUserID[client.UserID]; exists {
		return repository.ErrProfileExists
	}
	f.byUserID[client.UserID] = client
	return nil
}

func (f *fakeClientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byUserID[userID], nil
}

// ==================== REFRESH TOKEN LEDGER ====================

type fakeRefreshTokenRepo struct {
	mu      sync.Mutex
	byToken map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byToken: make(map[string]*entity.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Store(ctx context.Context, token *entity.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byToken[token.Token] = token
	return nil
}

func (f *fakeRefreshTokenRepo) FindByToken(ctx context.Context, token string, userID uuid.UUID) (*entity.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.byToken[token]
	if !ok || row.UserID != userID {
		return nil, nil
	}
	return row, nil
}

func (f *fakeRefreshTokenRepo) Rotate(ctx context.Context, oldID uuid.UUID, newToken *entity.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, row := range f.byToken {
		if row.ID == oldID {
			delete(f.byToken, token)
		}
	}
	f.byToken[newToken.Token] = newToken
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byToken, token)
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, row := range f.byToken {
		if row.ID == id {
			delete(f.byToken, token)
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byToken)
}

// fakeRepos membundel semua fake + grup repository yang dipakai service.
type fakeRepos struct {
	users   *fakeUserRepo
	vendors *fakeVendorRepo
	clients *fakeClientRepo
	tokens  *fakeRefreshTokenRepo
	group   *repository.Repository
}

func newFakeRepos() *fakeRepos {
	f := &fakeRepos{
		users:   newFakeUserRepo(),
		vendors: newFakeVendorRepo(),
		clients: newFakeClientRepo(),
		tokens:  newFakeRefreshTokenRepo(),
	}
	f.group = &repository.Repository{
		User:         f.users,
		Vendor:       f.vendors,
		Client:       f.clients,
		RefreshToken: f.tokens,
	}
	return f
}
