package repository

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

const userSnapshotColumns = `id, email, password_hash, role, is_active`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*usecase.UserSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userSnapshotColumns+`
		FROM users
		WHERE email = $1`, email,
	)
	return scanUserSnapshot(row, "user not found by email")
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.UserSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userSnapshotColumns+`
		FROM users
		WHERE id = $1`, id,
	)
	return scanUserSnapshot(row, "user not found")
}

// EnsureAdmin inserts an active admin account, keeping any existing row with
// the same email untouched so seeding stays idempotent across restarts.
func (r *UserRepository) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, is_active)
		VALUES ($1, $2, 'admin', TRUE)
		ON CONFLICT (email) DO NOTHING`, email, passwordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to seed admin user", err)
	}
	return nil
}

func scanUserSnapshot(row rowScanner, notFoundMsg string) (*usecase.UserSnapshot, error) {
	var snap usecase.UserSnapshot
	err := row.Scan(&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}
