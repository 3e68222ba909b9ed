package repository

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

const roomTypeSnapshotColumns = `
	id, slug, name, rate_cents, COALESCE(size_m2, 0), COALESCE(view_type, ''),
	COALESCE(floor, ''), rating::float8, max_adults, max_children, max_guests,
	COALESCE(amenities, '{}'), is_active`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(pool db.DBTX) *RoomRepository {
	return &RoomRepository{db: pool}
}

func (r *RoomRepository) FindTypeByID(ctx context.Context, id uuid.UUID) (*commands.RoomTypeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+roomTypeSnapshotColumns+` FROM room_types WHERE id = $1`, id)
	return scanRoomTypeSnapshot(row)
}

func (r *RoomRepository) FindTypeBySlug(ctx context.Context, slug string) (*commands.RoomTypeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+roomTypeSnapshotColumns+` FROM room_types WHERE slug = $1`, slug)
	return scanRoomTypeSnapshot(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomTypeSnapshot(row rowScanner) (*commands.RoomTypeSnapshot, error) {
	var snap commands.RoomTypeSnapshot
	err := row.Scan(
		&snap.ID, &snap.Slug, &snap.Name, &snap.RateCents, &snap.SizeM2,
		&snap.ViewType, &snap.Floor, &snap.Rating,
		&snap.MaxAdults, &snap.MaxChildren, &snap.MaxGuests,
		&snap.Amenities, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return &snap, nil
}
