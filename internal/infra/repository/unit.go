package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type UnitRepository struct {
	db db.DBTX
}

func NewUnitRepository(pool db.DBTX) *UnitRepository {
	return &UnitRepository{db: pool}
}

func (r *UnitRepository) Create(ctx context.Context, tx db.DBTX, unit *room.RoomUnit) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO room_units (id, room_type_id, unit_number, status, note)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id`,
		unit.ID(), unit.RoomTypeID(), unit.Number(), unit.Status().String(), unit.Note(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room unit", err)
	}
	return id, nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UnitSnapshot, error) {
	var snap commands.UnitSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, room_type_id, unit_number, status, note, created_at, updated_at
		FROM room_units
		WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.RoomTypeID, &snap.Number, &snap.Status, &snap.Note, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room unit", err)
	}
	return &snap, nil
}

// UpdateStatus only touches a row still in the expected status; zero rows
// affected means another writer won and the caller gets a conflict.
func (r *UnitRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to room.UnitStatus) error {
	tag, err := tx.Exec(ctx, `
		UPDATE room_units
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		to.String(), id, from.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update unit status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unit status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *UnitRepository) HasActiveReservationOn(ctx context.Context, unitID uuid.UUID, day time.Time) (bool, error) {
	var busy bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_unit_id = $1
			  AND status IN ('confirmed', 'checked_in')
			  AND check_in <= $2::date
			  AND check_out > $2::date
		)`, unitID, pgconv.DateFromTime(day),
	).Scan(&busy)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active reservations for unit", err)
	}
	return busy, nil
}
