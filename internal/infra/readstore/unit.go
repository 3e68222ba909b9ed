package readstore

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UnitReadStore struct {
	db db.DBTX
}

func NewUnitReadStore(pool db.DBTX) *UnitReadStore {
	return &UnitReadStore{db: pool}
}

// List joins room_types for the board's room name and floor columns. Empty
// filter values are wildcards; the NULLIF trick keeps it one statement.
func (s *UnitReadStore) List(ctx context.Context, floor, status string) ([]*queries.UnitView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT u.id, u.room_type_id, rt.name, u.unit_number, rt.floor,
		       u.status, u.note, u.updated_at
		FROM room_units u
		JOIN room_types rt ON rt.id = u.room_type_id
		WHERE ($1 = '' OR rt.floor = $1)
		  AND ($2 = '' OR u.status = $2)
		ORDER BY u.unit_number`,
		floor, status,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room units", err)
	}
	defer rows.Close()

	var views []*queries.UnitView
	for rows.Next() {
		var (
			v    queries.UnitView
			note pgtype.Text
		)
		if err := rows.Scan(
			&v.ID, &v.RoomTypeID, &v.RoomName, &v.Number, &v.Floor,
			&v.Status, &note, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room unit", err)
		}
		v.Note = pgconv.TextPtr(note)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room unit rows", err)
	}
	return views, nil
}

func (s *UnitReadStore) Stats(ctx context.Context) (*queries.UnitStats, error) {
	var stats queries.UnitStats
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'available'),
			COUNT(*) FILTER (WHERE status = 'occupied'),
			COUNT(*) FILTER (WHERE status = 'maintenance'),
			COUNT(*) FILTER (WHERE status = 'cleaning'),
			COUNT(*)
		FROM room_units`,
	).Scan(&stats.Available, &stats.Occupied, &stats.Maintenance, &stats.Cleaning, &stats.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count room units", err)
	}
	return &stats, nil
}

func (s *UnitReadStore) Floors(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT rt.floor
		FROM room_units u
		JOIN room_types rt ON rt.id = u.room_type_id
		ORDER BY rt.floor`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list floors", err)
	}
	defer rows.Close()

	var floors []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, infra.WrapRepoErr("failed to scan floor", err)
		}
		floors = append(floors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read floor rows", err)
	}
	return floors, nil
}
