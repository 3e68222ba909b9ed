package readstore

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(pool db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: pool}
}

const roomTypeViewColumns = `
	id, slug, name, description,
	rate_cents, size_m2, view_type, floor, rating::float8,
	max_adults, max_children, max_guests,
	COALESCE(amenities, '{}'), is_active`

// ListActive preserves catalog order. "Featured" sorting on the public site
// is this order passed through unchanged.
func (s *RoomReadStore) ListActive(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+roomTypeViewColumns+`
		FROM room_types
		WHERE is_active
		ORDER BY sort_order, created_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var views []*queries.RoomTypeView
	for rows.Next() {
		v, err := scanRoomTypeView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room type rows", err)
	}
	return views, nil
}

func (s *RoomReadStore) FindBySlug(ctx context.Context, slug string) (*queries.RoomTypeView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+roomTypeViewColumns+`
		FROM room_types
		WHERE slug = $1 AND is_active`, slug,
	)
	return scanRoomTypeView(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomTypeView(row rowScanner) (*queries.RoomTypeView, error) {
	var (
		v    queries.RoomTypeView
		desc pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.Slug, &v.Name, &desc,
		&v.RateCents, &v.SizeM2, &v.ViewType, &v.Floor, &v.Rating,
		&v.MaxAdults, &v.MaxChildren, &v.MaxGuests,
		&v.Amenities, &v.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room type", err)
	}
	v.Description = pgconv.TextPtr(desc)
	return &v, nil
}
