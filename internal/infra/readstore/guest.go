package readstore

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(pool db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: pool}
}

func (s *GuestReadStore) List(ctx context.Context, search string, limit int32) ([]*queries.GuestView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT g.id, g.first_name, g.last_name, g.email,
		       COALESCE(g.phone, ''), g.notes,
		       g.user_id IS NOT NULL,
		       COUNT(r.id),
		       g.created_at
		FROM guests g
		LEFT JOIN reservations r ON r.guest_id = g.id
		WHERE ($1 = ''
		       OR g.first_name ILIKE '%' || $1 || '%'
		       OR g.last_name ILIKE '%' || $1 || '%'
		       OR g.email ILIKE '%' || $1 || '%')
		GROUP BY g.id
		ORDER BY g.created_at DESC
		LIMIT $2`,
		search, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var views []*queries.GuestView
	for rows.Next() {
		var (
			v     queries.GuestView
			notes pgtype.Text
		)
		if err := rows.Scan(
			&v.ID, &v.FirstName, &v.LastName, &v.Email,
			&v.Phone, &notes,
			&v.IsRegistered,
			&v.Reservations,
			&v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		v.Notes = pgconv.TextPtr(notes)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest rows", err)
	}
	return views, nil
}
