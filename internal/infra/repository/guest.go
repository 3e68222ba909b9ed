package repository

import (
	"context"

	"stayhub/internal/domain/guest"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(pool db.DBTX) *GuestRepository {
	return &GuestRepository{db: pool}
}

// UpsertByEmail keys guests on email. A returning guest gets name and phone
// refreshed from the latest booking form; user_id is only ever set, never
// cleared, so a registered guest stays linked to their account.
func (r *GuestRepository) UpsertByEmail(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO guests (id, first_name, last_name, email, phone, notes, user_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			phone      = COALESCE(EXCLUDED.phone, guests.phone),
			user_id    = COALESCE(guests.user_id, EXCLUDED.user_id),
			updated_at = now()
		RETURNING id`,
		g.ID(), g.Name().First(), g.Name().Last(), g.Email().Value(),
		g.Phone().Value(), g.Notes(), pgconv.UUIDFromPtr(g.UserID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert guest", err)
	}
	return id, nil
}
