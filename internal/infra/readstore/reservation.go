package readstore

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(pool db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: pool}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		v          queries.ReservationView
		unitID     pgtype.UUID
		unitNumber pgtype.Text
		checkIn    pgtype.Date
		checkOut   pgtype.Date
		requests   pgtype.Text
		guestPhone pgtype.Text
	)
	err := s.db.QueryRow(ctx, `
		SELECT r.id, r.reference,
		       r.room_type_id, rt.name, rt.slug,
		       r.room_unit_id, u.unit_number,
		       r.guest_id, g.first_name || ' ' || g.last_name, g.email, g.phone,
		       r.check_in, r.check_out, r.adults, r.children, r.special_requests,
		       (r.check_out - r.check_in),
		       r.subtotal_cents, r.service_fee_cents, r.taxes_cents, r.total_cents,
		       r.status, r.channel, r.created_at, r.updated_at
		FROM reservations r
		JOIN room_types rt ON rt.id = r.room_type_id
		JOIN guests g ON g.id = r.guest_id
		LEFT JOIN room_units u ON u.id = r.room_unit_id
		WHERE r.id = $1`, id,
	).Scan(
		&v.ID, &v.Reference,
		&v.RoomTypeID, &v.RoomName, &v.RoomSlug,
		&unitID, &unitNumber,
		&v.GuestID, &v.GuestName, &v.GuestEmail, &guestPhone,
		&checkIn, &checkOut, &v.Adults, &v.Children, &requests,
		&v.Nights,
		&v.SubtotalCents, &v.ServiceFeeCents, &v.TaxesCents, &v.TotalCents,
		&v.Status, &v.Channel, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	v.UnitID = pgconv.UUIDPtr(unitID)
	v.UnitNumber = pgconv.TextPtr(unitNumber)
	v.CheckIn = checkIn.Time
	v.CheckOut = checkOut.Time
	v.SpecialRequests = pgconv.TextPtr(requests)
	if guestPhone.Valid {
		v.GuestPhone = guestPhone.String
	}
	return &v, nil
}

// ListByStatus returns one page newest-first plus the total row count for the
// filter, fetched with a window function so paging stays one round trip.
func (s *ReservationReadStore) ListByStatus(ctx context.Context, status string, limit, offset int32) ([]*queries.ReservationListItem, int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.reference, rt.name, u.unit_number,
		       g.first_name || ' ' || g.last_name,
		       r.check_in, r.check_out, r.total_cents, r.status, r.created_at,
		       COUNT(*) OVER ()
		FROM reservations r
		JOIN room_types rt ON rt.id = r.room_type_id
		JOIN guests g ON g.id = r.guest_id
		LEFT JOIN room_units u ON u.id = r.room_unit_id
		WHERE ($1 = '' OR r.status = $1)
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`,
		status, limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var (
		items []*queries.ReservationListItem
		total int64
	)
	for rows.Next() {
		var (
			item       queries.ReservationListItem
			unitNumber pgtype.Text
			checkIn    pgtype.Date
			checkOut   pgtype.Date
		)
		if err := rows.Scan(
			&item.ID, &item.Reference, &item.RoomName, &unitNumber,
			&item.GuestName,
			&checkIn, &checkOut, &item.TotalCents, &item.Status, &item.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.UnitNumber = pgconv.TextPtr(unitNumber)
		item.CheckIn = checkIn.Time
		item.CheckOut = checkOut.Time
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return items, total, nil
}

func (s *ReservationReadStore) CountByStatus(ctx context.Context) (*queries.ReservationStatusCounts, error) {
	var counts queries.ReservationStatusCounts
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE status = 'checked_in'),
			COUNT(*) FILTER (WHERE status = 'checked_out'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM reservations`,
	).Scan(&counts.Pending, &counts.Confirmed, &counts.CheckedIn, &counts.CheckedOut, &counts.Cancelled)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations", err)
	}
	return &counts, nil
}
