package repository

import (
	"context"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(pool db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO reservations (
			id, reference, guest_id, room_type_id, room_unit_id,
			check_in, check_out, adults, children, special_requests,
			subtotal_cents, service_fee_cents, taxes_cents, total_cents,
			status, channel
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13, $14, $15, $16)
		RETURNING id`,
		res.ID(), res.Reference(), res.GuestID(), res.RoomTypeID(),
		pgconv.UUIDFromPtr(res.RoomUnitID()),
		pgconv.DateFromTime(res.Stay().CheckIn()), pgconv.DateFromTime(res.Stay().CheckOut()),
		res.Party().Adults(), res.Party().Children(), res.SpecialRequests().String(),
		res.Quote().NightlyTotalCents, res.Quote().ServiceFeeCents,
		res.Quote().TaxesCents, res.Quote().TotalCents,
		res.Status().String(), string(res.Channel()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var (
		snap     commands.ReservationSnapshot
		unitID   pgtype.UUID
		checkIn  pgtype.Date
		checkOut pgtype.Date
		requests pgtype.Text
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, reference, guest_id, room_type_id, room_unit_id,
		       check_in, check_out, adults, children, special_requests,
		       subtotal_cents, service_fee_cents, taxes_cents, total_cents,
		       status, channel, created_at, updated_at
		FROM reservations
		WHERE id = $1`, id,
	).Scan(
		&snap.ID, &snap.Reference, &snap.GuestID, &snap.RoomTypeID, &unitID,
		&checkIn, &checkOut, &snap.Adults, &snap.Children, &requests,
		&snap.SubtotalCents, &snap.ServiceFeeCents, &snap.TaxesCents, &snap.TotalCents,
		&snap.Status, &snap.Channel, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	snap.RoomUnitID = pgconv.UUIDPtr(unitID)
	snap.CheckIn = checkIn.Time
	snap.CheckOut = checkOut.Time
	snap.SpecialRequests = pgconv.TextPtr(requests)
	return &snap, nil
}

// UpdateStatus moves a reservation between statuses with a compare-and-swap
// on the expected current status. Zero rows affected means a concurrent
// writer already moved it. assignUnit, when set, is recorded in the same
// statement so the transition and the assignment cannot diverge.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to reservation.Status, assignUnit *uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE reservations
		SET status = $1,
		    room_unit_id = COALESCE($2, room_unit_id),
		    updated_at = now()
		WHERE id = $3 AND status = $4`,
		to.String(), pgconv.UUIDFromPtr(assignUnit), id, from.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) UpdateStay(ctx context.Context, tx db.DBTX, id uuid.UUID, from reservation.Status, stay reservation.StayPeriod, party reservation.Party, quote reservation.Quote) error {
	tag, err := tx.Exec(ctx, `
		UPDATE reservations
		SET check_in = $1, check_out = $2,
		    adults = $3, children = $4,
		    subtotal_cents = $5, service_fee_cents = $6,
		    taxes_cents = $7, total_cents = $8,
		    updated_at = now()
		WHERE id = $9 AND status = $10`,
		pgconv.DateFromTime(stay.CheckIn()), pgconv.DateFromTime(stay.CheckOut()),
		party.Adults(), party.Children(),
		quote.NightlyTotalCents, quote.ServiceFeeCents, quote.TaxesCents, quote.TotalCents,
		id, from.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation stay", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
