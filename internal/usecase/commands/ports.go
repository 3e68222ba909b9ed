package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/guest"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Snapshots are minimal read models for command-side validation. They carry
// raw values; commands rebuild domain entities from them when a transition
// needs the state machine's rules.

type RoomTypeSnapshot struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	RateCents   int64
	SizeM2      int
	ViewType    string
	Floor       string
	Rating      float64
	MaxAdults   int
	MaxChildren int
	MaxGuests   int
	Amenities   []string
	IsActive    bool
}

type UnitSnapshot struct {
	ID         uuid.UUID
	RoomTypeID uuid.UUID
	Number     string
	Status     string
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReservationSnapshot struct {
	ID              uuid.UUID
	Reference       string
	GuestID         uuid.UUID
	RoomTypeID      uuid.UUID
	RoomUnitID      *uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests *string
	SubtotalCents   int64
	ServiceFeeCents int64
	TaxesCents      int64
	TotalCents      int64
	Status          string
	Channel         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TxBeginner opens transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type RoomRepository interface {
	FindTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	FindTypeBySlug(ctx context.Context, slug string) (*RoomTypeSnapshot, error)
}

type UnitRepository interface {
	Create(ctx context.Context, tx db.DBTX, unit *room.RoomUnit) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UnitSnapshot, error)
	// UpdateStatus is a compare-and-swap on the expected current status. A
	// stale expectation affects zero rows and surfaces as KindConflict.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to room.UnitStatus) error
	// HasActiveReservationOn reports whether a confirmed or checked-in
	// reservation assigned to the unit covers the given day.
	HasActiveReservationOn(ctx context.Context, unitID uuid.UUID, day time.Time) (bool, error)
}

type GuestRepository interface {
	// UpsertByEmail creates the guest or refreshes name/phone on the existing
	// record, returning the guest id either way. Email is the guest identity.
	UpsertByEmail(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// UpdateStatus is a compare-and-swap from one status to another.
	// assignUnit, when non-nil, records the unit in the same statement.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to reservation.Status, assignUnit *uuid.UUID) error
	// UpdateStay rewrites dates, party and price in one statement, guarded by
	// the expected current status.
	UpdateStay(ctx context.Context, tx db.DBTX, id uuid.UUID, from reservation.Status, stay reservation.StayPeriod, party reservation.Party, quote reservation.Quote) error
}
