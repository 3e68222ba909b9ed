//go:build unit

package commands_test

import (
	"context"
	"time"

	"stayhub/internal/domain/guest"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	roomTypeID = uuid.New()
	unitID     = uuid.New()
	resID      = uuid.New()
)

// fakeTx embeds the pgx.Tx interface so only the lifecycle methods the
// commands actually call need implementations. Rollback after Commit reports
// pgx.ErrTxClosed the way a real transaction does.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(_ context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	d.tx = &fakeTx{}
	return d.tx, nil
}

type fakeRoomRepo struct {
	types map[uuid.UUID]*commands.RoomTypeSnapshot
}

func newFakeRoomRepo(snaps ...*commands.RoomTypeSnapshot) *fakeRoomRepo {
	repo := &fakeRoomRepo{types: make(map[uuid.UUID]*commands.RoomTypeSnapshot)}
	for _, s := range snaps {
		repo.types[s.ID] = s
	}
	return repo
}

func (r *fakeRoomRepo) FindTypeByID(_ context.Context, id uuid.UUID) (*commands.RoomTypeSnapshot, error) {
	if s, ok := r.types[id]; ok {
		return s, nil
	}
	return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
}

func (r *fakeRoomRepo) FindTypeBySlug(_ context.Context, slug string) (*commands.RoomTypeSnapshot, error) {
	for _, s := range r.types {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
}

type unitStatusCall struct {
	id       uuid.UUID
	from, to room.UnitStatus
}

type fakeUnitRepo struct {
	units       map[uuid.UUID]*commands.UnitSnapshot
	statusCalls []unitStatusCall
	updateErr   error
	created     *room.RoomUnit
	createErr   error
	activeStays bool
	busyChecked bool
}

func newFakeUnitRepo(snaps ...*commands.UnitSnapshot) *fakeUnitRepo {
	repo := &fakeUnitRepo{units: make(map[uuid.UUID]*commands.UnitSnapshot)}
	for _, s := range snaps {
		repo.units[s.ID] = s
	}
	return repo
}

func (r *fakeUnitRepo) Create(_ context.Context, _ db.DBTX, unit *room.RoomUnit) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = unit
	return unit.ID(), nil
}

func (r *fakeUnitRepo) FindByID(_ context.Context, id uuid.UUID) (*commands.UnitSnapshot, error) {
	if s, ok := r.units[id]; ok {
		return s, nil
	}
	return nil, infra.WrapRepoErr("room unit not found", nil, infra.KindNotFound)
}

func (r *fakeUnitRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to room.UnitStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.statusCalls = append(r.statusCalls, unitStatusCall{id: id, from: from, to: to})
	return nil
}

func (r *fakeUnitRepo) HasActiveReservationOn(_ context.Context, _ uuid.UUID, _ time.Time) (bool, error) {
	r.busyChecked = true
	return r.activeStays, nil
}

type fakeGuestRepo struct {
	upsertID uuid.UUID
	last     *guest.Guest
	err      error
}

func (r *fakeGuestRepo) UpsertByEmail(_ context.Context, _ db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.last = g
	if r.upsertID == uuid.Nil {
		r.upsertID = uuid.New()
	}
	return r.upsertID, nil
}

type resStatusCall struct {
	id       uuid.UUID
	from, to reservation.Status
	unit     *uuid.UUID
}

type fakeReservationRepo struct {
	snaps       map[uuid.UUID]*commands.ReservationSnapshot
	created     *reservation.Reservation
	createErr   error
	statusCalls []resStatusCall
	updateErr   error
	stayFrom    reservation.Status
	stayQuote   *reservation.Quote
	stayErr     error
}

func newFakeReservationRepo(snaps ...*commands.ReservationSnapshot) *fakeReservationRepo {
	repo := &fakeReservationRepo{snaps: make(map[uuid.UUID]*commands.ReservationSnapshot)}
	for _, s := range snaps {
		repo.snaps[s.ID] = s
	}
	return repo
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = res
	return res.ID(), nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	if s, ok := r.snaps[id]; ok {
		return s, nil
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to reservation.Status, assignUnit *uuid.UUID) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.statusCalls = append(r.statusCalls, resStatusCall{id: id, from: from, to: to, unit: assignUnit})
	return nil
}

func (r *fakeReservationRepo) UpdateStay(_ context.Context, _ db.DBTX, _ uuid.UUID, from reservation.Status, _ reservation.StayPeriod, _ reservation.Party, quote reservation.Quote) error {
	if r.stayErr != nil {
		return r.stayErr
	}
	r.stayFrom = from
	q := quote
	r.stayQuote = &q
	return nil
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

func roomTypeSnap() *commands.RoomTypeSnapshot {
	return &commands.RoomTypeSnapshot{
		ID:          roomTypeID,
		Slug:        "deluxe-king",
		Name:        "Deluxe King",
		RateCents:   24900,
		SizeM2:      40,
		ViewType:    "city",
		Floor:       "12",
		Rating:      4.6,
		MaxAdults:   2,
		MaxChildren: 1,
		MaxGuests:   3,
		Amenities:   []string{"wifi", "minibar"},
		IsActive:    true,
	}
}

func unitSnap(status room.UnitStatus) *commands.UnitSnapshot {
	return &commands.UnitSnapshot{
		ID:         unitID,
		RoomTypeID: roomTypeID,
		Number:     "1204",
		Status:     string(status),
	}
}

func resSnap(status reservation.Status, unit *uuid.UUID) *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:              resID,
		Reference:       "RSV-A1B2C3D4",
		GuestID:         uuid.New(),
		RoomTypeID:      roomTypeID,
		RoomUnitID:      unit,
		CheckIn:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Adults:          2,
		Children:        0,
		SubtotalCents:   49800,
		ServiceFeeCents: 5000,
		TaxesCents:      5000,
		TotalCents:      59800,
		Status:          string(status),
		Channel:         string(reservation.ChannelGuest),
		CreatedAt:       time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}
