package commands

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UpdateStayInput struct {
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
}

// ReservationCommands drives the booking lifecycle. Every transition is a
// single atomic store round-trip guarded by the expected "from" state, so two
// concurrent attempts against the same reservation resolve to one winner and
// one conflict, never a silent overwrite.
type ReservationCommands interface {
	// Confirm moves pending to confirmed, optionally assigning a unit.
	Confirm(ctx context.Context, id uuid.UUID, unitID *uuid.UUID) error
	// CheckIn opens the stay and drives the unit available -> occupied. A
	// unit may be supplied here if none was assigned at confirmation.
	CheckIn(ctx context.Context, id uuid.UUID, unitID *uuid.UUID) error
	// CheckOut closes the stay and drives the unit occupied -> cleaning.
	CheckOut(ctx context.Context, id uuid.UUID) error
	// Cancel is valid from any non-terminal state and releases an occupied
	// unit back to available. Cancelling twice returns a conflict and never
	// duplicates the release.
	Cancel(ctx context.Context, id uuid.UUID) error
	// UpdateStay edits dates and party on a pending or confirmed reservation
	// and re-prices it; the stored total is never edited independently.
	UpdateStay(ctx context.Context, id uuid.UUID, in UpdateStayInput) error
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	unitRepo        UnitRepository
	roomRepo        RoomRepository
	calculator      reservation.PriceCalculator
	db              TxBeginner
	clock           clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	unitRepo UnitRepository,
	roomRepo RoomRepository,
	calculator reservation.PriceCalculator,
	db TxBeginner,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		unitRepo:        unitRepo,
		roomRepo:        roomRepo,
		calculator:      calculator,
		db:              db,
		clock:           clock,
	}
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, id uuid.UUID, unitID *uuid.UUID) error {
	entity, err := c.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	if err := entity.Confirm(); err != nil {
		return errs.Mark(err, errs.ErrStateConflict)
	}

	if unitID != nil {
		unit, err := c.unitForReservation(ctx, *unitID, entity.RoomTypeID())
		if err != nil {
			return err
		}
		if unit.Status() != room.UnitAvailable {
			return errs.ErrUnitNotAvailable
		}
		if err := entity.AssignUnit(*unitID); err != nil {
			return errs.Mark(err, errs.ErrStateConflict)
		}
	}

	return c.inTx(ctx, func(tx pgx.Tx) error {
		return c.casReservation(ctx, tx, id, reservation.StatusPending, reservation.StatusConfirmed, unitID)
	})
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID, unitID *uuid.UUID) error {
	entity, err := c.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	// Resolve the hosting unit: either already assigned or supplied now.
	targetUnit := entity.RoomUnitID()
	if targetUnit == nil {
		targetUnit = unitID
	}
	if targetUnit == nil {
		return errs.Mark(reservation.ErrNoUnitAssigned, errs.ErrNoUnitAssigned)
	}

	unit, err := c.unitForReservation(ctx, *targetUnit, entity.RoomTypeID())
	if err != nil {
		return err
	}

	if entity.RoomUnitID() == nil {
		if err := entity.AssignUnit(*targetUnit); err != nil {
			return errs.Mark(err, errs.ErrStateConflict)
		}
	}

	if err := entity.CheckIn(c.clock.Now()); err != nil {
		if errors.Is(err, reservation.ErrStayNotStarted) {
			return errs.Mark(err, errs.ErrStayNotStarted)
		}
		return errs.Mark(err, errs.ErrStateConflict)
	}

	// The domain edge derives the CAS pair: only an available unit can host
	// a check-in, and it comes out occupied.
	unitFrom := unit.Status()
	if err := unit.Occupy(); err != nil {
		return errs.Mark(err, errs.ErrUnitNotAvailable)
	}

	return c.inTx(ctx, func(tx pgx.Tx) error {
		if err := c.casReservation(ctx, tx, id, reservation.StatusConfirmed, reservation.StatusCheckedIn, targetUnit); err != nil {
			return err
		}
		return c.casUnit(ctx, tx, *targetUnit, unitFrom, unit.Status())
	})
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) error {
	entity, err := c.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	if err := entity.CheckOut(); err != nil {
		return errs.Mark(err, errs.ErrStateConflict)
	}

	unitID := entity.RoomUnitID()

	var unitFrom, unitTo room.UnitStatus
	if unitID != nil {
		unit, err := c.loadUnit(ctx, *unitID)
		if err != nil {
			return err
		}
		unitFrom = unit.Status()
		// Checked-out units go through cleaning, never straight to available.
		if err := unit.StartCleaning(); err != nil {
			return errs.Mark(err, errs.ErrStateConflict)
		}
		unitTo = unit.Status()
	}

	return c.inTx(ctx, func(tx pgx.Tx) error {
		if err := c.casReservation(ctx, tx, id, reservation.StatusCheckedIn, reservation.StatusCheckedOut, nil); err != nil {
			return err
		}
		if unitID == nil {
			return nil
		}
		return c.casUnit(ctx, tx, *unitID, unitFrom, unitTo)
	})
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	entity, err := c.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	wasCheckedIn := entity.Status() == reservation.StatusCheckedIn
	fromStatus := entity.Status()

	releaseUnit, err := entity.Cancel()
	if err != nil {
		return errs.Mark(err, errs.ErrStateConflict)
	}

	unitID := entity.RoomUnitID()

	var unitFrom, unitTo room.UnitStatus
	if releaseUnit && unitID != nil && wasCheckedIn {
		unit, err := c.loadUnit(ctx, *unitID)
		if err != nil {
			return err
		}
		unitFrom = unit.Status()
		unit.Release()
		unitTo = unit.Status()
	}

	return c.inTx(ctx, func(tx pgx.Tx) error {
		if err := c.casReservation(ctx, tx, id, fromStatus, reservation.StatusCancelled, nil); err != nil {
			return err
		}
		if !releaseUnit || unitID == nil {
			// never held inventory; nothing to release
			return nil
		}
		if wasCheckedIn {
			return c.casUnit(ctx, tx, *unitID, unitFrom, unitTo)
		}
		// Unit was assigned but never occupied; it is already available and
		// the reservation record keeps the assignment for history.
		return nil
	})
}

func (c *reservationCommandsImpl) UpdateStay(ctx context.Context, id uuid.UUID, in UpdateStayInput) error {
	entity, err := c.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	roomType, err := c.roomRepo.FindTypeByID(ctx, entity.RoomTypeID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomTypeNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	stay, err := parseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	party, err := reservation.NewParty(in.Adults, in.Children)
	if err != nil {
		return errs.Mark(err, errs.ErrNoAdultsInParty)
	}

	occupancy, err := room.NewOccupancy(roomType.MaxAdults, roomType.MaxChildren, roomType.MaxGuests)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if !occupancy.Accommodates(party.Adults(), party.Children()) {
		return errs.ErrPartyTooLarge
	}

	quote := c.calculator.Quote(roomType.RateCents, stay)

	fromStatus := entity.Status()
	if err := entity.Reprice(stay, party, quote); err != nil {
		return errs.Mark(err, errs.ErrStateConflict)
	}

	return c.inTx(ctx, func(tx pgx.Tx) error {
		err := c.reservationRepo.UpdateStay(ctx, tx, id, fromStatus, stay, party, quote)
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrStateConflict
		}
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) loadReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	snap, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToReservation(snap)
}

// unitForReservation loads the unit and checks it belongs to the same room
// type as the reservation. Availability is judged by the unit entity's own
// transition guards.
func (c *reservationCommandsImpl) unitForReservation(ctx context.Context, unitID, roomTypeID uuid.UUID) (*room.RoomUnit, error) {
	unit, err := c.loadUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.RoomTypeID() != roomTypeID {
		return nil, errs.Mark(reservation.ErrUnitWrongType, errs.ErrStateConflict)
	}
	return unit, nil
}

func (c *reservationCommandsImpl) loadUnit(ctx context.Context, id uuid.UUID) (*room.RoomUnit, error) {
	snap, err := c.unitRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomUnitNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snapshotToUnit(snap), nil
}

func snapshotToUnit(snap *UnitSnapshot) *room.RoomUnit {
	var note string
	if snap.Note != nil {
		note = *snap.Note
	}
	return room.ReconstructRoomUnit(
		snap.ID, snap.RoomTypeID, snap.Number,
		room.UnitStatus(snap.Status), note,
		snap.CreatedAt, snap.UpdatedAt,
	)
}

func (c *reservationCommandsImpl) casReservation(
	ctx context.Context,
	tx pgx.Tx,
	id uuid.UUID,
	from, to reservation.Status,
	assignUnit *uuid.UUID,
) error {
	err := c.reservationRepo.UpdateStatus(ctx, tx, id, from, to, assignUnit)
	if infra.IsKind(err, infra.KindConflict) {
		return errs.ErrStateConflict
	}
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) casUnit(
	ctx context.Context,
	tx pgx.Tx,
	id uuid.UUID,
	from, to room.UnitStatus,
) error {
	err := c.unitRepo.UpdateStatus(ctx, tx, id, from, to)
	if infra.IsKind(err, infra.KindConflict) {
		return errs.ErrStateConflict
	}
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func snapshotToReservation(snap *ReservationSnapshot) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	party, err := reservation.NewParty(snap.Adults, snap.Children)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var requestsText string
	if snap.SpecialRequests != nil {
		requestsText = *snap.SpecialRequests
	}
	requests, err := reservation.NewSpecialRequests(requestsText)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	quote := reservation.Quote{
		Nights:            stay.Nights(),
		NightlyTotalCents: snap.SubtotalCents,
		ServiceFeeCents:   snap.ServiceFeeCents,
		TaxesCents:        snap.TaxesCents,
		TotalCents:        snap.TotalCents,
	}

	return reservation.ReconstructReservation(
		snap.ID, snap.Reference, snap.GuestID, snap.RoomTypeID, snap.RoomUnitID,
		stay, party, requests, quote,
		reservation.Status(snap.Status), reservation.Channel(snap.Channel),
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}
