package commands

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UnitCommands covers the operator-driven side of the inventory machine.
// Machine-driven edges (check-in, check-out) live in ReservationCommands so
// they stay paired with the booking transition that causes them.
type UnitCommands interface {
	// AddUnit registers a physical unit under a room type, defaulting to
	// available. Duplicate unit numbers within a room type are rejected.
	AddUnit(ctx context.Context, roomTypeID uuid.UUID, number, note string) (uuid.UUID, error)
	// SetStatus moves a unit between statuses with compare-and-swap on the
	// expected current status. Marking a unit available while an active
	// reservation covers today is rejected.
	SetStatus(ctx context.Context, unitID uuid.UUID, expected, next room.UnitStatus) error
}

type unitCommandsImpl struct {
	unitRepo UnitRepository
	roomRepo RoomRepository
	db       TxBeginner
	clock    clock.Clock
}

func NewUnitCommands(
	unitRepo UnitRepository,
	roomRepo RoomRepository,
	db TxBeginner,
	clock clock.Clock,
) UnitCommands {
	return &unitCommandsImpl{
		unitRepo: unitRepo,
		roomRepo: roomRepo,
		db:       db,
		clock:    clock,
	}
}

func (c *unitCommandsImpl) AddUnit(ctx context.Context, roomTypeID uuid.UUID, number, note string) (uuid.UUID, error) {
	if _, err := c.roomRepo.FindTypeByID(ctx, roomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrRoomTypeNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	unit, err := room.NewRoomUnit(roomTypeID, number, note)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var unitID uuid.UUID
	err = c.inTx(ctx, func(tx pgx.Tx) error {
		id, createErr := c.unitRepo.Create(ctx, tx, unit)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.ErrDuplicateUnitNumber
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		unitID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return unitID, nil
}

func (c *unitCommandsImpl) SetStatus(ctx context.Context, unitID uuid.UUID, expected, next room.UnitStatus) error {
	if !expected.IsValid() || !next.IsValid() {
		return errs.Mark(room.ErrInvalidUnitStatus, errs.ErrDomainValidation)
	}

	if _, err := c.unitRepo.FindByID(ctx, unitID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomUnitNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Cross-check against the reservation machine: a unit hosting an active
	// stay today must not rejoin the available pool.
	if next == room.UnitAvailable {
		busy, err := c.unitRepo.HasActiveReservationOn(ctx, unitID, c.clock.Today())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if busy {
			return errs.ErrUnitHasActiveStay
		}
	}

	return c.inTx(ctx, func(tx pgx.Tx) error {
		err := c.unitRepo.UpdateStatus(ctx, tx, unitID, expected, next)
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrStateConflict
		}
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *unitCommandsImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
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
