//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/room"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stayDay is inside the default snapshot's stay window [06-01, 06-03).
var stayDay = time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

func newReservationCommands(
	resRepo *fakeReservationRepo,
	unitRepo *fakeUnitRepo,
	roomRepo *fakeRoomRepo,
	now time.Time,
) (commands.ReservationCommands, *fakeDB) {
	dbf := &fakeDB{}
	cmds := commands.NewReservationCommands(
		resRepo, unitRepo, roomRepo,
		reservation.NewCalculator(5000, 10),
		dbf, clock.NewFixedClock(now),
	)
	return cmds, dbf
}

func TestReservationCommandsConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a pending reservation", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		cmds, dbf := newReservationCommands(resRepo, newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, nil)

		require.NoError(t, err)
		require.Len(t, resRepo.statusCalls, 1)
		call := resRepo.statusCalls[0]
		assert.Equal(t, reservation.StatusPending, call.from)
		assert.Equal(t, reservation.StatusConfirmed, call.to)
		assert.Nil(t, call.unit)
		assert.True(t, dbf.tx.committed)
	})

	t.Run("assigns a validated unit alongside confirmation", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, &unitID)

		require.NoError(t, err)
		require.Len(t, resRepo.statusCalls, 1)
		require.NotNil(t, resRepo.statusCalls[0].unit)
		assert.Equal(t, unitID, *resRepo.statusCalls[0].unit)
	})

	t.Run("rejects a unit of another room type", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		wrongType := unitSnap(room.UnitAvailable)
		wrongType.RoomTypeID = uuid.New()
		unitRepo := newFakeUnitRepo(wrongType)
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, &unitID)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Empty(t, resRepo.statusCalls)
	})

	t.Run("rejects a unit that is not available", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitMaintenance))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, &unitID)

		assert.ErrorIs(t, err, errs.ErrUnitNotAvailable)
	})

	t.Run("reports unknown unit", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		cmds, _ := newReservationCommands(resRepo, newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, &unitID)

		assert.ErrorIs(t, err, errs.ErrRoomUnitNotFound)
	})

	t.Run("conflicts when already confirmed", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, nil))
		cmds, dbf := newReservationCommands(resRepo, newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Nil(t, dbf.tx)
	})

	t.Run("reports unknown reservation", func(t *testing.T) {
		cmds, _ := newReservationCommands(newFakeReservationRepo(), newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("surfaces a stale compare-and-swap as conflict", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		resRepo.updateErr = conflictErr("status changed concurrently")
		cmds, dbf := newReservationCommands(resRepo, newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.Confirm(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.False(t, dbf.tx.committed)
		assert.True(t, dbf.tx.rolledBack)
	})
}

func TestReservationCommandsCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("drives the assigned unit to occupied", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, dbf := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.CheckIn(ctx, resID, nil)

		require.NoError(t, err)
		require.Len(t, resRepo.statusCalls, 1)
		assert.Equal(t, reservation.StatusConfirmed, resRepo.statusCalls[0].from)
		assert.Equal(t, reservation.StatusCheckedIn, resRepo.statusCalls[0].to)
		require.Len(t, unitRepo.statusCalls, 1)
		assert.Equal(t, room.UnitAvailable, unitRepo.statusCalls[0].from)
		assert.Equal(t, room.UnitOccupied, unitRepo.statusCalls[0].to)
		assert.True(t, dbf.tx.committed)
	})

	t.Run("accepts a unit supplied at the desk", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, nil))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.CheckIn(ctx, resID, &unitID)

		require.NoError(t, err)
		require.Len(t, resRepo.statusCalls, 1)
		require.NotNil(t, resRepo.statusCalls[0].unit)
		assert.Equal(t, unitID, *resRepo.statusCalls[0].unit)
	})

	t.Run("rejects check-in before the stay window", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		early := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)
		cmds, dbf := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), early)

		err := cmds.CheckIn(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrStayNotStarted)
		assert.Nil(t, dbf.tx)
	})

	t.Run("requires a unit from somewhere", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, nil))
		cmds, _ := newReservationCommands(resRepo, newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.CheckIn(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrNoUnitAssigned)
	})

	t.Run("conflicts when still pending", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.CheckIn(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("rejects an occupied unit", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitOccupied))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.CheckIn(ctx, resID, nil)

		assert.ErrorIs(t, err, errs.ErrUnitNotAvailable)
	})
}

func TestReservationCommandsCheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the stay and sends the unit to cleaning", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusCheckedIn, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitOccupied))
		cmds, dbf := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.CheckOut(ctx, resID)

		require.NoError(t, err)
		require.Len(t, resRepo.statusCalls, 1)
		assert.Equal(t, reservation.StatusCheckedIn, resRepo.statusCalls[0].from)
		assert.Equal(t, reservation.StatusCheckedOut, resRepo.statusCalls[0].to)
		require.Len(t, unitRepo.statusCalls, 1)
		assert.Equal(t, room.UnitOccupied, unitRepo.statusCalls[0].from)
		assert.Equal(t, room.UnitCleaning, unitRepo.statusCalls[0].to)
		assert.True(t, dbf.tx.committed)
	})

	t.Run("conflicts when not checked in", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, &unitID))
		cmds, dbf := newReservationCommands(resRepo, newFakeUnitRepo(), newFakeRoomRepo(), stayDay)

		err := cmds.CheckOut(ctx, resID)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Nil(t, dbf.tx)
	})

	t.Run("conflicts when the hosting unit is not occupied", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusCheckedIn, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, dbf := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.CheckOut(ctx, resID)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Nil(t, dbf.tx)
		assert.Empty(t, unitRepo.statusCalls)
	})
}

func TestReservationCommandsCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels a pending reservation without touching units", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		unitRepo := newFakeUnitRepo()
		cmds, dbf := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Cancel(ctx, resID)

		require.NoError(t, err)
		require.Len(t, resRepo.statusCalls, 1)
		assert.Equal(t, reservation.StatusPending, resRepo.statusCalls[0].from)
		assert.Equal(t, reservation.StatusCancelled, resRepo.statusCalls[0].to)
		assert.Empty(t, unitRepo.statusCalls)
		assert.True(t, dbf.tx.committed)
	})

	t.Run("releases the unit when cancelling mid-stay", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusCheckedIn, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitOccupied))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Cancel(ctx, resID)

		require.NoError(t, err)
		require.Len(t, unitRepo.statusCalls, 1)
		assert.Equal(t, room.UnitOccupied, unitRepo.statusCalls[0].from)
		assert.Equal(t, room.UnitAvailable, unitRepo.statusCalls[0].to)
	})

	t.Run("leaves an assigned but never occupied unit alone", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, &unitID))
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, _ := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Cancel(ctx, resID)

		require.NoError(t, err)
		assert.Empty(t, unitRepo.statusCalls)
	})

	t.Run("conflicts on a second cancel", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusCancelled, &unitID))
		unitRepo := newFakeUnitRepo()
		cmds, dbf := newReservationCommands(resRepo, unitRepo, newFakeRoomRepo(), stayDay)

		err := cmds.Cancel(ctx, resID)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Nil(t, dbf.tx)
		assert.Empty(t, unitRepo.statusCalls)
	})
}

func TestReservationCommandsUpdateStay(t *testing.T) {
	ctx := context.Background()

	t.Run("reprices from the edited stay", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, nil))
		roomRepo := newFakeRoomRepo(roomTypeSnap())
		cmds, dbf := newReservationCommands(resRepo, newFakeUnitRepo(), roomRepo, stayDay)

		err := cmds.UpdateStay(ctx, resID, commands.UpdateStayInput{
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-14",
			Adults:   2,
			Children: 1,
		})

		require.NoError(t, err)
		require.NotNil(t, resRepo.stayQuote)
		assert.Equal(t, 4, resRepo.stayQuote.Nights)
		assert.Equal(t, int64(99600), resRepo.stayQuote.NightlyTotalCents)
		assert.Equal(t, int64(5000), resRepo.stayQuote.ServiceFeeCents)
		assert.Equal(t, int64(10000), resRepo.stayQuote.TaxesCents)
		assert.Equal(t, int64(114600), resRepo.stayQuote.TotalCents)
		assert.Equal(t, reservation.StatusConfirmed, resRepo.stayFrom)
		assert.True(t, dbf.tx.committed)
	})

	t.Run("rejects a party over the room limits", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		roomRepo := newFakeRoomRepo(roomTypeSnap())
		cmds, _ := newReservationCommands(resRepo, newFakeUnitRepo(), roomRepo, stayDay)

		err := cmds.UpdateStay(ctx, resID, commands.UpdateStayInput{
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-12",
			Adults:   3,
			Children: 0,
		})

		assert.ErrorIs(t, err, errs.ErrPartyTooLarge)
	})

	t.Run("rejects reversed dates", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusPending, nil))
		roomRepo := newFakeRoomRepo(roomTypeSnap())
		cmds, _ := newReservationCommands(resRepo, newFakeUnitRepo(), roomRepo, stayDay)

		err := cmds.UpdateStay(ctx, resID, commands.UpdateStayInput{
			CheckIn:  "2025-06-14",
			CheckOut: "2025-06-10",
			Adults:   2,
		})

		assert.ErrorIs(t, err, errs.ErrInvalidStayPeriod)
	})

	t.Run("conflicts once the stay has opened", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusCheckedIn, &unitID))
		roomRepo := newFakeRoomRepo(roomTypeSnap())
		cmds, _ := newReservationCommands(resRepo, newFakeUnitRepo(), roomRepo, stayDay)

		err := cmds.UpdateStay(ctx, resID, commands.UpdateStayInput{
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-12",
			Adults:   2,
		})

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("surfaces a stale compare-and-swap as conflict", func(t *testing.T) {
		resRepo := newFakeReservationRepo(resSnap(reservation.StatusConfirmed, nil))
		resRepo.stayErr = conflictErr("status changed concurrently")
		roomRepo := newFakeRoomRepo(roomTypeSnap())
		cmds, _ := newReservationCommands(resRepo, newFakeUnitRepo(), roomRepo, stayDay)

		err := cmds.UpdateStay(ctx, resID, commands.UpdateStayInput{
			CheckIn:  "2025-06-10",
			CheckOut: "2025-06-12",
			Adults:   2,
		})

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
