//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnitCommands(unitRepo *fakeUnitRepo, roomRepo *fakeRoomRepo) (commands.UnitCommands, *fakeDB) {
	dbf := &fakeDB{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cmds := commands.NewUnitCommands(unitRepo, roomRepo, dbf, clock.NewFixedClock(now))
	return cmds, dbf
}

func TestUnitCommandsAddUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a unit under its room type", func(t *testing.T) {
		unitRepo := newFakeUnitRepo()
		cmds, dbf := newUnitCommands(unitRepo, newFakeRoomRepo(roomTypeSnap()))

		id, err := cmds.AddUnit(ctx, roomTypeID, "1204", "corner room")

		require.NoError(t, err)
		require.NotNil(t, unitRepo.created)
		assert.Equal(t, unitRepo.created.ID(), id)
		assert.Equal(t, "1204", unitRepo.created.Number())
		assert.Equal(t, roomTypeID, unitRepo.created.RoomTypeID())
		assert.Equal(t, room.UnitAvailable, unitRepo.created.Status())
		assert.True(t, dbf.tx.committed)
	})

	t.Run("reports unknown room type", func(t *testing.T) {
		unitRepo := newFakeUnitRepo()
		cmds, dbf := newUnitCommands(unitRepo, newFakeRoomRepo())

		_, err := cmds.AddUnit(ctx, uuid.New(), "1204", "")

		assert.ErrorIs(t, err, errs.ErrRoomTypeNotFound)
		assert.Nil(t, unitRepo.created)
		assert.Nil(t, dbf.tx)
	})

	t.Run("rejects a duplicate unit number", func(t *testing.T) {
		unitRepo := newFakeUnitRepo()
		unitRepo.createErr = infra.WrapRepoErr("insert unit", assert.AnError, infra.KindDuplicateKey)
		cmds, dbf := newUnitCommands(unitRepo, newFakeRoomRepo(roomTypeSnap()))

		_, err := cmds.AddUnit(ctx, roomTypeID, "1204", "")

		assert.ErrorIs(t, err, errs.ErrDuplicateUnitNumber)
		assert.False(t, dbf.tx.committed)
		assert.True(t, dbf.tx.rolledBack)
	})

	t.Run("rejects an empty unit number", func(t *testing.T) {
		cmds, _ := newUnitCommands(newFakeUnitRepo(), newFakeRoomRepo(roomTypeSnap()))

		_, err := cmds.AddUnit(ctx, roomTypeID, "   ", "")

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUnitCommandsSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves a unit between statuses", func(t *testing.T) {
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitMaintenance))
		cmds, dbf := newUnitCommands(unitRepo, newFakeRoomRepo())

		err := cmds.SetStatus(ctx, unitID, room.UnitMaintenance, room.UnitAvailable)

		require.NoError(t, err)
		require.Len(t, unitRepo.statusCalls, 1)
		assert.Equal(t, room.UnitMaintenance, unitRepo.statusCalls[0].from)
		assert.Equal(t, room.UnitAvailable, unitRepo.statusCalls[0].to)
		assert.True(t, unitRepo.busyChecked)
		assert.True(t, dbf.tx.committed)
	})

	t.Run("keeps a unit with an active stay out of the pool", func(t *testing.T) {
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitOccupied))
		unitRepo.activeStays = true
		cmds, dbf := newUnitCommands(unitRepo, newFakeRoomRepo())

		err := cmds.SetStatus(ctx, unitID, room.UnitOccupied, room.UnitAvailable)

		assert.ErrorIs(t, err, errs.ErrUnitHasActiveStay)
		assert.Empty(t, unitRepo.statusCalls)
		assert.Nil(t, dbf.tx)
	})

	t.Run("skips the stay check for other targets", func(t *testing.T) {
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitOccupied))
		unitRepo.activeStays = true
		cmds, _ := newUnitCommands(unitRepo, newFakeRoomRepo())

		err := cmds.SetStatus(ctx, unitID, room.UnitOccupied, room.UnitMaintenance)

		require.NoError(t, err)
		assert.False(t, unitRepo.busyChecked)
		require.Len(t, unitRepo.statusCalls, 1)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitAvailable))
		cmds, _ := newUnitCommands(unitRepo, newFakeRoomRepo())

		err := cmds.SetStatus(ctx, unitID, room.UnitAvailable, room.UnitStatus("broken"))

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("reports unknown unit", func(t *testing.T) {
		cmds, _ := newUnitCommands(newFakeUnitRepo(), newFakeRoomRepo())

		err := cmds.SetStatus(ctx, uuid.New(), room.UnitAvailable, room.UnitMaintenance)

		assert.ErrorIs(t, err, errs.ErrRoomUnitNotFound)
	})

	t.Run("surfaces a stale compare-and-swap as conflict", func(t *testing.T) {
		unitRepo := newFakeUnitRepo(unitSnap(room.UnitCleaning))
		unitRepo.updateErr = conflictErr("status changed concurrently")
		cmds, dbf := newUnitCommands(unitRepo, newFakeRoomRepo())

		err := cmds.SetStatus(ctx, unitID, room.UnitCleaning, room.UnitAvailable)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.False(t, dbf.tx.committed)
	})
}
