//go:build unit

package room_test

import (
	"testing"

	"stayhub/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomUnit(t *testing.T) {
	t.Run("defaults to available", func(t *testing.T) {
		unit, err := room.NewRoomUnit(uuid.New(), " 1204 ", "corner unit")
		require.NoError(t, err)

		assert.Equal(t, room.UnitAvailable, unit.Status())
		assert.Equal(t, "1204", unit.Number())
		assert.NotEqual(t, uuid.Nil, unit.ID())
	})

	t.Run("empty number is rejected", func(t *testing.T) {
		_, err := room.NewRoomUnit(uuid.New(), "   ", "")
		assert.ErrorIs(t, err, room.ErrEmptyUnitNumber)
	})
}

func TestRoomUnitMachineEdges(t *testing.T) {
	newUnit := func(t *testing.T, status room.UnitStatus) *room.RoomUnit {
		t.Helper()
		unit, err := room.NewRoomUnit(uuid.New(), "801", "")
		require.NoError(t, err)
		require.NoError(t, unit.SetStatus(status))
		return unit
	}

	t.Run("occupy from available", func(t *testing.T) {
		unit := newUnit(t, room.UnitAvailable)
		require.NoError(t, unit.Occupy())
		assert.Equal(t, room.UnitOccupied, unit.Status())
	})

	t.Run("occupy from anything else fails", func(t *testing.T) {
		for _, status := range []room.UnitStatus{room.UnitOccupied, room.UnitMaintenance, room.UnitCleaning} {
			unit := newUnit(t, status)
			assert.ErrorIs(t, unit.Occupy(), room.ErrUnitNotAvailable)
		}
	})

	t.Run("check-out sends occupied to cleaning", func(t *testing.T) {
		unit := newUnit(t, room.UnitOccupied)
		require.NoError(t, unit.StartCleaning())
		assert.Equal(t, room.UnitCleaning, unit.Status())
	})

	t.Run("cleaning starts only from occupied", func(t *testing.T) {
		unit := newUnit(t, room.UnitAvailable)
		assert.ErrorIs(t, unit.StartCleaning(), room.ErrUnitNotOccupied)
	})

	t.Run("release returns any unit to available", func(t *testing.T) {
		unit := newUnit(t, room.UnitOccupied)
		unit.Release()
		assert.Equal(t, room.UnitAvailable, unit.Status())
	})

	t.Run("operator can set any valid status", func(t *testing.T) {
		unit := newUnit(t, room.UnitAvailable)
		require.NoError(t, unit.SetStatus(room.UnitMaintenance))
		require.NoError(t, unit.SetStatus(room.UnitCleaning))
		require.NoError(t, unit.SetStatus(room.UnitAvailable))
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		unit := newUnit(t, room.UnitAvailable)
		assert.ErrorIs(t, unit.SetStatus(room.UnitStatus("demolished")), room.ErrInvalidUnitStatus)
	})
}

func TestOccupancyAccommodates(t *testing.T) {
	occupancy, err := room.NewOccupancy(2, 2, 3)
	require.NoError(t, err)

	assert.True(t, occupancy.Accommodates(2, 1))
	assert.True(t, occupancy.Accommodates(1, 2))
	assert.False(t, occupancy.Accommodates(3, 0), "adults over cap")
	assert.False(t, occupancy.Accommodates(0, 3), "children over cap")
	assert.False(t, occupancy.Accommodates(2, 2), "total over cap")

	t.Run("guest cap cannot exceed the sum of the splits", func(t *testing.T) {
		_, err := room.NewOccupancy(2, 1, 4)
		assert.ErrorIs(t, err, room.ErrInvalidOccupancy)
	})
}
