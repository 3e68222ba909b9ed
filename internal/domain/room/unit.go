package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUnitStatus = errors.New("invalid unit status")
	ErrEmptyUnitNumber   = errors.New("unit number cannot be empty")
	ErrUnitNotAvailable  = errors.New("unit is not available")
	ErrUnitNotOccupied   = errors.New("unit is not occupied")
)

// RoomUnit is one physical instance of a RoomType. Units are created by an
// operator, default to available, and are never hard-deleted once they carry
// reservation history.
//
// The status machine has two machine-driven edges, triggered by reservation
// transitions: available -> occupied at check-in and occupied -> cleaning at
// check-out. All other edges are operator-driven. The guard that forbids
// marking a unit available while an active reservation covers today lives in
// the unit command usecase, since it needs the reservation store.
type RoomUnit struct {
	id         uuid.UUID
	roomTypeID uuid.UUID
	number     string
	status     UnitStatus
	note       string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoomUnit(roomTypeID uuid.UUID, number, note string) (*RoomUnit, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyUnitNumber
	}

	return &RoomUnit{
		id:         uuid.New(),
		roomTypeID: roomTypeID,
		number:     number,
		status:     UnitAvailable,
		note:       strings.TrimSpace(note),
	}, nil
}

func ReconstructRoomUnit(
	id, roomTypeID uuid.UUID,
	number string,
	status UnitStatus,
	note string,
	createdAt, updatedAt time.Time,
) *RoomUnit {
	return &RoomUnit{
		id:         id,
		roomTypeID: roomTypeID,
		number:     number,
		status:     status,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Occupy is the machine-driven check-in edge.
func (u *RoomUnit) Occupy() error {
	if u.status != UnitAvailable {
		return ErrUnitNotAvailable
	}
	u.status = UnitOccupied
	return nil
}

// StartCleaning is the machine-driven check-out edge. Units never go straight
// from occupied back to available.
func (u *RoomUnit) StartCleaning() error {
	if u.status != UnitOccupied {
		return ErrUnitNotOccupied
	}
	u.status = UnitCleaning
	return nil
}

// Release returns an occupied or held unit to the pool after a cancellation.
func (u *RoomUnit) Release() {
	u.status = UnitAvailable
}

// SetStatus is the operator-driven edge. Operators may move a unit freely
// between statuses; the active-reservation guard is enforced by the caller.
func (u *RoomUnit) SetStatus(next UnitStatus) error {
	if !next.IsValid() {
		return ErrInvalidUnitStatus
	}
	u.status = next
	return nil
}

func (u *RoomUnit) ID() uuid.UUID         { return u.id }
func (u *RoomUnit) RoomTypeID() uuid.UUID { return u.roomTypeID }
func (u *RoomUnit) Number() string        { return u.number }
func (u *RoomUnit) Status() UnitStatus    { return u.status }
func (u *RoomUnit) Note() string          { return u.note }
func (u *RoomUnit) CreatedAt() time.Time  { return u.createdAt }
func (u *RoomUnit) UpdatedAt() time.Time  { return u.updatedAt }
