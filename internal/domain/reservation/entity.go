package reservation

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending      = errors.New("reservation is not pending")
	ErrNotConfirmed    = errors.New("reservation is not confirmed")
	ErrNotCheckedIn    = errors.New("reservation is not checked in")
	ErrAlreadyTerminal = errors.New("reservation is in a terminal state")
	ErrStayNotStarted  = errors.New("stay window has not started yet")
	ErrNoUnitAssigned  = errors.New("reservation has no room unit assigned")
	ErrUnitWrongType   = errors.New("room unit belongs to a different room type")
)

// Reservation is a guest's booking of one RoomUnit's RoomType for a half-open
// date interval. It is created through the Factory, mutated only through the
// transition methods below, and never deleted: cancellation is a terminal
// status, not removal.
type Reservation struct {
	id              uuid.UUID
	reference       string
	guestID         uuid.UUID
	roomTypeID      uuid.UUID
	roomUnitID      *uuid.UUID
	stay            StayPeriod
	party           Party
	specialRequests SpecialRequests
	quote           Quote
	status          Status
	channel         Channel
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	reference string,
	guestID, roomTypeID uuid.UUID,
	roomUnitID *uuid.UUID,
	stay StayPeriod,
	party Party,
	specialRequests SpecialRequests,
	quote Quote,
	status Status,
	channel Channel,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		reference:       reference,
		guestID:         guestID,
		roomTypeID:      roomTypeID,
		roomUnitID:      roomUnitID,
		stay:            stay,
		party:           party,
		specialRequests: specialRequests,
		quote:           quote,
		status:          status,
		channel:         channel,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Confirm moves a pending reservation to confirmed. Operator-channel
// reservations are born confirmed and reject a second confirm.
func (r *Reservation) Confirm() error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusConfirmed
	return nil
}

// AssignUnit records the unit that will host the stay. Allowed while the
// reservation has not reached the occupied phase; the unit itself stays
// available until check-in drives it to occupied.
func (r *Reservation) AssignUnit(unitID uuid.UUID) error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		if r.status.IsTerminal() {
			return ErrAlreadyTerminal
		}
		return ErrNotConfirmed
	}
	id := unitID
	r.roomUnitID = &id
	return nil
}

// CheckIn opens the stay. Requires a confirmed reservation with an assigned
// unit and a stay window that has started; the caller drives the unit to
// occupied as the paired inventory transition.
func (r *Reservation) CheckIn(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if r.roomUnitID == nil {
		return ErrNoUnitAssigned
	}
	if !r.stay.HasStarted(now) {
		return ErrStayNotStarted
	}
	r.status = StatusCheckedIn
	return nil
}

// CheckOut closes the stay. The caller drives the unit to cleaning, never
// straight back to available.
func (r *Reservation) CheckOut() error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	r.status = StatusCheckedOut
	return nil
}

// Cancel is valid from any non-terminal state, including mid-stay. It returns
// whether a unit was held so the caller can release it back to available; a
// reservation that never had a unit is a no-op on inventory.
func (r *Reservation) Cancel() (releaseUnit bool, err error) {
	if r.status.IsTerminal() {
		return false, ErrAlreadyTerminal
	}
	releaseUnit = r.roomUnitID != nil
	r.status = StatusCancelled
	return releaseUnit, nil
}

// Reprice replaces stay, party and quote together so the stored total always
// matches the pricing engine's output for the stored parameters.
func (r *Reservation) Reprice(stay StayPeriod, party Party, quote Quote) error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status == StatusCheckedIn {
		return ErrNotConfirmed
	}
	r.stay = stay
	r.party = party
	r.quote = quote
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed || r.status == StatusCheckedIn
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) Reference() string               { return r.reference }
func (r *Reservation) GuestID() uuid.UUID              { return r.guestID }
func (r *Reservation) RoomTypeID() uuid.UUID           { return r.roomTypeID }
func (r *Reservation) RoomUnitID() *uuid.UUID          { return r.roomUnitID }
func (r *Reservation) Stay() StayPeriod                { return r.stay }
func (r *Reservation) Party() Party                    { return r.party }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) Quote() Quote                    { return r.quote }
func (r *Reservation) Status() Status                  { return r.status }
func (r *Reservation) Channel() Channel                { return r.channel }
func (r *Reservation) CreatedAt() time.Time            { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time            { return r.updatedAt }

// NewReference builds a human-facing booking code like RSV-3F29A1C4.
func NewReference() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// fall back to uuid-derived bytes; references only need uniqueness
		id := uuid.New()
		copy(buf, id[:4])
	}
	return "RSV-" + strings.ToUpper(hex.EncodeToString(buf))
}
