package reservation

import (
	"errors"

	"stayhub/internal/domain/room"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrRoomTypeInactive = errors.New("room type is not active")
	ErrPartyTooLarge    = errors.New("party exceeds room occupancy limits")
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation validates the party against the room type's occupancy
// ceiling, prices the stay and builds the reservation in its channel's
// initial state. The stored total is always the calculator's output for the
// stored parameters.
func (f *Factory) CreateReservation(
	roomType *room.RoomType,
	guestID uuid.UUID,
	stay StayPeriod,
	party Party,
	specialRequests SpecialRequests,
	channel Channel,
) (*Reservation, error) {
	if !roomType.IsActive() {
		return nil, ErrRoomTypeInactive
	}
	if !roomType.Occupancy().Accommodates(party.Adults(), party.Children()) {
		return nil, ErrPartyTooLarge
	}

	quote := f.PriceCalculator.Quote(roomType.RateCents(), stay)
	if _, err := NewMoney(quote.TotalCents); err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Reservation{
		id:              uuid.New(),
		reference:       NewReference(),
		guestID:         guestID,
		roomTypeID:      roomType.ID(),
		stay:            stay,
		party:           party,
		specialRequests: specialRequests,
		quote:           quote,
		status:          channel.InitialStatus(),
		channel:         channel,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}
