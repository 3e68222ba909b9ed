//go:build unit || e2e

package builder

import (
	"time"

	domreservation "stayhub/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	Reference  string
	GuestID    uuid.UUID
	RoomTypeID uuid.UUID
	RoomUnitID *uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	Requests   string
	Quote      domreservation.Quote
	Status     domreservation.Status
	Channel    domreservation.Channel
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         uuid.New(),
		Reference:  "RSV-TEST0001",
		GuestID:    uuid.New(),
		RoomTypeID: uuid.New(),
		CheckIn:    now,
		CheckOut:   now.AddDate(0, 0, 2),
		Adults:     2,
		Children:   0,
		Quote: domreservation.Quote{
			Nights:            2,
			NightlyTotalCents: 49800,
			ServiceFeeCents:   5000,
			TaxesCents:        5000,
			TotalCents:        59800,
		},
		Status:    domreservation.StatusPending,
		Channel:   domreservation.ChannelGuest,
		CreatedAt: now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithUnit(unitID uuid.UUID) *ReservationBuilder {
	b.RoomUnitID = &unitID
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	stay, err := domreservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	party, err := domreservation.NewParty(b.Adults, b.Children)
	if err != nil {
		return nil, err
	}
	requests, err := domreservation.NewSpecialRequests(b.Requests)
	if err != nil {
		return nil, err
	}
	return domreservation.ReconstructReservation(
		b.ID, b.Reference, b.GuestID, b.RoomTypeID, b.RoomUnitID,
		stay, party, requests, b.Quote, b.Status, b.Channel,
		b.CreatedAt, b.CreatedAt,
	), nil
}
