package response

import (
	"stayhub/internal/domain/reservation"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingCreatedResponse struct {
	ReservationID uuid.UUID      `json:"reservation_id"`
	Reference     string         `json:"reference"`
	Status        string         `json:"status"`
	Quote         *QuoteResponse `json:"quote"`
	TotalDollars  float64        `json:"total"`
}

func FromCreatedBooking(b *commands.CreatedBooking) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ReservationID: b.ReservationID,
		Reference:     b.Reference,
		Status:        string(b.Status),
		Quote:         FromQuote(&b.Quote),
		TotalDollars:  b.Quote.Total().Dollars(),
	}
}

type QuoteResponse struct {
	Nights          int   `json:"nights"`
	NightlyCents    int64 `json:"nightly_cents"`
	ServiceFeeCents int64 `json:"service_fee_cents"`
	TaxesCents      int64 `json:"taxes_cents"`
	TotalCents      int64 `json:"total_cents"`
}

func FromQuote(q *reservation.Quote) *QuoteResponse {
	return &QuoteResponse{
		Nights:          q.Nights,
		NightlyCents:    q.NightlyTotalCents,
		ServiceFeeCents: q.ServiceFeeCents,
		TaxesCents:      q.TaxesCents,
		TotalCents:      q.TotalCents,
	}
}
