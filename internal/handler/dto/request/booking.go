package request

import (
	"stayhub/internal/pkg/validation"
	"stayhub/internal/usecase/commands"

	"stayhub/internal/domain/reservation"
)

// CreateBookingRequest mirrors the public checkout form. Card fields are
// validated and discarded: nothing card-shaped is ever persisted or logged.
type CreateBookingRequest struct {
	Room            string `json:"room" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Adults          int    `json:"adults" binding:"required,min=1"`
	Children        int    `json:"children" binding:"min=0"`
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
	CardholderName  string `json:"cardholder_name" binding:"required"`
	CardNumber      string `json:"card_number" binding:"required"`
	Expiry          string `json:"expiry" binding:"required"`
	CVC             string `json:"cvc" binding:"required"`
}

// ValidatePayment runs the card rules. Guest fields are re-validated in the
// booking command; payment never leaves the handler, so its rules run here.
func (r CreateBookingRequest) ValidatePayment() map[string]string {
	return validation.Form(map[string]string{
		validation.FieldCardholderName: r.CardholderName,
		validation.FieldCardNumber:     r.CardNumber,
		validation.FieldExpiry:         r.Expiry,
		validation.FieldCVC:            r.CVC,
	})
}

func (r CreateBookingRequest) ToInput(channel reservation.Channel) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomTypeRef:     r.Room,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Adults:          r.Adults,
		Children:        r.Children,
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
		Channel:         channel,
	}
}

// ManualBookingRequest is the operator console's walk-in form. No payment
// fields; operator bookings enter as confirmed.
type ManualBookingRequest struct {
	Room            string `json:"room" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Adults          int    `json:"adults" binding:"required,min=1"`
	Children        int    `json:"children" binding:"min=0"`
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

func (r ManualBookingRequest) ToInput(channel reservation.Channel) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomTypeRef:     r.Room,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Adults:          r.Adults,
		Children:        r.Children,
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
		Channel:         channel,
	}
}

type QuoteRequest struct {
	Room     string `json:"room" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}
