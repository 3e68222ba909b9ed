package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type RoomTypeView struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	RateCents   int64     `json:"rate_cents"`
	SizeM2      int       `json:"size_m2"`
	ViewType    string    `json:"view_type"`
	Floor       string    `json:"floor"`
	Rating      float64   `json:"rating"`
	MaxAdults   int       `json:"max_adults"`
	MaxChildren int       `json:"max_children"`
	MaxGuests   int       `json:"max_guests"`
	Amenities   []string  `json:"amenities"`
	IsActive    bool      `json:"is_active"`
}

type UnitView struct {
	ID         uuid.UUID `json:"id"`
	RoomTypeID uuid.UUID `json:"room_type_id"`
	RoomName   string    `json:"room_name"`
	Number     string    `json:"number"`
	Floor      string    `json:"floor"`
	Status     string    `json:"status"`
	Note       *string   `json:"note,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UnitStats backs the console's per-status KPI cards.
type UnitStats struct {
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
	Cleaning    int64 `json:"cleaning"`
	Total       int64 `json:"total"`
}

type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	Reference       string     `json:"reference"`
	RoomTypeID      uuid.UUID  `json:"room_type_id"`
	RoomName        string     `json:"room_name"`
	RoomSlug        string     `json:"room_slug"`
	UnitID          *uuid.UUID `json:"unit_id,omitempty"`
	UnitNumber      *string    `json:"unit_number,omitempty"`
	GuestID         uuid.UUID  `json:"guest_id"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestPhone      string     `json:"guest_phone"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	Adults          int        `json:"adults"`
	Children        int        `json:"children"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	Nights          int        `json:"nights"`
	SubtotalCents   int64      `json:"subtotal_cents"`
	ServiceFeeCents int64      `json:"service_fee_cents"`
	TaxesCents      int64      `json:"taxes_cents"`
	TotalCents      int64      `json:"total_cents"`
	Status          string     `json:"status"`
	Channel         string     `json:"channel"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"reference"`
	RoomName   string    `json:"room_name"`
	UnitNumber *string   `json:"unit_number,omitempty"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationStatusCounts backs the reservations console KPI row.
type ReservationStatusCounts struct {
	Pending    int64 `json:"pending"`
	Confirmed  int64 `json:"confirmed"`
	CheckedIn  int64 `json:"checked_in"`
	CheckedOut int64 `json:"checked_out"`
	Cancelled  int64 `json:"cancelled"`
}

type GuestView struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Notes        *string   `json:"notes,omitempty"`
	IsRegistered bool      `json:"is_registered"`
	Reservations int64     `json:"reservations"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
