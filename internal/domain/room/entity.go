package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomTypeName  = errors.New("room type name cannot be empty")
	ErrRoomTypeNameTooLong = errors.New("room type name is too long (max 120 characters)")
	ErrEmptySlug          = errors.New("room type slug cannot be empty")
	ErrInvalidRate        = errors.New("nightly rate must be positive")
	ErrInvalidOccupancy   = errors.New("invalid occupancy limits")
)

const MaxRoomTypeNameLength = 120

// Occupancy holds the ceiling for a room type's party size. MaxGuests bounds
// adults + children together and is never larger than the sum of the two
// individual limits.
type Occupancy struct {
	maxAdults   int
	maxChildren int
	maxGuests   int
}

func NewOccupancy(maxAdults, maxChildren, maxGuests int) (Occupancy, error) {
	if maxAdults < 1 || maxChildren < 0 || maxGuests < 1 {
		return Occupancy{}, ErrInvalidOccupancy
	}
	if maxGuests > maxAdults+maxChildren {
		return Occupancy{}, ErrInvalidOccupancy
	}
	return Occupancy{maxAdults: maxAdults, maxChildren: maxChildren, maxGuests: maxGuests}, nil
}

func (o Occupancy) MaxAdults() int   { return o.maxAdults }
func (o Occupancy) MaxChildren() int { return o.maxChildren }
func (o Occupancy) MaxGuests() int   { return o.maxGuests }

func (o Occupancy) Accommodates(adults, children int) bool {
	return adults <= o.maxAdults &&
		children <= o.maxChildren &&
		adults+children <= o.maxGuests
}

// RoomType is a bookable category. Physical instances are RoomUnits; a
// reservation books the type and gets a unit assigned at confirmation or
// check-in time.
type RoomType struct {
	id           uuid.UUID
	slug         string
	name         string
	rateCents    int64
	sizeM2       int
	viewType     ViewType
	floor        string
	rating       float64
	occupancy    Occupancy
	amenities    []string
	isActive     bool
}

func NewRoomType(
	id uuid.UUID,
	slug, name string,
	rateCents int64,
	sizeM2 int,
	viewType ViewType,
	floor string,
	rating float64,
	occupancy Occupancy,
	amenities []string,
	isActive bool,
) (*RoomType, error) {
	slug = strings.TrimSpace(slug)
	name = strings.TrimSpace(name)
	if slug == "" {
		return nil, ErrEmptySlug
	}
	if name == "" {
		return nil, ErrEmptyRoomTypeName
	}
	if len(name) > MaxRoomTypeNameLength {
		return nil, ErrRoomTypeNameTooLong
	}
	if rateCents <= 0 {
		return nil, ErrInvalidRate
	}

	return &RoomType{
		id:        id,
		slug:      slug,
		name:      name,
		rateCents: rateCents,
		sizeM2:    sizeM2,
		viewType:  viewType,
		floor:     floor,
		rating:    rating,
		occupancy: occupancy,
		amenities: amenities,
		isActive:  isActive,
	}, nil
}

func (t *RoomType) ID() uuid.UUID        { return t.id }
func (t *RoomType) Slug() string         { return t.slug }
func (t *RoomType) Name() string         { return t.name }
func (t *RoomType) RateCents() int64     { return t.rateCents }
func (t *RoomType) SizeM2() int          { return t.sizeM2 }
func (t *RoomType) ViewType() ViewType   { return t.viewType }
func (t *RoomType) Floor() string        { return t.floor }
func (t *RoomType) Rating() float64      { return t.rating }
func (t *RoomType) Occupancy() Occupancy { return t.occupancy }
func (t *RoomType) Amenities() []string  { return t.amenities }
func (t *RoomType) IsActive() bool       { return t.isActive }
