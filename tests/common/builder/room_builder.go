//go:build unit || e2e

package builder

import (
	domroom "stayhub/internal/domain/room"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	RateCents   int64
	SizeM2      int
	ViewType    domroom.ViewType
	Floor       string
	Rating      float64
	MaxAdults   int
	MaxChildren int
	MaxGuests   int
	Amenities   []string
	IsActive    bool
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		ID:          uuid.New(),
		Slug:        "deluxe-king",
		Name:        "Deluxe King",
		RateCents:   24900,
		SizeM2:      42,
		ViewType:    domroom.ViewCity,
		Floor:       "12",
		Rating:      4.6,
		MaxAdults:   2,
		MaxChildren: 1,
		MaxGuests:   3,
		Amenities:   []string{"wifi", "minibar"},
		IsActive:    true,
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

func (b *RoomTypeBuilder) BuildDomain() (*domroom.RoomType, error) {
	occupancy, err := domroom.NewOccupancy(b.MaxAdults, b.MaxChildren, b.MaxGuests)
	if err != nil {
		return nil, err
	}
	return domroom.NewRoomType(
		b.ID, b.Slug, b.Name, b.RateCents, b.SizeM2,
		b.ViewType, b.Floor, b.Rating, occupancy, b.Amenities, b.IsActive,
	)
}

func (b *RoomTypeBuilder) BuildSummary() domroom.Summary {
	return domroom.Summary{
		Slug:        b.Slug,
		Name:        b.Name,
		RateCents:   b.RateCents,
		SizeM2:      b.SizeM2,
		ViewType:    string(b.ViewType),
		Rating:      b.Rating,
		MaxAdults:   b.MaxAdults,
		MaxChildren: b.MaxChildren,
		MaxGuests:   b.MaxGuests,
		Amenities:   b.Amenities,
	}
}
