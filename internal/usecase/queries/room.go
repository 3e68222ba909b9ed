package queries

import (
	"context"

	"stayhub/internal/domain/room"
)

type RoomViewRepo interface {
	ListActive(ctx context.Context) ([]*RoomTypeView, error)
	FindBySlug(ctx context.Context, slug string) (*RoomTypeView, error)
}

type RoomQueries interface {
	// Search runs the availability matcher over the active catalog.
	Search(ctx context.Context, q room.Query) ([]*RoomTypeView, error)
	GetBySlug(ctx context.Context, slug string) (*RoomTypeView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) Search(ctx context.Context, query room.Query) ([]*RoomTypeView, error) {
	views, err := q.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	bySlug := make(map[string]*RoomTypeView, len(views))
	catalog := make([]room.Summary, 0, len(views))
	for _, v := range views {
		bySlug[v.Slug] = v
		catalog = append(catalog, room.Summary{
			Slug:        v.Slug,
			Name:        v.Name,
			RateCents:   v.RateCents,
			SizeM2:      v.SizeM2,
			ViewType:    v.ViewType,
			Rating:      v.Rating,
			MaxAdults:   v.MaxAdults,
			MaxChildren: v.MaxChildren,
			MaxGuests:   v.MaxGuests,
			Amenities:   v.Amenities,
		})
	}

	matched := room.Match(catalog, query)

	result := make([]*RoomTypeView, 0, len(matched))
	for _, s := range matched {
		result = append(result, bySlug[s.Slug])
	}
	return result, nil
}

func (q *roomQueriesImpl) GetBySlug(ctx context.Context, slug string) (*RoomTypeView, error) {
	return q.repo.FindBySlug(ctx, slug)
}
