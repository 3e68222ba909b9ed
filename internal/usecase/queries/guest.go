package queries

import "context"

type GuestViewRepo interface {
	List(ctx context.Context, search string, limit int32) ([]*GuestView, error)
}

type GuestQueries interface {
	// List returns the guest directory, optionally filtered by a name/email
	// substring search.
	List(ctx context.Context, search string, limit int) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	repo GuestViewRepo
}

func NewGuestQueries(repo GuestViewRepo) GuestQueries {
	return &guestQueriesImpl{repo: repo}
}

func (q *guestQueriesImpl) List(ctx context.Context, search string, limit int) ([]*GuestView, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return q.repo.List(ctx, search, int32(limit))
}
