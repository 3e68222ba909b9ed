package queries

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByStatus(ctx context.Context, status string, limit, offset int32) ([]*ReservationListItem, int64, error)
	CountByStatus(ctx context.Context) (*ReservationStatusCounts, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// List returns one page plus the total row count for the filter. An empty
	// status means all statuses.
	List(ctx context.Context, status string, page, limit int) ([]*ReservationListItem, int64, error)
	StatusCounts(ctx context.Context) (*ReservationStatusCounts, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, status string, page, limit int) ([]*ReservationListItem, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	return q.repo.ListByStatus(ctx, status, int32(limit), int32(offset))
}

func (q *reservationQueriesImpl) StatusCounts(ctx context.Context) (*ReservationStatusCounts, error) {
	return q.repo.CountByStatus(ctx)
}
