package queries

import "context"

type UnitViewRepo interface {
	List(ctx context.Context, floor, status string) ([]*UnitView, error)
	Stats(ctx context.Context) (*UnitStats, error)
	Floors(ctx context.Context) ([]string, error)
}

type UnitQueries interface {
	// List returns the unit board, optionally narrowed by floor and status.
	// Empty filter values mean "all".
	List(ctx context.Context, floor, status string) ([]*UnitView, error)
	Stats(ctx context.Context) (*UnitStats, error)
	Floors(ctx context.Context) ([]string, error)
}

type unitQueriesImpl struct {
	repo UnitViewRepo
}

func NewUnitQueries(repo UnitViewRepo) UnitQueries {
	return &unitQueriesImpl{repo: repo}
}

func (q *unitQueriesImpl) List(ctx context.Context, floor, status string) ([]*UnitView, error) {
	if floor == "All" {
		floor = ""
	}
	if status == "All" {
		status = ""
	}
	return q.repo.List(ctx, floor, status)
}

func (q *unitQueriesImpl) Stats(ctx context.Context) (*UnitStats, error) {
	return q.repo.Stats(ctx)
}

func (q *unitQueriesImpl) Floors(ctx context.Context) ([]string, error) {
	return q.repo.Floors(ctx)
}
