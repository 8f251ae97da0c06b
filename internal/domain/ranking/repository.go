package ranking

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Ranking, error)
	// LatestTop returns the highest-ranked teams from the most recent poll
	// week of the given season year.
	LatestTop(ctx context.Context, seasonYear, limit int) ([]Ranking, error)
	Count(ctx context.Context) (int, error)
}
