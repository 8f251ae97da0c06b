package playerstats

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]SeasonLine, error)
	// Leader returns the top season line ordered by the given stat column
	// for a season year, or ok=false when no rows exist.
	Leader(ctx context.Context, seasonYear int, sortBy string) (SeasonLine, bool, error)
	Count(ctx context.Context) (int, error)
}
