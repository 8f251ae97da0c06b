package venue

import "context"

type Repository interface {
	List(ctx context.Context, state string) ([]Venue, error)
	GetByID(ctx context.Context, venueID string) (Venue, bool, error)
}
