package division

import "context"

type Repository interface {
	List(ctx context.Context, conferenceID string) ([]Division, error)
	GetByID(ctx context.Context, divisionID string) (Division, bool, error)
}
