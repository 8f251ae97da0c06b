package conference

import "context"

// Repository describes conference persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Conference, error)
	GetByID(ctx context.Context, conferenceID string) (Conference, bool, error)
}
