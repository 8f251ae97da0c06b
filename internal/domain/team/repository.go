package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
