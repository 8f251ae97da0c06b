package coach

import "context"

type Repository interface {
	List(ctx context.Context, teamID string) ([]Coach, error)
	GetByID(ctx context.Context, coachID string) (Coach, bool, error)
}
