package season

import "context"

type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByYear(ctx context.Context, year int, typeCode TypeCode) (Season, bool, error)
	Latest(ctx context.Context) (Season, bool, error)
}
