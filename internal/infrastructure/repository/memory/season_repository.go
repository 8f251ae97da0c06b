package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironstats/ncaafb-api/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons []season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	out := make([]season.Season, len(seasons))
	copy(out, seasons)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].TypeCode < out[j].TypeCode
	})

	return &SeasonRepository{seasons: out}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, len(r.seasons))
	copy(out, r.seasons)
	return out, nil
}

func (r *SeasonRepository) GetByYear(_ context.Context, year int, typeCode season.TypeCode) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.seasons {
		if item.Year == year && item.TypeCode == typeCode {
			return item, true, nil
		}
	}

	return season.Season{}, false, nil
}

func (r *SeasonRepository) Latest(_ context.Context) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.seasons {
		if item.TypeCode == season.TypeRegular {
			return item, true, nil
		}
	}
	if len(r.seasons) > 0 {
		return r.seasons[0], true, nil
	}

	return season.Season{}, false, nil
}
