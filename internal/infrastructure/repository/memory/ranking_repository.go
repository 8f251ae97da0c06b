package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
)

type RankingRepository struct {
	mu       sync.RWMutex
	rankings []ranking.Ranking
}

func NewRankingRepository(rankings []ranking.Ranking) *RankingRepository {
	out := make([]ranking.Ranking, len(rankings))
	copy(out, rankings)

	return &RankingRepository{rankings: out}
}

func (r *RankingRepository) List(_ context.Context, filter ranking.Filter) ([]ranking.Ranking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]ranking.Ranking, 0, len(r.rankings))
	for _, item := range r.rankings {
		if filter.SeasonID != "" && item.SeasonID != filter.SeasonID {
			continue
		}
		if filter.SeasonYear != 0 && item.SeasonYear != filter.SeasonYear {
			continue
		}
		if filter.Week != 0 && item.Week != filter.Week {
			continue
		}
		if filter.PollID != "" && item.PollID != filter.PollID {
			continue
		}
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		matched = append(matched, item)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Week != matched[j].Week {
			return matched[i].Week > matched[j].Week
		}
		return matched[i].Rank < matched[j].Rank
	})

	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *RankingRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rankings), nil
}

func (r *RankingRepository) LatestTop(ctx context.Context, seasonYear, limit int) ([]ranking.Ranking, error) {
	all, err := r.List(ctx, ranking.Filter{SeasonYear: seasonYear})
	if err != nil || len(all) == 0 {
		return nil, err
	}

	latestWeek := all[0].Week
	top := make([]ranking.Ranking, 0, limit)
	for _, item := range all {
		if item.Week != latestWeek {
			break
		}
		top = append(top, item)
		if limit > 0 && len(top) == limit {
			break
		}
	}

	return top, nil
}
