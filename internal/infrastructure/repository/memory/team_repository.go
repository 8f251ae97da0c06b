package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, len(teams))
	copy(out, teams)
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName() < out[j].DisplayName() })

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filtered(filter)
	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Count(_ context.Context, filter team.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filtered(filter)), nil
}

func (r *TeamRepository) filtered(filter team.Filter) []team.Team {
	search := strings.ToLower(filter.Search)

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		if filter.ConferenceID != "" && item.ConferenceID != filter.ConferenceID {
			continue
		}
		if filter.DivisionID != "" && item.DivisionID != filter.DivisionID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Market), search) &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Alias), search) {
			continue
		}
		out = append(out, item)
	}

	return out
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	out := make([]T, len(items))
	copy(out, items)
	return out
}
