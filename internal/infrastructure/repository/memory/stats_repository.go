package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
)

type StatsRepository struct {
	mu    sync.RWMutex
	lines []playerstats.SeasonLine
}

func NewStatsRepository(lines []playerstats.SeasonLine) *StatsRepository {
	out := make([]playerstats.SeasonLine, len(lines))
	copy(out, lines)

	return &StatsRepository{lines: out}
}

func (r *StatsRepository) List(_ context.Context, filter playerstats.Filter) ([]playerstats.SeasonLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]playerstats.SeasonLine, 0, len(r.lines))
	for _, line := range r.lines {
		if filter.PlayerID != "" && line.PlayerID != filter.PlayerID {
			continue
		}
		if filter.TeamID != "" && line.TeamID != filter.TeamID {
			continue
		}
		if filter.SeasonID != "" && line.SeasonID != filter.SeasonID {
			continue
		}
		if filter.SeasonYear != 0 && line.SeasonYear != filter.SeasonYear {
			continue
		}
		matched = append(matched, line)
	}

	if filter.SortBy != "" {
		sortLines(matched, filter.SortBy)
	} else {
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].RushingYards != matched[j].RushingYards {
				return matched[i].RushingYards > matched[j].RushingYards
			}
			return matched[i].ReceivingYards > matched[j].ReceivingYards
		})
	}

	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *StatsRepository) Leader(ctx context.Context, seasonYear int, sortBy string) (playerstats.SeasonLine, bool, error) {
	lines, err := r.List(ctx, playerstats.Filter{SeasonYear: seasonYear, SortBy: sortBy, Limit: 1})
	if err != nil || len(lines) == 0 {
		return playerstats.SeasonLine{}, false, err
	}

	return lines[0], true, nil
}

func (r *StatsRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.lines), nil
}

func sortLines(lines []playerstats.SeasonLine, sortBy string) {
	value := func(l playerstats.SeasonLine) int {
		switch sortBy {
		case "games_played":
			return l.GamesPlayed
		case "games_started":
			return l.GamesStarted
		case "rushing_yards":
			return l.RushingYards
		case "rushing_touchdowns":
			return l.RushingTouchdowns
		case "receiving_yards":
			return l.ReceivingYards
		case "receiving_touchdowns":
			return l.ReceivingTouchdowns
		case "kick_return_yards":
			return l.KickReturnYards
		case "fumbles":
			return l.Fumbles
		default:
			return 0
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return value(lines[i]) > value(lines[j]) })
}
