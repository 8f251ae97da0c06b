package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/gridironstats/ncaafb-api/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	out := make([]player.Player, len(players))
	copy(out, players)
	sort.Slice(out, func(i, j int) bool { return out[i].FullName() < out[j].FullName() })

	return &PlayerRepository{players: out}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filtered(filter)
	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players {
		if item.ID == playerID {
			return item, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Count(_ context.Context, filter player.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filtered(filter)), nil
}

func (r *PlayerRepository) filtered(filter player.Filter) []player.Player {
	search := strings.ToLower(filter.Search)

	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		if filter.Position != "" && !strings.EqualFold(item.Position, filter.Position) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(item.Status, filter.Status) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.FullName()), search) {
			continue
		}
		out = append(out, item)
	}

	return out
}
