// Package cache provides read-through caching decorators around the
// repository interfaces. Each decorator delegates misses to the wrapped
// repository and keeps the loaded value in the shared store until it
// expires. All wrapped data is reference/catalog shaped and changes only
// on ingest, so the decorators never need explicit invalidation hooks
// beyond TTL expiry.
package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	basecache "github.com/gridironstats/ncaafb-api/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	key := "team:list:" + teamFilterKey(filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Count(ctx context.Context, filter team.Filter) (int, error) {
	// Count ignores pagination, so strip it from the key to share entries
	// across pages of the same filtered listing.
	unpaged := filter
	unpaged.Limit = 0
	unpaged.Offset = 0
	key := "team:count:" + teamFilterKey(unpaged)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.Count(ctx, filter)
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func teamFilterKey(filter team.Filter) string {
	return strings.Join([]string{
		filter.ConferenceID,
		filter.DivisionID,
		strings.ToLower(filter.Search),
		strconv.Itoa(filter.Limit),
		strconv.Itoa(filter.Offset),
	}, ":")
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	key := "player:list:" + playerFilterKey(filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	key := "player:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int, error) {
	unpaged := filter
	unpaged.Limit = 0
	unpaged.Offset = 0
	key := "player:count:" + playerFilterKey(unpaged)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.Count(ctx, filter)
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func playerFilterKey(filter player.Filter) string {
	return strings.Join([]string{
		filter.TeamID,
		strings.ToUpper(filter.Position),
		strings.ToLower(filter.Status),
		strings.ToLower(filter.Search),
		strconv.Itoa(filter.Limit),
		strconv.Itoa(filter.Offset),
	}, ":")
}

type RankingRepository struct {
	next  ranking.Repository
	cache *basecache.Store
}

func NewRankingRepository(next ranking.Repository, cache *basecache.Store) *RankingRepository {
	return &RankingRepository{next: next, cache: cache}
}

func (r *RankingRepository) List(ctx context.Context, filter ranking.Filter) ([]ranking.Ranking, error) {
	key := "ranking:list:" + rankingFilterKey(filter)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]ranking.Ranking(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]ranking.Ranking)
	return append([]ranking.Ranking(nil), items...), nil
}

func (r *RankingRepository) LatestTop(ctx context.Context, seasonYear, limit int) ([]ranking.Ranking, error) {
	key := "ranking:latest-top:" + strconv.Itoa(seasonYear) + ":" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.LatestTop(ctx, seasonYear, limit)
		if err != nil {
			return nil, err
		}
		return append([]ranking.Ranking(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]ranking.Ranking)
	return append([]ranking.Ranking(nil), items...), nil
}

func (r *RankingRepository) Count(ctx context.Context) (int, error) {
	v, err := r.cache.GetOrLoad(ctx, "ranking:count", func(ctx context.Context) (any, error) {
		return r.next.Count(ctx)
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

func rankingFilterKey(filter ranking.Filter) string {
	return strings.Join([]string{
		filter.SeasonID,
		strconv.Itoa(filter.SeasonYear),
		strconv.Itoa(filter.Week),
		filter.PollID,
		filter.TeamID,
		strconv.Itoa(filter.Limit),
		strconv.Itoa(filter.Offset),
	}, ":")
}

type ConferenceRepository struct {
	next  conference.Repository
	cache *basecache.Store
}

func NewConferenceRepository(next conference.Repository, cache *basecache.Store) *ConferenceRepository {
	return &ConferenceRepository{next: next, cache: cache}
}

func (r *ConferenceRepository) List(ctx context.Context) ([]conference.Conference, error) {
	v, err := r.cache.GetOrLoad(ctx, "conference:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]conference.Conference(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]conference.Conference)
	return append([]conference.Conference(nil), items...), nil
}

func (r *ConferenceRepository) GetByID(ctx context.Context, conferenceID string) (conference.Conference, bool, error) {
	key := "conference:id:" + conferenceID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, conferenceID)
		if err != nil {
			return nil, err
		}
		return cachedConferenceByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return conference.Conference{}, false, err
	}

	cached, _ := v.(cachedConferenceByID)
	return cached.value, cached.exists, nil
}

type cachedConferenceByID struct {
	value  conference.Conference
	exists bool
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) GetByYear(ctx context.Context, year int, typeCode season.TypeCode) (season.Season, bool, error) {
	key := "season:year:" + strconv.Itoa(year) + ":" + string(typeCode)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByYear(ctx, year, typeCode)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) Latest(ctx context.Context) (season.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "season:latest", func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Latest(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSeason{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeason)
	return cached.value, cached.exists, nil
}

type cachedSeason struct {
	value  season.Season
	exists bool
}
