package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironstats/ncaafb-api/internal/domain/coach"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	"github.com/gridironstats/ncaafb-api/internal/domain/venue"
	"github.com/gridironstats/ncaafb-api/internal/platform/cache"
)

const (
	statsSummaryCacheKey = "stats:summary"
	summaryTopRankLimit  = 5
)

// StatsSummary is a snapshot of dataset-wide aggregates for the landing view.
type StatsSummary struct {
	TeamCount       int
	PlayerCount     int
	CoachCount      int
	VenueCount      int
	ConferenceCount int
	StatLineCount   int
	RankingCount    int
	LatestSeason    *season.Season
	TopRankings     []ranking.Ranking
	RushingLeader   *playerstats.SeasonLine
}

type StatsService struct {
	statsRepo      playerstats.Repository
	rankingRepo    ranking.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	seasonRepo     season.Repository
	coachRepo      coach.Repository
	venueRepo      venue.Repository
	conferenceRepo conference.Repository
	cache          *cache.Store
	workerCount    int
}

func NewStatsService(
	statsRepo playerstats.Repository,
	rankingRepo ranking.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	seasonRepo season.Repository,
	coachRepo coach.Repository,
	venueRepo venue.Repository,
	conferenceRepo conference.Repository,
	cacheStore *cache.Store,
	workerCount int,
) *StatsService {
	if workerCount <= 0 {
		workerCount = 4
	}

	return &StatsService{
		statsRepo:      statsRepo,
		rankingRepo:    rankingRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		seasonRepo:     seasonRepo,
		coachRepo:      coachRepo,
		venueRepo:      venueRepo,
		conferenceRepo: conferenceRepo,
		cache:          cacheStore,
		workerCount:    workerCount,
	}
}

func (s *StatsService) ListPlayerStatistics(ctx context.Context, filter playerstats.Filter) ([]playerstats.SeasonLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListPlayerStatistics")
	defer span.End()

	filter.SortBy = strings.ToLower(strings.TrimSpace(filter.SortBy))
	if filter.SortBy != "" && !playerstats.SortColumns[filter.SortBy] {
		return nil, fmt.Errorf("%w: unsupported sort column %q", ErrInvalidInput, filter.SortBy)
	}
	filter.Limit = ClampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, err := s.statsRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list player statistics: %w", err)
	}

	return items, nil
}

func (s *StatsService) ListRankings(ctx context.Context, filter ranking.Filter) ([]ranking.Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListRankings")
	defer span.End()

	filter.Limit = ClampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, err := s.rankingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}

	return items, nil
}

// Summary gathers the aggregates concurrently and caches the assembled
// snapshot. Optional sections are left nil when their data is missing.
func (s *StatsService) Summary(ctx context.Context) (StatsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Summary")
	defer span.End()

	if s.cache != nil {
		value, err := s.cache.GetOrLoad(ctx, statsSummaryCacheKey, func(ctx context.Context) (any, error) {
			return s.buildSummary(ctx)
		})
		if err != nil {
			return StatsSummary{}, err
		}
		summary, ok := value.(StatsSummary)
		if !ok {
			return StatsSummary{}, fmt.Errorf("unexpected cached summary type %T", value)
		}
		return summary, nil
	}

	return s.buildSummary(ctx)
}

func (s *StatsService) buildSummary(ctx context.Context) (StatsSummary, error) {
	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		summary StatsSummary
		mu      sync.Mutex
		errs    []error
		workers sync.WaitGroup
	)

	tasks := []func(context.Context) error{
		func(ctx context.Context) error {
			count, err := s.teamRepo.Count(ctx, team.Filter{})
			if err != nil {
				return fmt.Errorf("count teams: %w", err)
			}
			mu.Lock()
			summary.TeamCount = count
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			count, err := s.playerRepo.Count(ctx, player.Filter{})
			if err != nil {
				return fmt.Errorf("count players: %w", err)
			}
			mu.Lock()
			summary.PlayerCount = count
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			count, err := s.statsRepo.Count(ctx)
			if err != nil {
				return fmt.Errorf("count stat lines: %w", err)
			}
			mu.Lock()
			summary.StatLineCount = count
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			count, err := s.rankingRepo.Count(ctx)
			if err != nil {
				return fmt.Errorf("count rankings: %w", err)
			}
			mu.Lock()
			summary.RankingCount = count
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			coaches, err := s.coachRepo.List(ctx, "")
			if err != nil {
				return fmt.Errorf("count coaches: %w", err)
			}
			mu.Lock()
			summary.CoachCount = len(coaches)
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			venues, err := s.venueRepo.List(ctx, "")
			if err != nil {
				return fmt.Errorf("count venues: %w", err)
			}
			mu.Lock()
			summary.VenueCount = len(venues)
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			conferences, err := s.conferenceRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("count conferences: %w", err)
			}
			mu.Lock()
			summary.ConferenceCount = len(conferences)
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			latest, exists, err := s.seasonRepo.Latest(ctx)
			if err != nil {
				return fmt.Errorf("get latest season: %w", err)
			}
			if !exists {
				return nil
			}
			mu.Lock()
			summary.LatestSeason = &latest
			mu.Unlock()
			return nil
		},
	}

	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if taskErr := task(ctx); taskErr != nil {
				mu.Lock()
				errs = append(errs, taskErr)
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			return StatsSummary{}, fmt.Errorf("submit summary task: %w", err)
		}
	}

	workers.Wait()
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return StatsSummary{}, errs[0]
	}

	// Ranking and leader lookups depend on the season year, so they run
	// after the fan-out settles.
	if summary.LatestSeason != nil {
		year := summary.LatestSeason.Year

		top, err := s.rankingRepo.LatestTop(ctx, year, summaryTopRankLimit)
		if err != nil {
			return StatsSummary{}, fmt.Errorf("get top rankings: %w", err)
		}
		summary.TopRankings = top

		leader, exists, err := s.statsRepo.Leader(ctx, year, "rushing_yards")
		if err != nil {
			return StatsSummary{}, fmt.Errorf("get rushing leader: %w", err)
		}
		if exists {
			summary.RushingLeader = &leader
		}
	}

	return summary, nil
}
