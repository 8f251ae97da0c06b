package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/memory"
	"github.com/gridironstats/ncaafb-api/internal/platform/cache"
)

func newStatsService(cacheStore *cache.Store) *StatsService {
	return NewStatsService(
		memory.NewStatsRepository(memory.SeedStatLines()),
		memory.NewRankingRepository(memory.SeedRankings()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewSeasonRepository(memory.SeedSeasons()),
		memory.NewCoachRepository(memory.SeedCoaches()),
		memory.NewVenueRepository(memory.SeedVenues()),
		memory.NewConferenceRepository(memory.SeedConferences(), memory.SeedTeams()),
		cacheStore,
		4,
	)
}

func TestStatsService_ListPlayerStatistics_SortsByColumn(t *testing.T) {
	svc := newStatsService(nil)

	items, err := svc.ListPlayerStatistics(context.Background(), playerstats.Filter{
		SeasonYear: 2025,
		SortBy:     "rushing_yards",
	})
	if err != nil {
		t.Fatalf("ListPlayerStatistics() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].PlayerID != "player-miller" {
		t.Fatalf("leader = %q, want player-miller", items[0].PlayerID)
	}
	if items[0].RushingYards < items[1].RushingYards {
		t.Fatalf("rows not ordered: %d before %d", items[0].RushingYards, items[1].RushingYards)
	}
}

func TestStatsService_ListPlayerStatistics_RejectsUnknownSort(t *testing.T) {
	svc := newStatsService(nil)

	_, err := svc.ListPlayerStatistics(context.Background(), playerstats.Filter{SortBy: "salary; DROP TABLE"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatsService_ListRankings_LatestWeekFirst(t *testing.T) {
	svc := newStatsService(nil)

	items, err := svc.ListRankings(context.Background(), ranking.Filter{SeasonYear: 2025})
	if err != nil {
		t.Fatalf("ListRankings() error = %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}
	if items[0].Week != 14 || items[0].Rank != 1 {
		t.Fatalf("first row week=%d rank=%d, want week 14 rank 1", items[0].Week, items[0].Rank)
	}
}

func TestStatsService_Summary(t *testing.T) {
	svc := newStatsService(nil)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.TeamCount != 4 {
		t.Fatalf("TeamCount = %d, want 4", summary.TeamCount)
	}
	if summary.PlayerCount != 4 {
		t.Fatalf("PlayerCount = %d, want 4", summary.PlayerCount)
	}
	if summary.StatLineCount != 4 {
		t.Fatalf("StatLineCount = %d, want 4", summary.StatLineCount)
	}
	if summary.CoachCount != 3 {
		t.Fatalf("CoachCount = %d, want 3", summary.CoachCount)
	}
	if summary.VenueCount != 4 {
		t.Fatalf("VenueCount = %d, want 4", summary.VenueCount)
	}
	if summary.ConferenceCount != 2 {
		t.Fatalf("ConferenceCount = %d, want 2", summary.ConferenceCount)
	}
	if summary.RankingCount != 4 {
		t.Fatalf("RankingCount = %d, want 4", summary.RankingCount)
	}
	if summary.LatestSeason == nil || summary.LatestSeason.Year != 2025 {
		t.Fatalf("LatestSeason = %+v, want year 2025", summary.LatestSeason)
	}
	if len(summary.TopRankings) != 3 {
		t.Fatalf("len(TopRankings) = %d, want 3", len(summary.TopRankings))
	}
	if summary.TopRankings[0].TeamMarket != "Georgia" {
		t.Fatalf("top ranked team = %q, want Georgia", summary.TopRankings[0].TeamMarket)
	}
	if summary.RushingLeader == nil || summary.RushingLeader.PlayerID != "player-miller" {
		t.Fatalf("RushingLeader = %+v, want player-miller", summary.RushingLeader)
	}
}

func TestStatsService_Summary_UsesCache(t *testing.T) {
	store := cache.NewStore(time.Minute)
	svc := newStatsService(store)

	first, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	cached, found := store.Get(context.Background(), "stats:summary")
	if !found {
		t.Fatal("summary not cached")
	}
	if cached.(StatsSummary).TeamCount != first.TeamCount {
		t.Fatal("cached summary differs from returned one")
	}

	second, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() second call error = %v", err)
	}
	if second.TeamCount != first.TeamCount {
		t.Fatalf("second call TeamCount = %d, want %d", second.TeamCount, first.TeamCount)
	}
}
