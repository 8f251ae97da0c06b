package cache

import (
	"context"
	"testing"
	"time"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	basecache "github.com/gridironstats/ncaafb-api/internal/platform/cache"
)

type countingTeamRepo struct {
	teams     []team.Team
	listCalls int
	getCalls  int
}

func (r *countingTeamRepo) List(_ context.Context, _ team.Filter) ([]team.Team, error) {
	r.listCalls++
	return append([]team.Team(nil), r.teams...), nil
}

func (r *countingTeamRepo) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.getCalls++
	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *countingTeamRepo) Count(_ context.Context, _ team.Filter) (int, error) {
	return len(r.teams), nil
}

func TestTeamRepository_ListHitsCacheOnRepeat(t *testing.T) {
	next := &countingTeamRepo{teams: []team.Team{{ID: "team-a", Name: "A"}, {ID: "team-b", Name: "B"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	filter := team.Filter{Limit: 50}
	first, err := repo.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := repo.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}

	if next.listCalls != 1 {
		t.Fatalf("expected one delegate call, got %d", next.listCalls)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both reads to return 2 teams, got %d and %d", len(first), len(second))
	}
}

func TestTeamRepository_ListReturnsCopies(t *testing.T) {
	next := &countingTeamRepo{teams: []team.Team{{ID: "team-a", Name: "A"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.List(context.Background(), team.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	first[0].Name = "mutated"

	second, err := repo.List(context.Background(), team.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if second[0].Name != "A" {
		t.Fatalf("cached entry was mutated through a returned slice")
	}
}

func TestTeamRepository_GetByIDCachesMisses(t *testing.T) {
	next := &countingTeamRepo{teams: []team.Team{{ID: "team-a", Name: "A"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		_, exists, err := repo.GetByID(context.Background(), "team-missing")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if exists {
			t.Fatalf("expected miss for unknown team")
		}
	}
	if next.getCalls != 1 {
		t.Fatalf("expected the miss to be cached, delegate called %d times", next.getCalls)
	}
}

func TestTeamRepository_CountSharesKeyAcrossPages(t *testing.T) {
	next := &countingTeamRepo{teams: []team.Team{{ID: "team-a"}, {ID: "team-b"}, {ID: "team-c"}}}
	store := basecache.NewStore(time.Minute)
	repo := NewTeamRepository(next, store)

	page1, err := repo.Count(context.Background(), team.Filter{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	page2, err := repo.Count(context.Background(), team.Filter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	if page1 != 3 || page2 != 3 {
		t.Fatalf("expected total 3 on both pages, got %d and %d", page1, page2)
	}
	if _, ok := store.Get(context.Background(), "team:count::::0:0"); !ok {
		t.Fatalf("expected a single pagination-free count key")
	}
}
