package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/memory"
)

func TestPlayerService_ListPlayers_FiltersByPosition(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, total, err := svc.ListPlayers(context.Background(), player.Filter{Position: "rb"})
	if err != nil {
		t.Fatalf("ListPlayers() error = %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, item := range items {
		if item.Position != "RB" {
			t.Fatalf("unexpected position %q for player %s", item.Position, item.ID)
		}
	}
}

func TestPlayerService_ListPlayers_SearchMatchesFullName(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, total, err := svc.ListPlayers(context.Background(), player.Filter{Search: "jordan mil"})
	if err != nil {
		t.Fatalf("ListPlayers() error = %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("total = %d, len = %d, want 1 and 1", total, len(items))
	}
	if items[0].ID != "player-miller" {
		t.Fatalf("matched player %q", items[0].ID)
	}
}

func TestPlayerService_GetPlayer_NotFound(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	_, err := svc.GetPlayer(context.Background(), "player-ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
