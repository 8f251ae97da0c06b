package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	"github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/memory"
)

func TestTeamService_ListTeams(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	items, total, err := svc.ListTeams(context.Background(), team.Filter{})
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}
}

func TestTeamService_ListTeams_FiltersByConference(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	items, total, err := svc.ListTeams(context.Background(), team.Filter{ConferenceID: memory.ConferenceIDSEC})
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, item := range items {
		if item.ConferenceID != memory.ConferenceIDSEC {
			t.Fatalf("unexpected conference %q for team %s", item.ConferenceID, item.ID)
		}
	}
}

func TestTeamService_ListTeams_ClampsLimit(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	items, _, err := svc.ListTeams(context.Background(), team.Filter{Limit: 100000, Offset: 3})
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1 after offset 3", len(items))
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	item, err := svc.GetTeam(context.Background(), memory.TeamIDAlabama)
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if item.DisplayName() != "Alabama Crimson Tide" {
		t.Fatalf("DisplayName() = %q", item.DisplayName())
	}
}

func TestTeamService_GetTeam_NotFound(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	_, err := svc.GetTeam(context.Background(), "team-nowhere")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = svc.GetTeam(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
