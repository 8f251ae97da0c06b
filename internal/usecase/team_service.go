package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	filter.Limit = ClampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Search = strings.TrimSpace(filter.Search)

	items, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list teams: %w", err)
	}

	total, err := s.teamRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count teams: %w", err)
	}

	return items, total, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// ClampLimit normalizes a requested page size to the service bounds. The
// HTTP layer uses it to report the limit that was actually applied.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
