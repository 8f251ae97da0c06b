package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/domain/coach"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/division"
	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	"github.com/gridironstats/ncaafb-api/internal/domain/venue"
)

// CatalogService serves the reference entities that frame the main team,
// player, and statistics listings.
type CatalogService struct {
	conferenceRepo conference.Repository
	divisionRepo   division.Repository
	venueRepo      venue.Repository
	seasonRepo     season.Repository
	coachRepo      coach.Repository
}

func NewCatalogService(
	conferenceRepo conference.Repository,
	divisionRepo division.Repository,
	venueRepo venue.Repository,
	seasonRepo season.Repository,
	coachRepo coach.Repository,
) *CatalogService {
	return &CatalogService{
		conferenceRepo: conferenceRepo,
		divisionRepo:   divisionRepo,
		venueRepo:      venueRepo,
		seasonRepo:     seasonRepo,
		coachRepo:      coachRepo,
	}
}

func (s *CatalogService) ListConferences(ctx context.Context) ([]conference.Conference, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListConferences")
	defer span.End()

	items, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return items, nil
}

func (s *CatalogService) GetConference(ctx context.Context, conferenceID string) (conference.Conference, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetConference")
	defer span.End()

	conferenceID = strings.TrimSpace(conferenceID)
	if conferenceID == "" {
		return conference.Conference{}, fmt.Errorf("%w: conference id is required", ErrInvalidInput)
	}

	item, exists, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		return conference.Conference{}, fmt.Errorf("get conference: %w", err)
	}
	if !exists {
		return conference.Conference{}, fmt.Errorf("%w: conference=%s", ErrNotFound, conferenceID)
	}

	return item, nil
}

func (s *CatalogService) ListDivisions(ctx context.Context, conferenceID string) ([]division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListDivisions")
	defer span.End()

	items, err := s.divisionRepo.List(ctx, strings.TrimSpace(conferenceID))
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListVenues(ctx context.Context, state string) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListVenues")
	defer span.End()

	items, err := s.venueRepo.List(ctx, strings.ToUpper(strings.TrimSpace(state)))
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSeasons")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListCoaches(ctx context.Context, teamID string) ([]coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListCoaches")
	defer span.End()

	items, err := s.coachRepo.List(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return items, nil
}
