package memory

import (
	"context"
	"sync"

	"github.com/gridironstats/ncaafb-api/internal/domain/coach"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/division"
	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	"github.com/gridironstats/ncaafb-api/internal/domain/venue"
)

type ConferenceRepository struct {
	mu          sync.RWMutex
	conferences []conference.Conference
}

func NewConferenceRepository(conferences []conference.Conference, teams []team.Team) *ConferenceRepository {
	counts := make(map[string]int, len(conferences))
	for _, t := range teams {
		counts[t.ConferenceID]++
	}

	out := make([]conference.Conference, len(conferences))
	copy(out, conferences)
	for i := range out {
		out[i].TeamCount = counts[out[i].ID]
	}

	return &ConferenceRepository{conferences: out}
}

func (r *ConferenceRepository) List(_ context.Context) ([]conference.Conference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]conference.Conference, len(r.conferences))
	copy(out, r.conferences)
	return out, nil
}

func (r *ConferenceRepository) GetByID(_ context.Context, conferenceID string) (conference.Conference, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.conferences {
		if item.ID == conferenceID {
			return item, true, nil
		}
	}

	return conference.Conference{}, false, nil
}

type DivisionRepository struct {
	mu        sync.RWMutex
	divisions []division.Division
}

func NewDivisionRepository(divisions []division.Division) *DivisionRepository {
	out := make([]division.Division, len(divisions))
	copy(out, divisions)

	return &DivisionRepository{divisions: out}
}

func (r *DivisionRepository) List(_ context.Context, conferenceID string) ([]division.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]division.Division, 0, len(r.divisions))
	for _, item := range r.divisions {
		if conferenceID != "" && item.ConferenceID != conferenceID {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *DivisionRepository) GetByID(_ context.Context, divisionID string) (division.Division, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.divisions {
		if item.ID == divisionID {
			return item, true, nil
		}
	}

	return division.Division{}, false, nil
}

type VenueRepository struct {
	mu     sync.RWMutex
	venues []venue.Venue
}

func NewVenueRepository(venues []venue.Venue) *VenueRepository {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)

	return &VenueRepository{venues: out}
}

func (r *VenueRepository) List(_ context.Context, state string) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Venue, 0, len(r.venues))
	for _, item := range r.venues {
		if state != "" && item.State != state {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *VenueRepository) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.venues {
		if item.ID == venueID {
			return item, true, nil
		}
	}

	return venue.Venue{}, false, nil
}

type CoachRepository struct {
	mu      sync.RWMutex
	coaches []coach.Coach
}

func NewCoachRepository(coaches []coach.Coach) *CoachRepository {
	out := make([]coach.Coach, len(coaches))
	copy(out, coaches)

	return &CoachRepository{coaches: out}
}

func (r *CoachRepository) List(_ context.Context, teamID string) ([]coach.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]coach.Coach, 0, len(r.coaches))
	for _, item := range r.coaches {
		if teamID != "" && item.TeamID != teamID {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *CoachRepository) GetByID(_ context.Context, coachID string) (coach.Coach, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.coaches {
		if item.ID == coachID {
			return item, true, nil
		}
	}

	return coach.Coach{}, false, nil
}
