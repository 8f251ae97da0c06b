package httpapi

import (
	"context"
	"time"

	"github.com/gridironstats/ncaafb-api/internal/domain/coach"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/division"
	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	"github.com/gridironstats/ncaafb-api/internal/domain/venue"
	"github.com/gridironstats/ncaafb-api/internal/usecase"
)

type teamDTO struct {
	ID               string `json:"id"`
	Market           string `json:"market"`
	Name             string `json:"name"`
	DisplayName      string `json:"display_name"`
	Alias            string `json:"alias"`
	Founded          int    `json:"founded,omitempty"`
	Mascot           string `json:"mascot,omitempty"`
	FightSong        string `json:"fight_song,omitempty"`
	ChampionshipsWon int    `json:"championships_won"`
	ConferenceID     string `json:"conference_id,omitempty"`
	ConferenceName   string `json:"conference_name,omitempty"`
	DivisionID       string `json:"division_id,omitempty"`
	DivisionName     string `json:"division_name,omitempty"`
	VenueID          string `json:"venue_id,omitempty"`
	VenueName        string `json:"venue_name,omitempty"`
}

func teamToDTO(ctx context.Context, t team.Team) teamDTO {
	_ = ctx

	return teamDTO{
		ID:               t.ID,
		Market:           t.Market,
		Name:             t.Name,
		DisplayName:      t.DisplayName(),
		Alias:            t.Alias,
		Founded:          t.Founded,
		Mascot:           t.Mascot,
		FightSong:        t.FightSong,
		ChampionshipsWon: t.ChampionshipsWon,
		ConferenceID:     t.ConferenceID,
		ConferenceName:   t.ConferenceName,
		DivisionID:       t.DivisionID,
		DivisionName:     t.DivisionName,
		VenueID:          t.VenueID,
		VenueName:        t.VenueName,
	}
}

type playerDTO struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	AbbrName    string `json:"abbr_name,omitempty"`
	BirthPlace  string `json:"birth_place,omitempty"`
	Position    string `json:"position"`
	Height      int    `json:"height,omitempty"`
	Weight      int    `json:"weight,omitempty"`
	Status      string `json:"status"`
	Eligibility string `json:"eligibility,omitempty"`
	TeamID      string `json:"team_id,omitempty"`
	TeamName    string `json:"team_name,omitempty"`
}

func playerToDTO(ctx context.Context, p player.Player) playerDTO {
	_ = ctx

	return playerDTO{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		AbbrName:    p.AbbrName,
		BirthPlace:  p.BirthPlace,
		Position:    p.Position,
		Height:      p.Height,
		Weight:      p.Weight,
		Status:      p.Status,
		Eligibility: p.Eligibility,
		TeamID:      p.TeamID,
		TeamName:    p.TeamName,
	}
}

type statLineDTO struct {
	StatID              int64  `json:"stat_id"`
	PlayerID            string `json:"player_id"`
	PlayerName          string `json:"player_name"`
	Position            string `json:"position"`
	TeamID              string `json:"team_id"`
	TeamName            string `json:"team_name"`
	SeasonID            string `json:"season_id"`
	SeasonYear          int    `json:"season_year"`
	SeasonType          string `json:"season_type"`
	GamesPlayed         int    `json:"games_played"`
	GamesStarted        int    `json:"games_started"`
	RushingYards        int    `json:"rushing_yards"`
	RushingTouchdowns   int    `json:"rushing_touchdowns"`
	ReceivingYards      int    `json:"receiving_yards"`
	ReceivingTouchdowns int    `json:"receiving_touchdowns"`
	KickReturnYards     int    `json:"kick_return_yards"`
	Fumbles             int    `json:"fumbles"`
}

func statLineToDTO(ctx context.Context, line playerstats.SeasonLine) statLineDTO {
	_ = ctx

	return statLineDTO{
		StatID:              line.StatID,
		PlayerID:            line.PlayerID,
		PlayerName:          line.PlayerName,
		Position:            line.Position,
		TeamID:              line.TeamID,
		TeamName:            line.TeamName,
		SeasonID:            line.SeasonID,
		SeasonYear:          line.SeasonYear,
		SeasonType:          line.SeasonType,
		GamesPlayed:         line.GamesPlayed,
		GamesStarted:        line.GamesStarted,
		RushingYards:        line.RushingYards,
		RushingTouchdowns:   line.RushingTouchdowns,
		ReceivingYards:      line.ReceivingYards,
		ReceivingTouchdowns: line.ReceivingTouchdowns,
		KickReturnYards:     line.KickReturnYards,
		Fumbles:             line.Fumbles,
	}
}

type rankingDTO struct {
	ID            int64      `json:"id"`
	PollID        string     `json:"poll_id"`
	PollName      string     `json:"poll_name"`
	SeasonID      string     `json:"season_id"`
	SeasonYear    int        `json:"season_year"`
	Week          int        `json:"week"`
	EffectiveTime *time.Time `json:"effective_time,omitempty"`
	TeamID        string     `json:"team_id"`
	TeamName      string     `json:"team_name"`
	TeamMarket    string     `json:"team_market"`
	Rank          int        `json:"rank"`
	PrevRank      int        `json:"prev_rank"`
	Points        int        `json:"points"`
	FPVotes       int        `json:"fp_votes"`
	Wins          int        `json:"wins"`
	Losses        int        `json:"losses"`
	Ties          int        `json:"ties"`
}

func rankingToDTO(ctx context.Context, r ranking.Ranking) rankingDTO {
	_ = ctx

	return rankingDTO{
		ID:            r.ID,
		PollID:        r.PollID,
		PollName:      r.PollName,
		SeasonID:      r.SeasonID,
		SeasonYear:    r.SeasonYear,
		Week:          r.Week,
		EffectiveTime: r.EffectiveTime,
		TeamID:        r.TeamID,
		TeamName:      r.TeamName,
		TeamMarket:    r.TeamMarket,
		Rank:          r.Rank,
		PrevRank:      r.PrevRank,
		Points:        r.Points,
		FPVotes:       r.FPVotes,
		Wins:          r.Wins,
		Losses:        r.Losses,
		Ties:          r.Ties,
	}
}

type seasonDTO struct {
	ID        string     `json:"id"`
	Year      int        `json:"year"`
	TypeCode  string     `json:"type_code"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func seasonToDTO(ctx context.Context, s season.Season) seasonDTO {
	_ = ctx

	return seasonDTO{
		ID:        s.ID,
		Year:      s.Year,
		TypeCode:  string(s.TypeCode),
		Status:    s.Status,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
	}
}

type conferenceDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Alias     string `json:"alias,omitempty"`
	TeamCount int    `json:"team_count"`
}

func conferenceToDTO(ctx context.Context, c conference.Conference) conferenceDTO {
	_ = ctx

	return conferenceDTO{ID: c.ID, Name: c.Name, Alias: c.Alias, TeamCount: c.TeamCount}
}

type divisionDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Alias          string `json:"alias,omitempty"`
	ConferenceID   string `json:"conference_id"`
	ConferenceName string `json:"conference_name,omitempty"`
}

func divisionToDTO(ctx context.Context, d division.Division) divisionDTO {
	_ = ctx

	return divisionDTO{
		ID:             d.ID,
		Name:           d.Name,
		Alias:          d.Alias,
		ConferenceID:   d.ConferenceID,
		ConferenceName: d.ConferenceName,
	}
}

type venueDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Address   string  `json:"address,omitempty"`
	Capacity  int     `json:"capacity"`
	Surface   string  `json:"surface,omitempty"`
	RoofType  string  `json:"roof_type,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

func venueToDTO(ctx context.Context, v venue.Venue) venueDTO {
	_ = ctx

	return venueDTO{
		ID:        v.ID,
		Name:      v.Name,
		City:      v.City,
		State:     v.State,
		Country:   v.Country,
		Zip:       v.Zip,
		Address:   v.Address,
		Capacity:  v.Capacity,
		Surface:   v.Surface,
		RoofType:  v.RoofType,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
	}
}

type coachDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

func coachToDTO(ctx context.Context, c coach.Coach) coachDTO {
	_ = ctx

	return coachDTO{ID: c.ID, FullName: c.FullName, Position: c.Position, TeamID: c.TeamID, TeamName: c.TeamName}
}

type statsSummaryDTO struct {
	TeamCount       int          `json:"team_count"`
	PlayerCount     int          `json:"player_count"`
	CoachCount      int          `json:"coach_count"`
	VenueCount      int          `json:"venue_count"`
	ConferenceCount int          `json:"conference_count"`
	StatLineCount   int          `json:"stat_line_count"`
	RankingCount    int          `json:"ranking_count"`
	LatestSeason    *seasonDTO   `json:"latest_season,omitempty"`
	TopRankings     []rankingDTO `json:"top_rankings"`
	RushingLeader   *statLineDTO `json:"rushing_leader,omitempty"`
}

func statsSummaryToDTO(ctx context.Context, summary usecase.StatsSummary) statsSummaryDTO {
	dto := statsSummaryDTO{
		TeamCount:       summary.TeamCount,
		PlayerCount:     summary.PlayerCount,
		CoachCount:      summary.CoachCount,
		VenueCount:      summary.VenueCount,
		ConferenceCount: summary.ConferenceCount,
		StatLineCount:   summary.StatLineCount,
		RankingCount:    summary.RankingCount,
		TopRankings:     make([]rankingDTO, 0, len(summary.TopRankings)),
	}
	if summary.LatestSeason != nil {
		latest := seasonToDTO(ctx, *summary.LatestSeason)
		dto.LatestSeason = &latest
	}
	for _, r := range summary.TopRankings {
		dto.TopRankings = append(dto.TopRankings, rankingToDTO(ctx, r))
	}
	if summary.RushingLeader != nil {
		leader := statLineToDTO(ctx, *summary.RushingLeader)
		dto.RushingLeader = &leader
	}

	return dto
}
