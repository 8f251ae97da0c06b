package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dataset into an empty database so the
// service answers questions out of the box.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedConferences() {
		if err := namedExec(ctx, tx, `
INSERT INTO conferences (conference_id, name, alias)
VALUES (:id, :name, :alias)`, map[string]any{
			"id": c.ID, "name": c.Name, "alias": c.Alias,
		}); err != nil {
			return fmt.Errorf("seed conference %s: %w", c.ID, err)
		}
	}

	for _, d := range memory.SeedDivisions() {
		if err := namedExec(ctx, tx, `
INSERT INTO divisions (division_id, name, alias, conference_id)
VALUES (:id, :name, :alias, :conference_id)`, map[string]any{
			"id": d.ID, "name": d.Name, "alias": d.Alias, "conference_id": d.ConferenceID,
		}); err != nil {
			return fmt.Errorf("seed division %s: %w", d.ID, err)
		}
	}

	for _, v := range memory.SeedVenues() {
		if err := namedExec(ctx, tx, `
INSERT INTO venues (venue_id, name, city, state, country, zip, address, capacity, surface, roof_type, latitude, longitude)
VALUES (:id, :name, :city, :state, :country, :zip, :address, :capacity, :surface, :roof_type, :latitude, :longitude)`, map[string]any{
			"id": v.ID, "name": v.Name, "city": v.City, "state": v.State,
			"country": v.Country, "zip": v.Zip, "address": v.Address,
			"capacity": v.Capacity, "surface": v.Surface, "roof_type": v.RoofType,
			"latitude": v.Latitude, "longitude": v.Longitude,
		}); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.ID, err)
		}
	}

	for _, s := range memory.SeedSeasons() {
		if err := namedExec(ctx, tx, `
INSERT INTO seasons (season_id, year, start_date, end_date, status, type_code)
VALUES (:id, :year, :start_date, :end_date, :status, :type_code)`, map[string]any{
			"id": s.ID, "year": s.Year, "start_date": s.StartDate, "end_date": s.EndDate,
			"status": s.Status, "type_code": string(s.TypeCode),
		}); err != nil {
			return fmt.Errorf("seed season %s: %w", s.ID, err)
		}
	}

	for _, team := range memory.SeedTeams() {
		if err := namedExec(ctx, tx, `
INSERT INTO teams (team_id, market, name, alias, founded, mascot, fight_song, championships_won, conference_id, division_id, venue_id)
VALUES (:id, :market, :name, :alias, :founded, :mascot, :fight_song, :championships_won, :conference_id, :division_id, :venue_id)`, map[string]any{
			"id": team.ID, "market": team.Market, "name": team.Name, "alias": team.Alias,
			"founded": team.Founded, "mascot": team.Mascot, "fight_song": team.FightSong,
			"championships_won": team.ChampionshipsWon,
			"conference_id":     nullIfEmpty(team.ConferenceID),
			"division_id":       nullIfEmpty(team.DivisionID),
			"venue_id":          nullIfEmpty(team.VenueID),
		}); err != nil {
			return fmt.Errorf("seed team %s: %w", team.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := namedExec(ctx, tx, `
INSERT INTO players (player_id, first_name, last_name, abbr_name, birth_place, position, height, weight, status, eligibility, team_id)
VALUES (:id, :first_name, :last_name, :abbr_name, :birth_place, :position, :height, :weight, :status, :eligibility, :team_id)`, map[string]any{
			"id": p.ID, "first_name": p.FirstName, "last_name": p.LastName,
			"abbr_name": p.AbbrName, "birth_place": p.BirthPlace, "position": p.Position,
			"height": p.Height, "weight": p.Weight, "status": p.Status,
			"eligibility": p.Eligibility, "team_id": nullIfEmpty(p.TeamID),
		}); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, c := range memory.SeedCoaches() {
		if err := namedExec(ctx, tx, `
INSERT INTO coaches (coach_id, full_name, position, team_id)
VALUES (:id, :full_name, :position, :team_id)`, map[string]any{
			"id": c.ID, "full_name": c.FullName, "position": c.Position,
			"team_id": nullIfEmpty(c.TeamID),
		}); err != nil {
			return fmt.Errorf("seed coach %s: %w", c.ID, err)
		}
	}

	for _, line := range memory.SeedStatLines() {
		if err := namedExec(ctx, tx, `
INSERT INTO player_statistics (stat_id, player_id, team_id, season_id, games_played, games_started, rushing_yards, rushing_touchdowns, receiving_yards, receiving_touchdowns, kick_return_yards, fumbles)
VALUES (:id, :player_id, :team_id, :season_id, :games_played, :games_started, :rushing_yards, :rushing_touchdowns, :receiving_yards, :receiving_touchdowns, :kick_return_yards, :fumbles)`, map[string]any{
			"id": line.StatID, "player_id": line.PlayerID,
			"team_id": nullIfEmpty(line.TeamID), "season_id": nullIfEmpty(line.SeasonID),
			"games_played": line.GamesPlayed, "games_started": line.GamesStarted,
			"rushing_yards": line.RushingYards, "rushing_touchdowns": line.RushingTouchdowns,
			"receiving_yards": line.ReceivingYards, "receiving_touchdowns": line.ReceivingTouchdowns,
			"kick_return_yards": line.KickReturnYards, "fumbles": line.Fumbles,
		}); err != nil {
			return fmt.Errorf("seed stat line %d: %w", line.StatID, err)
		}
	}

	for _, rk := range memory.SeedRankings() {
		if err := namedExec(ctx, tx, `
INSERT INTO rankings (ranking_id, poll_id, poll_name, season_id, week, effective_time, team_id, rank, prev_rank, points, fp_votes, wins, losses, ties)
VALUES (:id, :poll_id, :poll_name, :season_id, :week, :effective_time, :team_id, :rank, :prev_rank, :points, :fp_votes, :wins, :losses, :ties)`, map[string]any{
			"id": rk.ID, "poll_id": rk.PollID, "poll_name": rk.PollName,
			"season_id": nullIfEmpty(rk.SeasonID), "week": rk.Week,
			"effective_time": rk.EffectiveTime, "team_id": rk.TeamID,
			"rank": rk.Rank, "prev_rank": rk.PrevRank, "points": rk.Points,
			"fp_votes": rk.FPVotes, "wins": rk.Wins, "losses": rk.Losses, "ties": rk.Ties,
		}); err != nil {
			return fmt.Errorf("seed ranking %d: %w", rk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap seed: %w", err)
	}

	return nil
}

func namedExec(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return fmt.Errorf("bind seed query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
		return err
	}

	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
