package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
	qb "github.com/gridironstats/ncaafb-api/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

var statLineSelectColumns = []string{
	"ps.stat_id", "ps.player_id", "ps.team_id", "ps.season_id",
	"ps.games_played", "ps.games_started",
	"ps.rushing_yards", "ps.rushing_touchdowns",
	"ps.receiving_yards", "ps.receiving_touchdowns",
	"ps.kick_return_yards", "ps.fumbles",
	"p.first_name || ' ' || p.last_name AS player_name",
	"p.position",
	"t.market || ' ' || t.name AS team_name",
	"s.year AS season_year",
	"s.type_code AS season_type",
}

func statLineBaseQuery() *qb.SelectBuilder {
	return qb.Select(statLineSelectColumns...).
		From("player_statistics ps").
		Join("players p", "p.player_id = ps.player_id").
		LeftJoin("teams t", "t.team_id = ps.team_id").
		LeftJoin("seasons s", "s.season_id = ps.season_id")
}

func statLineFilterConditions(filter playerstats.Filter) []qb.Condition {
	conditions := make([]qb.Condition, 0, 4)
	if filter.PlayerID != "" {
		conditions = append(conditions, qb.Eq("ps.player_id", filter.PlayerID))
	}
	if filter.TeamID != "" {
		conditions = append(conditions, qb.Eq("ps.team_id", filter.TeamID))
	}
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("ps.season_id", filter.SeasonID))
	}
	if filter.SeasonYear != 0 {
		conditions = append(conditions, qb.Eq("s.year", filter.SeasonYear))
	}

	return conditions
}

func (r *PlayerStatsRepository) List(ctx context.Context, filter playerstats.Filter) ([]playerstats.SeasonLine, error) {
	orderBy := []string{"ps.rushing_yards DESC NULLS LAST", "ps.receiving_yards DESC NULLS LAST"}
	if filter.SortBy != "" {
		if !playerstats.SortColumns[filter.SortBy] {
			return nil, fmt.Errorf("unsupported sort column %q", filter.SortBy)
		}
		orderBy = []string{"ps." + filter.SortBy + " DESC NULLS LAST", "p.last_name"}
	}

	query, args, err := statLineBaseQuery().
		Where(statLineFilterConditions(filter)...).
		OrderBy(orderBy...).
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stat lines query: %w", err)
	}

	var rows []statLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stat lines: %w", err)
	}

	out := make([]playerstats.SeasonLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerStatsRepository) Leader(ctx context.Context, seasonYear int, sortBy string) (playerstats.SeasonLine, bool, error) {
	lines, err := r.List(ctx, playerstats.Filter{SeasonYear: seasonYear, SortBy: sortBy, Limit: 1})
	if err != nil {
		return playerstats.SeasonLine{}, false, err
	}
	if len(lines) == 0 {
		return playerstats.SeasonLine{}, false, nil
	}

	return lines[0], true, nil
}

func (r *PlayerStatsRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("player_statistics ps").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count stat lines query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count stat lines: %w", err)
	}

	return count, nil
}
