package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	qb "github.com/gridironstats/ncaafb-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

var playerSelectColumns = []string{
	"p.player_id", "p.first_name", "p.last_name", "p.abbr_name", "p.birth_place",
	"p.position", "p.height", "p.weight", "p.status", "p.eligibility", "p.team_id",
	"t.market || ' ' || t.name AS team_name",
}

func playerBaseQuery(columns ...string) *qb.SelectBuilder {
	return qb.Select(columns...).
		From("players p").
		LeftJoin("teams t", "t.team_id = p.team_id")
}

func playerFilterConditions(filter player.Filter) []qb.Condition {
	conditions := make([]qb.Condition, 0, 4)
	if filter.TeamID != "" {
		conditions = append(conditions, qb.Eq("p.team_id", filter.TeamID))
	}
	if filter.Position != "" {
		conditions = append(conditions, qb.Eq("p.position", filter.Position))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("p.status", filter.Status))
	}
	if filter.Search != "" {
		pattern := qb.ContainsPattern(filter.Search)
		conditions = append(conditions, qb.Expr(
			"(p.first_name || ' ' || p.last_name) ILIKE ?",
			pattern,
		))
	}

	return conditions
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	query, args, err := playerBaseQuery(playerSelectColumns...).
		Where(playerFilterConditions(filter)...).
		OrderBy("p.last_name", "p.first_name").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := playerBaseQuery(playerSelectColumns...).
		Where(qb.Eq("p.player_id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Count(ctx context.Context, filter player.Filter) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("players p").
		Where(playerFilterConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return count, nil
}
