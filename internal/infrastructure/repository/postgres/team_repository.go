package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	qb "github.com/gridironstats/ncaafb-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

var teamSelectColumns = []string{
	"t.team_id", "t.market", "t.name", "t.alias", "t.founded", "t.mascot",
	"t.fight_song", "t.championships_won", "t.conference_id", "t.division_id", "t.venue_id",
	"c.name AS conference_name",
	"d.name AS division_name",
	"v.name AS venue_name",
}

func teamBaseQuery(columns ...string) *qb.SelectBuilder {
	return qb.Select(columns...).
		From("teams t").
		LeftJoin("conferences c", "c.conference_id = t.conference_id").
		LeftJoin("divisions d", "d.division_id = t.division_id").
		LeftJoin("venues v", "v.venue_id = t.venue_id")
}

func teamFilterConditions(filter team.Filter) []qb.Condition {
	conditions := make([]qb.Condition, 0, 3)
	if filter.ConferenceID != "" {
		conditions = append(conditions, qb.Eq("t.conference_id", filter.ConferenceID))
	}
	if filter.DivisionID != "" {
		conditions = append(conditions, qb.Eq("t.division_id", filter.DivisionID))
	}
	if filter.Search != "" {
		pattern := qb.ContainsPattern(filter.Search)
		conditions = append(conditions, qb.Expr(
			"(t.market ILIKE ? OR t.name ILIKE ? OR t.alias ILIKE ?)",
			pattern, pattern, pattern,
		))
	}

	return conditions
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	query, args, err := teamBaseQuery(teamSelectColumns...).
		Where(teamFilterConditions(filter)...).
		OrderBy("t.market", "t.name").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := teamBaseQuery(teamSelectColumns...).
		Where(qb.Eq("t.team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Count(ctx context.Context, filter team.Filter) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		From("teams t").
		Where(teamFilterConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}

	return count, nil
}
