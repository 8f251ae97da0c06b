package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	qb "github.com/gridironstats/ncaafb-api/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

var rankingSelectColumns = []string{
	"r.ranking_id", "r.poll_id", "r.poll_name", "r.season_id", "r.week",
	"r.effective_time", "r.team_id", "r.rank", "r.prev_rank", "r.points",
	"r.fp_votes", "r.wins", "r.losses", "r.ties",
	"s.year AS season_year",
	"t.name AS team_name",
	"t.market AS team_market",
}

func rankingBaseQuery() *qb.SelectBuilder {
	return qb.Select(rankingSelectColumns...).
		From("rankings r").
		Join("teams t", "t.team_id = r.team_id").
		LeftJoin("seasons s", "s.season_id = r.season_id")
}

func (r *RankingRepository) List(ctx context.Context, filter ranking.Filter) ([]ranking.Ranking, error) {
	conditions := make([]qb.Condition, 0, 5)
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("r.season_id", filter.SeasonID))
	}
	if filter.SeasonYear != 0 {
		conditions = append(conditions, qb.Eq("s.year", filter.SeasonYear))
	}
	if filter.Week != 0 {
		conditions = append(conditions, qb.Eq("r.week", filter.Week))
	}
	if filter.PollID != "" {
		conditions = append(conditions, qb.Eq("r.poll_id", filter.PollID))
	}
	if filter.TeamID != "" {
		conditions = append(conditions, qb.Eq("r.team_id", filter.TeamID))
	}

	query, args, err := rankingBaseQuery().
		Where(conditions...).
		OrderBy("r.week DESC", "r.rank").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list rankings query: %w", err)
	}

	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rankings: %w", err)
	}

	out := make([]ranking.Ranking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *RankingRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("rankings r").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count rankings query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count rankings: %w", err)
	}

	return count, nil
}

func (r *RankingRepository) LatestTop(ctx context.Context, seasonYear, limit int) ([]ranking.Ranking, error) {
	query, args, err := rankingBaseQuery().
		Where(
			qb.Eq("s.year", seasonYear),
			qb.Expr("r.week = (SELECT MAX(week) FROM rankings r2 WHERE r2.season_id = r.season_id)"),
		).
		OrderBy("r.rank").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build latest top rankings query: %w", err)
	}

	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select latest top rankings: %w", err)
	}

	out := make([]ranking.Ranking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
