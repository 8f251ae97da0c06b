package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	qb "github.com/gridironstats/ncaafb-api/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

type seasonTableModel struct {
	SeasonID  string         `db:"season_id"`
	Year      int            `db:"year"`
	TypeCode  string         `db:"type_code"`
	Status    sql.NullString `db:"status"`
	StartDate *time.Time     `db:"start_date"`
	EndDate   *time.Time     `db:"end_date"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:        m.SeasonID,
		Year:      m.Year,
		TypeCode:  season.TypeCode(m.TypeCode),
		Status:    m.Status.String,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
}

var seasonSelectColumns = []string{
	"season_id", "year", "type_code", "status", "start_date", "end_date",
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select(seasonSelectColumns...).
		From("seasons").
		OrderBy("year DESC", "type_code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SeasonRepository) GetByYear(ctx context.Context, year int, typeCode season.TypeCode) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).
		From("seasons").
		Where(
			qb.Eq("year", year),
			qb.Eq("type_code", string(typeCode)),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) Latest(ctx context.Context) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).
		From("seasons").
		Where(qb.Eq("type_code", string(season.TypeRegular))).
		OrderBy("year DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build latest season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get latest season: %w", err)
	}

	return row.toDomain(), true, nil
}
