package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironstats/ncaafb-api/internal/domain/coach"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/division"
	"github.com/gridironstats/ncaafb-api/internal/domain/venue"
	qb "github.com/gridironstats/ncaafb-api/internal/platform/querybuilder"
)

type ConferenceRepository struct {
	db *sqlx.DB
}

func NewConferenceRepository(db *sqlx.DB) *ConferenceRepository {
	return &ConferenceRepository{db: db}
}

type conferenceTableModel struct {
	ConferenceID string         `db:"conference_id"`
	Name         string         `db:"name"`
	Alias        sql.NullString `db:"alias"`
	TeamCount    int            `db:"team_count"`
}

func (m conferenceTableModel) toDomain() conference.Conference {
	return conference.Conference{
		ID:        m.ConferenceID,
		Name:      m.Name,
		Alias:     m.Alias.String,
		TeamCount: m.TeamCount,
	}
}

func conferenceBaseQuery() *qb.SelectBuilder {
	return qb.Select(
		"c.conference_id", "c.name", "c.alias",
		"COUNT(t.team_id) AS team_count",
	).
		From("conferences c").
		LeftJoin("teams t", "t.conference_id = c.conference_id").
		GroupBy("c.conference_id", "c.name", "c.alias")
}

func (r *ConferenceRepository) List(ctx context.Context) ([]conference.Conference, error) {
	query, args, err := conferenceBaseQuery().
		OrderBy("c.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list conferences query: %w", err)
	}

	var rows []conferenceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select conferences: %w", err)
	}

	out := make([]conference.Conference, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ConferenceRepository) GetByID(ctx context.Context, conferenceID string) (conference.Conference, bool, error) {
	query, args, err := conferenceBaseQuery().
		Where(qb.Eq("c.conference_id", conferenceID)).
		ToSQL()
	if err != nil {
		return conference.Conference{}, false, fmt.Errorf("build get conference query: %w", err)
	}

	var row conferenceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return conference.Conference{}, false, nil
		}
		return conference.Conference{}, false, fmt.Errorf("get conference: %w", err)
	}

	return row.toDomain(), true, nil
}

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

type divisionTableModel struct {
	DivisionID     string         `db:"division_id"`
	Name           string         `db:"name"`
	Alias          sql.NullString `db:"alias"`
	ConferenceID   sql.NullString `db:"conference_id"`
	ConferenceName sql.NullString `db:"conference_name"`
}

func (m divisionTableModel) toDomain() division.Division {
	return division.Division{
		ID:             m.DivisionID,
		Name:           m.Name,
		Alias:          m.Alias.String,
		ConferenceID:   m.ConferenceID.String,
		ConferenceName: m.ConferenceName.String,
	}
}

func divisionBaseQuery() *qb.SelectBuilder {
	return qb.Select(
		"d.division_id", "d.name", "d.alias", "d.conference_id",
		"c.name AS conference_name",
	).
		From("divisions d").
		LeftJoin("conferences c", "c.conference_id = d.conference_id")
}

func (r *DivisionRepository) List(ctx context.Context, conferenceID string) ([]division.Division, error) {
	builder := divisionBaseQuery().OrderBy("c.name", "d.name")
	if conferenceID != "" {
		builder = builder.Where(qb.Eq("d.conference_id", conferenceID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select divisions: %w", err)
	}

	out := make([]division.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, divisionID string) (division.Division, bool, error) {
	query, args, err := divisionBaseQuery().
		Where(qb.Eq("d.division_id", divisionID)).
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build get division query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, fmt.Errorf("get division: %w", err)
	}

	return row.toDomain(), true, nil
}

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

type venueTableModel struct {
	VenueID   string          `db:"venue_id"`
	Name      string          `db:"name"`
	City      sql.NullString  `db:"city"`
	State     sql.NullString  `db:"state"`
	Country   sql.NullString  `db:"country"`
	Zip       sql.NullString  `db:"zip"`
	Address   sql.NullString  `db:"address"`
	Capacity  sql.NullInt64   `db:"capacity"`
	Surface   sql.NullString  `db:"surface"`
	RoofType  sql.NullString  `db:"roof_type"`
	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`
}

func (m venueTableModel) toDomain() venue.Venue {
	return venue.Venue{
		ID:        m.VenueID,
		Name:      m.Name,
		City:      m.City.String,
		State:     m.State.String,
		Country:   m.Country.String,
		Zip:       m.Zip.String,
		Address:   m.Address.String,
		Capacity:  int(m.Capacity.Int64),
		Surface:   m.Surface.String,
		RoofType:  m.RoofType.String,
		Latitude:  m.Latitude.Float64,
		Longitude: m.Longitude.Float64,
	}
}

var venueSelectColumns = []string{
	"venue_id", "name", "city", "state", "country", "zip", "address",
	"capacity", "surface", "roof_type", "latitude", "longitude",
}

func (r *VenueRepository) List(ctx context.Context, state string) ([]venue.Venue, error) {
	builder := qb.Select(venueSelectColumns...).From("venues").OrderBy("name")
	if state != "" {
		builder = builder.Where(qb.Eq("state", state))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	query, args, err := qb.Select(venueSelectColumns...).
		From("venues").
		Where(qb.Eq("venue_id", venueID)).
		ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build get venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("get venue: %w", err)
	}

	return row.toDomain(), true, nil
}

type CoachRepository struct {
	db *sqlx.DB
}

func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

type coachTableModel struct {
	CoachID  string         `db:"coach_id"`
	FullName string         `db:"full_name"`
	Position sql.NullString `db:"position"`
	TeamID   sql.NullString `db:"team_id"`
	TeamName sql.NullString `db:"team_name"`
}

func (m coachTableModel) toDomain() coach.Coach {
	return coach.Coach{
		ID:       m.CoachID,
		FullName: m.FullName,
		Position: m.Position.String,
		TeamID:   m.TeamID.String,
		TeamName: m.TeamName.String,
	}
}

func coachBaseQuery() *qb.SelectBuilder {
	return qb.Select(
		"co.coach_id", "co.full_name", "co.position", "co.team_id",
		"t.market || ' ' || t.name AS team_name",
	).
		From("coaches co").
		LeftJoin("teams t", "t.team_id = co.team_id")
}

func (r *CoachRepository) List(ctx context.Context, teamID string) ([]coach.Coach, error) {
	builder := coachBaseQuery().OrderBy("co.full_name")
	if teamID != "" {
		builder = builder.Where(qb.Eq("co.team_id", teamID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list coaches query: %w", err)
	}

	var rows []coachTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select coaches: %w", err)
	}

	out := make([]coach.Coach, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *CoachRepository) GetByID(ctx context.Context, coachID string) (coach.Coach, bool, error) {
	query, args, err := coachBaseQuery().
		Where(qb.Eq("co.coach_id", coachID)).
		ToSQL()
	if err != nil {
		return coach.Coach{}, false, fmt.Errorf("build get coach query: %w", err)
	}

	var row coachTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return coach.Coach{}, false, nil
		}
		return coach.Coach{}, false, fmt.Errorf("get coach: %w", err)
	}

	return row.toDomain(), true, nil
}
