package postgres

import (
	"database/sql"

	"github.com/gridironstats/ncaafb-api/internal/domain/player"
)

type playerTableModel struct {
	PlayerID    string         `db:"player_id"`
	FirstName   sql.NullString `db:"first_name"`
	LastName    sql.NullString `db:"last_name"`
	AbbrName    sql.NullString `db:"abbr_name"`
	BirthPlace  sql.NullString `db:"birth_place"`
	Position    sql.NullString `db:"position"`
	Height      sql.NullInt64  `db:"height"`
	Weight      sql.NullInt64  `db:"weight"`
	Status      sql.NullString `db:"status"`
	Eligibility sql.NullString `db:"eligibility"`
	TeamID      sql.NullString `db:"team_id"`
	TeamName    sql.NullString `db:"team_name"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.PlayerID,
		FirstName:   m.FirstName.String,
		LastName:    m.LastName.String,
		AbbrName:    m.AbbrName.String,
		BirthPlace:  m.BirthPlace.String,
		Position:    m.Position.String,
		Height:      int(m.Height.Int64),
		Weight:      int(m.Weight.Int64),
		Status:      m.Status.String,
		Eligibility: m.Eligibility.String,
		TeamID:      m.TeamID.String,
		TeamName:    m.TeamName.String,
	}
}
