package postgres

import (
	"database/sql"

	"github.com/gridironstats/ncaafb-api/internal/domain/team"
)

type teamTableModel struct {
	TeamID           string         `db:"team_id"`
	Market           sql.NullString `db:"market"`
	Name             string         `db:"name"`
	Alias            sql.NullString `db:"alias"`
	Founded          sql.NullInt64  `db:"founded"`
	Mascot           sql.NullString `db:"mascot"`
	FightSong        sql.NullString `db:"fight_song"`
	ChampionshipsWon sql.NullInt64  `db:"championships_won"`
	ConferenceID     sql.NullString `db:"conference_id"`
	ConferenceName   sql.NullString `db:"conference_name"`
	DivisionID       sql.NullString `db:"division_id"`
	DivisionName     sql.NullString `db:"division_name"`
	VenueID          sql.NullString `db:"venue_id"`
	VenueName        sql.NullString `db:"venue_name"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:               m.TeamID,
		Market:           m.Market.String,
		Name:             m.Name,
		Alias:            m.Alias.String,
		Founded:          int(m.Founded.Int64),
		Mascot:           m.Mascot.String,
		FightSong:        m.FightSong.String,
		ChampionshipsWon: int(m.ChampionshipsWon.Int64),
		ConferenceID:     m.ConferenceID.String,
		ConferenceName:   m.ConferenceName.String,
		DivisionID:       m.DivisionID.String,
		DivisionName:     m.DivisionName.String,
		VenueID:          m.VenueID.String,
		VenueName:        m.VenueName.String,
	}
}
