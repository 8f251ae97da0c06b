package postgres

import (
	"database/sql"

	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
)

type statLineTableModel struct {
	StatID              int64          `db:"stat_id"`
	PlayerID            string         `db:"player_id"`
	PlayerName          sql.NullString `db:"player_name"`
	Position            sql.NullString `db:"position"`
	TeamID              sql.NullString `db:"team_id"`
	TeamName            sql.NullString `db:"team_name"`
	SeasonID            sql.NullString `db:"season_id"`
	SeasonYear          sql.NullInt64  `db:"season_year"`
	SeasonType          sql.NullString `db:"season_type"`
	GamesPlayed         sql.NullInt64  `db:"games_played"`
	GamesStarted        sql.NullInt64  `db:"games_started"`
	RushingYards        sql.NullInt64  `db:"rushing_yards"`
	RushingTouchdowns   sql.NullInt64  `db:"rushing_touchdowns"`
	ReceivingYards      sql.NullInt64  `db:"receiving_yards"`
	ReceivingTouchdowns sql.NullInt64  `db:"receiving_touchdowns"`
	KickReturnYards     sql.NullInt64  `db:"kick_return_yards"`
	Fumbles             sql.NullInt64  `db:"fumbles"`
}

func (m statLineTableModel) toDomain() playerstats.SeasonLine {
	return playerstats.SeasonLine{
		StatID:              m.StatID,
		PlayerID:            m.PlayerID,
		PlayerName:          m.PlayerName.String,
		Position:            m.Position.String,
		TeamID:              m.TeamID.String,
		TeamName:            m.TeamName.String,
		SeasonID:            m.SeasonID.String,
		SeasonYear:          int(m.SeasonYear.Int64),
		SeasonType:          m.SeasonType.String,
		GamesPlayed:         int(m.GamesPlayed.Int64),
		GamesStarted:        int(m.GamesStarted.Int64),
		RushingYards:        int(m.RushingYards.Int64),
		RushingTouchdowns:   int(m.RushingTouchdowns.Int64),
		ReceivingYards:      int(m.ReceivingYards.Int64),
		ReceivingTouchdowns: int(m.ReceivingTouchdowns.Int64),
		KickReturnYards:     int(m.KickReturnYards.Int64),
		Fumbles:             int(m.Fumbles.Int64),
	}
}
