package postgres

import (
	"database/sql"
	"time"

	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
)

type rankingTableModel struct {
	RankingID     int64          `db:"ranking_id"`
	PollID        sql.NullString `db:"poll_id"`
	PollName      sql.NullString `db:"poll_name"`
	SeasonID      sql.NullString `db:"season_id"`
	SeasonYear    sql.NullInt64  `db:"season_year"`
	Week          sql.NullInt64  `db:"week"`
	EffectiveTime *time.Time     `db:"effective_time"`
	TeamID        string         `db:"team_id"`
	TeamName      sql.NullString `db:"team_name"`
	TeamMarket    sql.NullString `db:"team_market"`
	Rank          int            `db:"rank"`
	PrevRank      sql.NullInt64  `db:"prev_rank"`
	Points        sql.NullInt64  `db:"points"`
	FPVotes       sql.NullInt64  `db:"fp_votes"`
	Wins          sql.NullInt64  `db:"wins"`
	Losses        sql.NullInt64  `db:"losses"`
	Ties          sql.NullInt64  `db:"ties"`
}

func (m rankingTableModel) toDomain() ranking.Ranking {
	return ranking.Ranking{
		ID:            m.RankingID,
		PollID:        m.PollID.String,
		PollName:      m.PollName.String,
		SeasonID:      m.SeasonID.String,
		SeasonYear:    int(m.SeasonYear.Int64),
		Week:          int(m.Week.Int64),
		EffectiveTime: m.EffectiveTime,
		TeamID:        m.TeamID,
		TeamName:      m.TeamName.String,
		TeamMarket:    m.TeamMarket.String,
		Rank:          m.Rank,
		PrevRank:      int(m.PrevRank.Int64),
		Points:        int(m.Points.Int64),
		FPVotes:       int(m.FPVotes.Int64),
		Wins:          int(m.Wins.Int64),
		Losses:        int(m.Losses.Int64),
		Ties:          int(m.Ties.Int64),
	}
}
