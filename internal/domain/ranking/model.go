package ranking

import (
	"fmt"
	"time"
)

// Ranking is one team's position in a poll for a given week.
type Ranking struct {
	ID            int64
	PollID        string
	PollName      string
	SeasonID      string
	SeasonYear    int
	Week          int
	EffectiveTime *time.Time
	TeamID        string
	TeamName      string
	TeamMarket    string
	Rank          int
	PrevRank      int
	Points        int
	FPVotes       int
	Wins          int
	Losses        int
	Ties          int
}

func (r Ranking) Validate() error {
	if r.TeamID == "" {
		return fmt.Errorf("ranking team id is required")
	}
	if r.Rank < 1 {
		return fmt.Errorf("ranking rank must be >= 1")
	}

	return nil
}

// Filter narrows ranking listings.
type Filter struct {
	SeasonID   string
	SeasonYear int
	Week       int
	PollID     string
	TeamID     string
	Limit      int
	Offset     int
}
