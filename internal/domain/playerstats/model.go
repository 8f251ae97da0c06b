package playerstats

// SeasonLine is one player's accumulated statistics for a single season
// with a single team.
type SeasonLine struct {
	StatID              int64
	PlayerID            string
	PlayerName          string
	Position            string
	TeamID              string
	TeamName            string
	SeasonID            string
	SeasonYear          int
	SeasonType          string
	GamesPlayed         int
	GamesStarted        int
	RushingYards        int
	RushingTouchdowns   int
	ReceivingYards      int
	ReceivingTouchdowns int
	KickReturnYards     int
	Fumbles             int
}

// Filter narrows statistic listings. SortBy names one of the numeric stat
// columns; repositories reject values outside the known set.
type Filter struct {
	PlayerID   string
	TeamID     string
	SeasonID   string
	SeasonYear int
	SortBy     string
	Limit      int
	Offset     int
}

// SortColumns lists the stat columns a listing may be ordered by.
var SortColumns = map[string]bool{
	"games_played":         true,
	"games_started":        true,
	"rushing_yards":        true,
	"rushing_touchdowns":   true,
	"receiving_yards":      true,
	"receiving_touchdowns": true,
	"kick_return_yards":    true,
	"fumbles":              true,
}
