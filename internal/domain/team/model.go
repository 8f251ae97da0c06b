package team

import "fmt"

// Team is a college football program.
type Team struct {
	ID               string
	Market           string
	Name             string
	Alias            string
	Founded          int
	Mascot           string
	FightSong        string
	ChampionshipsWon int
	ConferenceID     string
	ConferenceName   string
	DivisionID       string
	DivisionName     string
	VenueID          string
	VenueName        string
}

// DisplayName is the common "Market Name" rendering, e.g. "Alabama Crimson Tide".
func (t Team) DisplayName() string {
	if t.Market == "" {
		return t.Name
	}
	return t.Market + " " + t.Name
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Filter narrows team listings.
type Filter struct {
	ConferenceID string
	DivisionID   string
	Search       string
	Limit        int
	Offset       int
}
