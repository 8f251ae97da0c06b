package player

import "fmt"

// Player is an athlete on a college football roster.
type Player struct {
	ID          string
	FirstName   string
	LastName    string
	AbbrName    string
	BirthPlace  string
	Position    string
	Height      int
	Weight      int
	Status      string
	Eligibility string
	TeamID      string
	TeamName    string
}

// FullName joins first and last name for display.
func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.FirstName == "" && p.LastName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// Filter narrows player listings.
type Filter struct {
	TeamID   string
	Position string
	Status   string
	Search   string
	Limit    int
	Offset   int
}
