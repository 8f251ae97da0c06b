package coach

import "fmt"

// Coach is a member of a team's coaching staff.
type Coach struct {
	ID       string
	FullName string
	Position string
	TeamID   string
	TeamName string
}

func (c Coach) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("coach id is required")
	}
	if c.FullName == "" {
		return fmt.Errorf("coach full name is required")
	}

	return nil
}
