package conference

import "fmt"

// Conference is a top-level grouping of college football programs.
type Conference struct {
	ID        string
	Name      string
	Alias     string
	TeamCount int
}

func (c Conference) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conference id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("conference name is required")
	}

	return nil
}
