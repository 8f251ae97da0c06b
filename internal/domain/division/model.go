package division

import "fmt"

// Division is a subdivision of a conference, e.g. "East" or "West".
type Division struct {
	ID             string
	Name           string
	Alias          string
	ConferenceID   string
	ConferenceName string
}

func (d Division) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("division id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("division name is required")
	}

	return nil
}
