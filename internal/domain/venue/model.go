package venue

import "fmt"

// Venue is a stadium where home games are played.
type Venue struct {
	ID        string
	Name      string
	City      string
	State     string
	Country   string
	Zip       string
	Address   string
	Capacity  int
	Surface   string
	RoofType  string
	Latitude  float64
	Longitude float64
}

func (v Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("venue id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}

	return nil
}
