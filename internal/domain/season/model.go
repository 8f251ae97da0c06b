package season

import (
	"fmt"
	"time"
)

// TypeCode distinguishes regular season play from postseason.
type TypeCode string

const (
	TypeRegular    TypeCode = "REG"
	TypePostseason TypeCode = "PST"
)

// Season is one competition year of a given type.
type Season struct {
	ID        string
	Year      int
	TypeCode  TypeCode
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Year < 1869 {
		return fmt.Errorf("invalid season year: %d", s.Year)
	}
	if s.TypeCode == "" {
		return fmt.Errorf("season type code is required")
	}

	return nil
}
