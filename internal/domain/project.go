package domain

import (
	"fmt"
	"time"
)

// Duration limits for a generated schedule, in weeks.
const (
	MinWeeks = 1
	MaxWeeks = 52
)

// ProjectParams holds the user-supplied inputs for one generation request.
type ProjectParams struct {
	Name          string
	Location      string
	Type          ProjectType
	SquareFootage int
	Stories       int
	Weeks         int
	StartDate     time.Time
}

// Validate checks the params before any generation work starts. The cost
// estimator and normalizer assume validated input, so every rejection
// happens here.
func (p *ProjectParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if !ValidProjectTypes[string(p.Type)] {
		return fmt.Errorf("unknown project type %q", p.Type)
	}
	if p.SquareFootage <= 0 {
		return fmt.Errorf("square footage must be positive, got %d", p.SquareFootage)
	}
	if p.Stories < 1 {
		return fmt.Errorf("stories must be at least 1, got %d", p.Stories)
	}
	if p.Weeks < MinWeeks || p.Weeks > MaxWeeks {
		return fmt.Errorf("weeks must be between %d and %d, got %d", MinWeeks, MaxWeeks, p.Weeks)
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	return nil
}
