package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() ProjectParams {
	return ProjectParams{
		Name:          "Maple Street Duplex",
		Location:      "Portland, OR",
		Type:          TypeResidential,
		SquareFootage: 2400,
		Stories:       2,
		Weeks:         10,
		StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestProjectParams_Validate_Valid(t *testing.T) {
	p := validParams()
	assert.NoError(t, p.Validate())
}

func TestProjectParams_Validate_MissingName(t *testing.T) {
	p := validParams()
	p.Name = ""
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestProjectParams_Validate_UnknownType(t *testing.T) {
	p := validParams()
	p.Type = "skyscraper"
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project type")
}

func TestProjectParams_Validate_NonPositiveFootage(t *testing.T) {
	for _, sqft := range []int{0, -100} {
		p := validParams()
		p.SquareFootage = sqft
		assert.Error(t, p.Validate(), "should reject %d sqft", sqft)
	}
}

func TestProjectParams_Validate_WeeksOutOfRange(t *testing.T) {
	for _, weeks := range []int{0, -1, 53} {
		p := validParams()
		p.Weeks = weeks
		assert.Error(t, p.Validate(), "should reject %d weeks", weeks)
	}
}

func TestProjectParams_Validate_ZeroStartDate(t *testing.T) {
	p := validParams()
	p.StartDate = time.Time{}
	assert.Error(t, p.Validate())
}

func TestWeekEntry_TaskSummary(t *testing.T) {
	w := WeekEntry{Tasks: []string{"Excavation", "Grading"}}
	assert.Equal(t, "Excavation; Grading", w.TaskSummary())

	empty := WeekEntry{}
	assert.Equal(t, "", empty.TaskSummary())
}

func TestSchedule_AllTasks_PreservesOrderAndDuplicates(t *testing.T) {
	s := Schedule{Weeks: []WeekEntry{
		{Week: 1, Tasks: []string{"Excavation", "Grading"}},
		{Week: 2, Tasks: []string{"Pour foundation"}},
		{Week: 3, Tasks: []string{"Grading"}},
	}}
	assert.Equal(t, []string{"Excavation", "Grading", "Pour foundation", "Grading"}, s.AllTasks())
}
