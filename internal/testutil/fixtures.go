package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/google/uuid"
)

// Params options
type ParamsOption func(*domain.ProjectParams)

func WithType(t domain.ProjectType) ParamsOption {
	return func(p *domain.ProjectParams) {
		p.Type = t
	}
}

func WithSquareFootage(sqft int) ParamsOption {
	return func(p *domain.ProjectParams) {
		p.SquareFootage = sqft
	}
}

func WithStories(n int) ParamsOption {
	return func(p *domain.ProjectParams) {
		p.Stories = n
	}
}

func WithWeeks(n int) ParamsOption {
	return func(p *domain.ProjectParams) {
		p.Weeks = n
	}
}

func WithStartDate(d time.Time) ParamsOption {
	return func(p *domain.ProjectParams) {
		p.StartDate = d
	}
}

// NewTestParams returns valid residential project params that individual
// tests override through options.
func NewTestParams(name string, opts ...ParamsOption) domain.ProjectParams {
	p := domain.ProjectParams{
		Name:          name,
		Location:      "Portland, OR",
		Type:          domain.TypeResidential,
		SquareFootage: 2400,
		Stories:       2,
		Weeks:         4,
		StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestSchedule builds a contiguous schedule starting at start, one entry
// per task list element.
func NewTestSchedule(start time.Time, taskLists ...[]string) domain.Schedule {
	s := domain.Schedule{Weeks: make([]domain.WeekEntry, 0, len(taskLists))}
	for i, tasks := range taskLists {
		weekStart := start.AddDate(0, 0, 7*i)
		s.Weeks = append(s.Weeks, domain.WeekEntry{
			Week:      i + 1,
			StartDate: weekStart,
			EndDate:   weekStart.AddDate(0, 0, 6),
			Tasks:     tasks,
		})
	}
	return s
}

// NewTestSaved builds a SavedSchedule whose params and schedule agree on the
// week count and start date.
func NewTestSaved(name string, taskLists ...[]string) *domain.SavedSchedule {
	params := NewTestParams(name, WithWeeks(len(taskLists)))
	return &domain.SavedSchedule{
		ID:        uuid.New().String(),
		Params:    params,
		Schedule:  NewTestSchedule(params.StartDate, taskLists...),
		Materials: []domain.MaterialsEntry{{Task: "Excavation", Materials: []string{"Excavator rental"}}},
		Cost:      domain.CostEstimate{Low: 672000, High: 1440000},
		CreatedAt: time.Now().UTC(),
	}
}

// ScheduleJSON renders task lists as the JSON array a completion endpoint
// would return, one element per week numbered from 1.
func ScheduleJSON(taskLists ...[]string) string {
	out := "["
	for i, tasks := range taskLists {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"week": %d, "tasks": [`, i+1)
		for j, task := range tasks {
			if j > 0 {
				out += ","
			}
			out += fmt.Sprintf("%q", task)
		}
		out += "]}"
	}
	return out + "]"
}
