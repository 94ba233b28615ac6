package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// WeekEntry is one row of a normalized schedule: a calendar week and the
// tasks planned for it. Week numbers are contiguous starting at 1 across a
// schedule; EndDate is always StartDate plus six days.
type WeekEntry struct {
	Week      int
	StartDate time.Time
	EndDate   time.Time
	Tasks     []string
}

// TaskSummary joins the week's tasks into a single display string. The task
// list itself is kept intact; joining happens only at render and export time.
func (w WeekEntry) TaskSummary() string {
	return strings.Join(w.Tasks, "; ")
}

// DateRange formats the week's dates as "YYYY-MM-DD to YYYY-MM-DD".
func (w WeekEntry) DateRange() string {
	return w.StartDate.Format(dateLayout) + " to " + w.EndDate.Format(dateLayout)
}

// Schedule is an ordered weekly task table.
type Schedule struct {
	Weeks []WeekEntry
}

// AllTasks flattens every week's task list in schedule order. Order is
// preserved and duplicates are kept; this is the materials normalizer input.
func (s *Schedule) AllTasks() []string {
	var tasks []string
	for _, w := range s.Weeks {
		tasks = append(tasks, w.Tasks...)
	}
	return tasks
}

// MaterialsEntry maps one task string to the materials it needs. Materials
// is never empty: the fallback classifier guarantees at least a placeholder.
type MaterialsEntry struct {
	Task      string
	Materials []string
}

// CostEstimate is a low/high dollar range, computed deterministically from
// the project params and never taken from the language model.
type CostEstimate struct {
	Low  int64
	High int64
}

// SavedSchedule is a generated schedule persisted to the history store.
type SavedSchedule struct {
	ID        string
	Params    ProjectParams
	Schedule  Schedule
	Materials []MaterialsEntry
	Cost      CostEstimate
	CreatedAt time.Time
}
