package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/llm"
)

const dateLayout = "2006-01-02"

// weekPayload is one element of the JSON array the model is asked to emit.
// Dates arrive either as a combined date_range or as explicit fields; tasks
// arrive as an array of strings or as one comma-separated string.
type weekPayload struct {
	Week      *int      `json:"week"`
	DateRange string    `json:"date_range"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Tasks     *taskList `json:"tasks"`
}

// taskList accepts both `["a","b"]` and `"a, b"` task encodings.
type taskList []string

func (t *taskList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = trimAll(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("tasks must be an array of strings or a string")
	}
	if strings.TrimSpace(joined) == "" {
		*t = nil
		return nil
	}
	*t = trimAll(strings.Split(joined, ","))
	return nil
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeConfig selects the normalization strategy.
type NormalizeConfig struct {
	// Source selects the week axis: rows in response order with recomputed
	// numbering, or a fixed 1..Weeks axis with lookup by reported week.
	Source domain.WeeksSource

	// Weeks and StartDate drive the fixed strategy. StartDate is also used
	// by the model strategy when an element carries no usable dates.
	Weeks     int
	StartDate time.Time
}

// Normalize parses raw completion text as a strict JSON array of week
// entries and produces the normalized schedule. Any failure (commentary
// around the array, a malformed date, an element missing its week or tasks
// key) is fatal for the whole parse and reported once as a *ParseError.
func Normalize(raw string, cfg NormalizeConfig) (*domain.Schedule, error) {
	payloads, err := llm.DecodeArray[weekPayload](raw, validatePayloads)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}

	switch cfg.Source {
	case domain.WeeksFromModel:
		return normalizeModelOrder(payloads, cfg.StartDate)
	default:
		return normalizeFixed(payloads, cfg.Weeks, cfg.StartDate)
	}
}

// validatePayloads enforces the element schema before either strategy runs.
func validatePayloads(payloads []weekPayload) error {
	if len(payloads) == 0 {
		return fmt.Errorf("schedule array is empty")
	}
	for i, p := range payloads {
		if p.Week == nil {
			return fmt.Errorf("element %d is missing its week field", i)
		}
		if p.Tasks == nil {
			return fmt.Errorf("element %d (week %d) is missing its tasks field", i, *p.Week)
		}
	}
	return nil
}

// normalizeModelOrder produces one row per element in input order. The final
// week column is always 1..N regardless of the integers the model supplied;
// out-of-order or duplicated model numbering is overwritten, not trusted.
func normalizeModelOrder(payloads []weekPayload, fallbackStart time.Time) (*domain.Schedule, error) {
	var weeks []domain.WeekEntry
	for i, p := range payloads {
		start, end, err := p.dates()
		if err != nil {
			return nil, &ParseError{Cause: fmt.Errorf("element %d: %w", i, err)}
		}
		if start.IsZero() {
			// No dates in this element: derive them from the fallback start.
			start = fallbackStart.AddDate(0, 0, 7*i)
			end = start.AddDate(0, 0, 6)
		}
		weeks = append(weeks, domain.WeekEntry{
			Week:      i + 1,
			StartDate: start,
			EndDate:   end,
			Tasks:     *p.Tasks,
		})
	}
	return &domain.Schedule{Weeks: weeks}, nil
}

// normalizeFixed iterates week 1..n and looks up each one by the model's
// reported week number. A week the model omitted becomes a row with an empty
// task list; later weeks keep their numbering. Dates are always computed
// locally from the start date, independent of what the model returned.
func normalizeFixed(payloads []weekPayload, n int, startDate time.Time) (*domain.Schedule, error) {
	byWeek := make(map[int]weekPayload, len(payloads))
	for _, p := range payloads {
		if _, exists := byWeek[*p.Week]; !exists {
			byWeek[*p.Week] = p
		}
	}

	weeks := make([]domain.WeekEntry, 0, n)
	for i := 1; i <= n; i++ {
		start := startDate.AddDate(0, 0, 7*(i-1))
		entry := domain.WeekEntry{
			Week:      i,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 6),
		}
		if p, ok := byWeek[i]; ok {
			entry.Tasks = *p.Tasks
		}
		weeks = append(weeks, entry)
	}
	return &domain.Schedule{Weeks: weeks}, nil
}

// dates extracts the element's date pair from either encoding. A zero start
// with nil error means the element carried no dates at all.
func (p weekPayload) dates() (time.Time, time.Time, error) {
	if p.DateRange != "" {
		parts := strings.SplitN(p.DateRange, " to ", 2)
		if len(parts) != 2 {
			return time.Time{}, time.Time{}, fmt.Errorf("malformed date_range %q", p.DateRange)
		}
		return parseDatePair(parts[0], parts[1])
	}
	if p.StartDate != "" || p.EndDate != "" {
		return parseDatePair(p.StartDate, p.EndDate)
	}
	return time.Time{}, time.Time{}, nil
}

func parseDatePair(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed start date %q", startStr)
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed end date %q", endStr)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %q precedes start date %q", endStr, startStr)
	}
	return start, end, nil
}
