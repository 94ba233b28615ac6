package schedule

import (
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func fixedCfg(weeks int) NormalizeConfig {
	return NormalizeConfig{Source: domain.WeeksFixed, Weeks: weeks, StartDate: testStart}
}

func modelCfg() NormalizeConfig {
	return NormalizeConfig{Source: domain.WeeksFromModel, StartDate: testStart}
}

func TestNormalize_Fixed_WellFormed(t *testing.T) {
	raw := `[
		{"week": 1, "start_date": "2026-03-02", "end_date": "2026-03-08", "tasks": ["Excavation"]},
		{"week": 2, "start_date": "2026-03-09", "end_date": "2026-03-15", "tasks": ["Foundation"]},
		{"week": 3, "start_date": "2026-03-16", "end_date": "2026-03-22", "tasks": ["Framing"]}
	]`
	s, err := Normalize(raw, fixedCfg(3))
	require.NoError(t, err)
	require.Len(t, s.Weeks, 3)

	for i, w := range s.Weeks {
		assert.Equal(t, i+1, w.Week)
		assert.Equal(t, testStart.AddDate(0, 0, 7*i), w.StartDate)
		assert.Equal(t, w.StartDate.AddDate(0, 0, 6), w.EndDate)
	}
	assert.Equal(t, []string{"Foundation"}, s.Weeks[1].Tasks)
}

func TestNormalize_Fixed_OmittedWeekKeepsNumbering(t *testing.T) {
	// Model skipped week 2; the row exists with no tasks and week 3 does
	// not shift.
	raw := `[
		{"week": 1, "start_date": "2026-03-02", "end_date": "2026-03-08", "tasks": ["Excavation"]},
		{"week": 3, "start_date": "2026-03-16", "end_date": "2026-03-22", "tasks": ["Framing"]}
	]`
	s, err := Normalize(raw, fixedCfg(3))
	require.NoError(t, err)
	require.Len(t, s.Weeks, 3)

	assert.Equal(t, 2, s.Weeks[1].Week)
	assert.Empty(t, s.Weeks[1].Tasks)
	assert.Equal(t, "", s.Weeks[1].TaskSummary())
	assert.Equal(t, 3, s.Weeks[2].Week)
	assert.Equal(t, []string{"Framing"}, s.Weeks[2].Tasks)
}

func TestNormalize_Fixed_DatesComputedLocally(t *testing.T) {
	// The model's dates are nonsense; the fixed strategy ignores them.
	raw := `[{"week": 1, "start_date": "2031-12-25", "end_date": "2031-12-31", "tasks": ["Excavation"]}]`
	s, err := Normalize(raw, fixedCfg(1))
	require.NoError(t, err)

	assert.Equal(t, testStart, s.Weeks[0].StartDate)
	assert.Equal(t, testStart.AddDate(0, 0, 6), s.Weeks[0].EndDate)
}

func TestNormalize_Fixed_ExactNEntries(t *testing.T) {
	// N well-formed entries produce exactly N rows numbered 1..N.
	raw := `[
		{"week": 1, "date_range": "2026-03-02 to 2026-03-08", "tasks": ["A"]},
		{"week": 2, "date_range": "2026-03-09 to 2026-03-15", "tasks": ["B"]},
		{"week": 3, "date_range": "2026-03-16 to 2026-03-22", "tasks": ["C"]},
		{"week": 4, "date_range": "2026-03-23 to 2026-03-29", "tasks": ["D"]}
	]`
	s, err := Normalize(raw, fixedCfg(4))
	require.NoError(t, err)
	require.Len(t, s.Weeks, 4)
	for i, w := range s.Weeks {
		assert.Equal(t, i+1, w.Week)
	}
}

func TestNormalize_ModelOrder_RenumbersInputOrder(t *testing.T) {
	// The model emitted weeks out of order with bogus numbers; the final
	// week column is 1..N in input order.
	raw := `[
		{"week": 7, "start_date": "2026-03-02", "end_date": "2026-03-08", "tasks": ["Excavation"]},
		{"week": 7, "start_date": "2026-03-09", "end_date": "2026-03-15", "tasks": ["Foundation"]},
		{"week": 2, "start_date": "2026-03-16", "end_date": "2026-03-22", "tasks": ["Framing"]}
	]`
	s, err := Normalize(raw, modelCfg())
	require.NoError(t, err)
	require.Len(t, s.Weeks, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{s.Weeks[0].Week, s.Weeks[1].Week, s.Weeks[2].Week})
	assert.Equal(t, []string{"Excavation"}, s.Weeks[0].Tasks)
	assert.Equal(t, []string{"Framing"}, s.Weeks[2].Tasks)
}

func TestNormalize_ModelOrder_DateRangeEncoding(t *testing.T) {
	raw := `[{"week": 1, "date_range": "2026-03-02 to 2026-03-08", "tasks": ["Excavation"]}]`
	s, err := Normalize(raw, modelCfg())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), s.Weeks[0].StartDate)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), s.Weeks[0].EndDate)
}

func TestNormalize_ModelOrder_MissingDatesDerivedFromStart(t *testing.T) {
	raw := `[
		{"week": 1, "tasks": ["Excavation"]},
		{"week": 2, "tasks": ["Foundation"]}
	]`
	s, err := Normalize(raw, modelCfg())
	require.NoError(t, err)

	assert.Equal(t, testStart, s.Weeks[0].StartDate)
	assert.Equal(t, testStart.AddDate(0, 0, 7), s.Weeks[1].StartDate)
	assert.Equal(t, s.Weeks[1].StartDate.AddDate(0, 0, 6), s.Weeks[1].EndDate)
}

func TestNormalize_CommaSeparatedTaskString(t *testing.T) {
	raw := `[{"week": 1, "start_date": "2026-03-02", "end_date": "2026-03-08", "tasks": "Excavation, Grading"}]`
	s, err := Normalize(raw, fixedCfg(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Excavation", "Grading"}, s.Weeks[0].Tasks)
}

func TestNormalize_ProseAroundArrayRejected(t *testing.T) {
	raw := `Sure! Here is your schedule: [{"week": 1, "tasks": []}]`
	_, err := Normalize(raw, fixedCfg(1))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestNormalize_NotJSONRejected(t *testing.T) {
	_, err := Normalize("I cannot produce a schedule for that.", fixedCfg(1))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestNormalize_MissingWeekFieldFatal(t *testing.T) {
	raw := `[{"start_date": "2026-03-02", "end_date": "2026-03-08", "tasks": ["Excavation"]}]`
	_, err := Normalize(raw, fixedCfg(1))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "week")
}

func TestNormalize_MissingTasksFieldFatal(t *testing.T) {
	raw := `[{"week": 1, "start_date": "2026-03-02", "end_date": "2026-03-08"}]`
	_, err := Normalize(raw, fixedCfg(1))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "tasks")
}

func TestNormalize_ModelOrder_MalformedDateFatal(t *testing.T) {
	raw := `[{"week": 1, "date_range": "next monday-ish", "tasks": ["Excavation"]}]`
	_, err := Normalize(raw, modelCfg())

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestNormalize_ModelOrder_EndBeforeStartFatal(t *testing.T) {
	raw := `[{"week": 1, "start_date": "2026-03-08", "end_date": "2026-03-02", "tasks": ["Excavation"]}]`
	_, err := Normalize(raw, modelCfg())

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestNormalize_EmptyArrayFatal(t *testing.T) {
	_, err := Normalize("[]", fixedCfg(3))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestBuildPrompt_ContainsParamsAndFormat(t *testing.T) {
	p := domain.ProjectParams{
		Name:          "Maple Street Duplex",
		Location:      "Portland, OR",
		Type:          domain.TypeRenovation,
		SquareFootage: 1800,
		Stories:       2,
		Weeks:         8,
		StartDate:     testStart,
	}

	prompt := BuildPrompt(p, false)
	assert.Contains(t, prompt, "Maple Street Duplex")
	assert.Contains(t, prompt, "Portland, OR")
	assert.Contains(t, prompt, "1800 square feet")
	assert.Contains(t, prompt, "exactly 8 weeks")
	assert.Contains(t, prompt, "2026-03-02")
	assert.Contains(t, prompt, "ONLY the JSON array")
	assert.NotContains(t, prompt, "pre-construction")
}

func TestBuildPrompt_PreconToggle(t *testing.T) {
	p := domain.ProjectParams{Name: "x", Type: domain.TypeResidential, Weeks: 4, StartDate: testStart}
	prompt := BuildPrompt(p, true)
	assert.Contains(t, prompt, "pre-construction phase")
}
