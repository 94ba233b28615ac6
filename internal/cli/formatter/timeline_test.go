package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeline_OneBarPerWeek(t *testing.T) {
	out, warnings := FormatTimeline(sampleSchedule(), 40)

	assert.Empty(t, warnings)
	assert.Contains(t, out, "W1")
	assert.Contains(t, out, "W2")
	assert.Contains(t, out, "Mar 2")
	assert.Contains(t, out, "Mar 15, 2026")
}

func TestFormatTimeline_BadDatesSkipWholeChart(t *testing.T) {
	s := sampleSchedule()
	s.Weeks = append(s.Weeks, domain.WeekEntry{Week: 3, Tasks: []string{"Roofing"}})

	out, warnings := FormatTimeline(s, 40)

	assert.Empty(t, out)
	require.Len(t, warnings, 1)
	assert.Equal(t, "timeline", warnings[0].Stage)
	assert.Contains(t, warnings[0].Message, "week 3")
	assert.Contains(t, warnings[0].Message, "chart skipped")
}

func TestFormatTimeline_EndBeforeStartWarns(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s := sampleSchedule()
	s.Weeks[1].EndDate = start.AddDate(0, 0, -1)

	out, warnings := FormatTimeline(s, 40)
	assert.Empty(t, out)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "week 2")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"WEEK", "TASKS"},
		[][]string{{"1", "Excavation"}, {"12", "Framing"}},
	)
	assert.Contains(t, out, "WEEK")
	assert.Contains(t, out, "Excavation")
	assert.Contains(t, out, "─")
}
