package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSchedule() *domain.Schedule {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Schedule{Weeks: []domain.WeekEntry{
		{Week: 1, StartDate: start, EndDate: start.AddDate(0, 0, 6), Tasks: []string{"Excavation", "Grading"}},
		{Week: 2, StartDate: start.AddDate(0, 0, 7), EndDate: start.AddDate(0, 0, 13), Tasks: []string{"Pour foundation"}},
		{Week: 3, StartDate: start.AddDate(0, 0, 14), EndDate: start.AddDate(0, 0, 20)},
	}}
}

func TestWriteCSV_RowPerWeek(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSchedule()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 weeks

	assert.Equal(t, []string{"week", "start_date", "end_date", "tasks"}, records[0])
	assert.Equal(t, []string{"1", "2026-03-02", "2026-03-08", "Excavation; Grading"}, records[1])
	assert.Equal(t, []string{"2", "2026-03-09", "2026-03-15", "Pour foundation"}, records[2])
	// Empty week still gets a row.
	assert.Equal(t, []string{"3", "2026-03-16", "2026-03-22", ""}, records[3])
}

func TestWriteCSV_TasksWithCommasStayOneColumn(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s := &domain.Schedule{Weeks: []domain.WeekEntry{
		{Week: 1, StartDate: start, EndDate: start.AddDate(0, 0, 6), Tasks: []string{"Rough-in: plumbing, HVAC"}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records[1], 4)
	assert.Equal(t, "Rough-in: plumbing, HVAC", records[1][3])
}

func TestWritePDF_ProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	cost := &domain.CostEstimate{Low: 160000, High: 300000}
	err := WritePDF(&buf, sampleSchedule(), PDFOptions{Title: "Maple Street Duplex Schedule", Cost: cost})
	require.NoError(t, err)

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should start with a PDF header")
	assert.Greater(t, len(out), 1000)
}

func TestWritePDF_NoCostLine(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, sampleSchedule(), PDFOptions{Title: "Schedule"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestFormatDollars(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		160000:  "160,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatDollars(in), "input %d", in)
	}
}
