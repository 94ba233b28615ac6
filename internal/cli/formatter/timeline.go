package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
)

const (
	timelineBlock = "█"
	timelineTrack = "·"
)

// FormatTimeline renders a Gantt-style weekly bar chart. A week whose dates
// cannot be placed on the axis skips the whole chart with a warning; the
// table and exports are unaffected.
func FormatTimeline(s *domain.Schedule, width int) (string, []domain.ValidationWarning) {
	if width < 10 {
		width = 10
	}

	var warnings []domain.ValidationWarning
	for _, w := range s.Weeks {
		if w.StartDate.IsZero() || w.EndDate.IsZero() || w.EndDate.Before(w.StartDate) {
			warnings = append(warnings, domain.ValidationWarning{
				Stage:   "timeline",
				Message: fmt.Sprintf("week %d has unusable dates, chart skipped", w.Week),
			})
		}
	}
	if len(warnings) > 0 || len(s.Weeks) == 0 {
		return "", warnings
	}
	valid := s.Weeks

	axisStart := valid[0].StartDate
	axisEnd := valid[0].EndDate
	for _, w := range valid[1:] {
		if w.StartDate.Before(axisStart) {
			axisStart = w.StartDate
		}
		if w.EndDate.After(axisEnd) {
			axisEnd = w.EndDate
		}
	}
	span := axisEnd.Sub(axisStart) + 24*time.Hour

	var b strings.Builder
	for i, w := range valid {
		if i > 0 {
			b.WriteString("\n")
		}
		from := scale(w.StartDate.Sub(axisStart), span, width)
		to := scale(w.EndDate.Sub(axisStart)+24*time.Hour, span, width)
		if to <= from {
			to = from + 1
		}

		bar := strings.Repeat(timelineTrack, from) +
			StyleGreen.Render(strings.Repeat(timelineBlock, to-from)) +
			strings.Repeat(timelineTrack, width-to)

		label := w.TaskSummary()
		if label == "" {
			label = "--"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s",
			StyleBlue.Render(fmt.Sprintf("W%-2d", w.Week)),
			bar,
			Dim(truncate(label, 40))))
	}

	footer := fmt.Sprintf("\n%s %s",
		Dim(axisStart.Format("Jan 2")),
		Dim(strings.Repeat(" ", width-len(axisStart.Format("Jan 2")))+axisEnd.Format("Jan 2, 2006")))
	b.WriteString(footer)

	return RenderBox("Timeline", b.String()), warnings
}

func scale(offset, span time.Duration, width int) int {
	if span <= 0 {
		return 0
	}
	n := int(float64(offset) / float64(span) * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
