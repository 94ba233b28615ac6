package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// FormatProjectSummary renders the submitted parameters as a one-box recap.
func FormatProjectSummary(p domain.ProjectParams) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n")
	b.WriteString(TypeBadge(p.Type) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("LOCATION"), StyleFg.Render(p.Location)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SIZE    "), StyleFg.Render(fmt.Sprintf("%d sq ft, %d stories", p.SquareFootage, p.Stories))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START   "), StyleFg.Render(HumanDate(p.StartDate))))
	b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("DURATION"), StyleFg.Render(fmt.Sprintf("%d weeks", p.Weeks))))
	return RenderBox("Project", b.String())
}

// FormatScheduleTable renders the weekly task table.
func FormatScheduleTable(s *domain.Schedule) string {
	headers := []string{"WEEK", "START", "END", "TASKS"}
	rows := make([][]string, 0, len(s.Weeks))

	for _, w := range s.Weeks {
		tasks := w.TaskSummary()
		if tasks == "" {
			tasks = Dim("--")
		}
		rows = append(rows, []string{
			StyleBlue.Render(fmt.Sprintf("%d", w.Week)),
			w.StartDate.Format("2006-01-02"),
			w.EndDate.Format("2006-01-02"),
			tasks,
		})
	}
	return RenderBox("Schedule", RenderTable(headers, rows))
}

// FormatMaterials renders the task→materials table with its source badge.
func FormatMaterials(entries []domain.MaterialsEntry, src domain.MaterialsSource) string {
	if len(entries) == 0 {
		return RenderBox("Materials", Dim("No materials derived."))
	}

	headers := []string{"TASK", "MATERIALS"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			StyleFg.Render(e.Task),
			strings.Join(e.Materials, ", "),
		})
	}

	content := SourceBadge(src) + "\n\n" + RenderTable(headers, rows)
	return RenderBox("Materials", content)
}

// FormatCost renders the rough cost range with the non-binding note.
func FormatCost(c domain.CostEstimate, p domain.ProjectParams) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s – %s\n",
		StyleGreen.Render(FormatDollars(c.Low)),
		StyleGreen.Render(FormatDollars(c.High))))
	b.WriteString(Dim(fmt.Sprintf("%s rate band × %d sq ft × %d stories",
		p.Type.DisplayName(), p.SquareFootage, p.Stories)))
	b.WriteString("\n\n")
	b.WriteString(Dim("Rough planning range only. Not a quote."))
	return RenderBox("Estimated Cost", b.String())
}

// FormatWarnings renders non-fatal warnings collected during rendering.
func FormatWarnings(warnings []domain.ValidationWarning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range warnings {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleYellow.Render("⚠ " + w.String()))
	}
	return b.String()
}

// FormatHistoryList renders saved schedules, most recent first.
func FormatHistoryList(saved []*domain.SavedSchedule) string {
	if len(saved) == 0 {
		return RenderBox("History", Dim("No saved schedules. Generate one, then pass --save."))
	}

	headers := []string{"ID", "NAME", "TYPE", "WEEKS", "SAVED"}
	rows := make([][]string, 0, len(saved))
	for _, s := range saved {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Params.Name),
			TypeBadge(s.Params.Type),
			fmt.Sprintf("%d", s.Params.Weeks),
			Dim(HumanDate(s.CreatedAt)),
		})
	}
	return RenderBox("History", RenderTable(headers, rows))
}
