package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const disclaimer = "This schedule and estimate were generated with the help of a language model " +
	"and are planning aids only. Actual durations, sequencing, and costs depend on site " +
	"conditions, permitting, weather, and contractor availability. Review with a licensed " +
	"professional before committing to dates or budgets."

// PDFOptions controls the optional parts of the PDF rendering.
type PDFOptions struct {
	Title string
	Cost  *domain.CostEstimate // nil omits the cost line
}

// WritePDF renders the schedule table as a PDF document: title, optional
// cost line, one table row per week, and a disclaimer paragraph.
func WritePDF(w io.Writer, s *domain.Schedule, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, opts.Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	if opts.Cost != nil {
		pdf.SetFont("Helvetica", "", 11)
		line := fmt.Sprintf("Estimated cost: $%s - $%s", formatDollars(opts.Cost.Low), formatDollars(opts.Cost.High))
		pdf.CellFormat(0, 7, line, "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}

	// Table header.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(15, 7, "Week", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Dates", "1", 0, "C", true, 0, "")
	pdf.CellFormat(120, 7, "Tasks", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, week := range s.Weeks {
		tasks := week.TaskSummary()
		if tasks == "" {
			tasks = "-"
		}
		// MultiCell for tasks so long lists wrap; measure the row height
		// first so the fixed-width cells match.
		lines := pdf.SplitText(tasks, 118)
		rowH := float64(len(lines)) * 5
		if rowH < 7 {
			rowH = 7
		}

		lineH := rowH / float64(len(lines))

		x, y := pdf.GetXY()
		pdf.CellFormat(15, rowH, fmt.Sprintf("%d", week.Week), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, rowH, week.DateRange(), "1", 0, "C", false, 0, "")
		pdf.MultiCell(120, lineH, tasks, "1", "L", false)
		pdf.SetXY(x, y+rowH)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 4, disclaimer, "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

// formatDollars renders n with thousands separators.
func formatDollars(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
