package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/groundwork/internal/domain"
)

const dateLayout = "2006-01-02"

// WriteCSV writes the schedule as CSV: a header row, then one row per week
// with columns week,start_date,end_date,tasks. Tasks are joined with "; ".
func WriteCSV(w io.Writer, s *domain.Schedule) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"week", "start_date", "end_date", "tasks"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, week := range s.Weeks {
		row := []string{
			strconv.Itoa(week.Week),
			week.StartDate.Format(dateLayout),
			week.EndDate.Format(dateLayout),
			week.TaskSummary(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for week %d: %w", week.Week, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
