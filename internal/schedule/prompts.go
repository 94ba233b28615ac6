package schedule

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// BuildPrompt fills the schedule prompt template with the project params.
// The model is told to emit a bare JSON array; the normalizer rejects
// anything else, so the instruction is load-bearing.
func BuildPrompt(p domain.ProjectParams, includePrecon bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a construction schedule broken down by week for a %s project named %q",
		strings.ToLower(p.Type.DisplayName()), p.Name)
	if p.Location != "" {
		fmt.Fprintf(&b, " located in %s", p.Location)
	}
	fmt.Fprintf(&b, ". The building is %d square feet across %d stories and the project lasts exactly %d weeks, starting on %s.\n\n",
		p.SquareFootage, p.Stories, p.Weeks, p.StartDate.Format(dateLayout))

	if includePrecon {
		b.WriteString("Begin with a pre-construction phase (permits, site survey, utility locates) before any ground work.\n\n")
	}

	fmt.Fprintf(&b, `Output the schedule as a JSON array with one entry per week using this format:
[
  {"week": 1, "start_date": "YYYY-MM-DD", "end_date": "YYYY-MM-DD", "tasks": ["Task A", "Task B"]},
  ...
]

Rules:
- Exactly %d entries, week numbers 1 through %d.
- Each week's end_date is six days after its start_date.
- Tasks are short phrases naming concrete construction activities.
- Output ONLY the JSON array. No markdown fences, no commentary.`, p.Weeks, p.Weeks)

	return b.String()
}
