package materials

import (
	"fmt"
	"strings"
)

// BuildPrompt fills the materials prompt template with the flattened task
// list from a normalized schedule.
func BuildPrompt(tasks []string) string {
	var b strings.Builder

	b.WriteString("For each construction task below, list the materials needed to complete it.\n\nTasks:\n")
	for _, task := range tasks {
		fmt.Fprintf(&b, "- %s\n", task)
	}

	b.WriteString(`
Output a JSON array with one entry per task, in the same order:
[
  {"task": "<task exactly as given>", "materials": ["Material A", "Material B"]},
  ...
]

Rules:
- Repeat each task string exactly as given, including duplicates.
- Two to five materials per task, short noun phrases.
- Output ONLY the JSON array. No markdown fences, no commentary.`)

	return b.String()
}
