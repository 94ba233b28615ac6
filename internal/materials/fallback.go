package materials

import (
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// keywordGroup maps task keywords to a fixed materials list. Groups are
// checked in declaration order; the first group with a matching keyword
// wins.
type keywordGroup struct {
	keywords  []string
	materials []string
}

var fallbackGroups = []keywordGroup{
	{
		keywords:  []string{"excavat", "grading", "grade", "site prep", "clearing"},
		materials: []string{"Excavator rental", "Dump fees", "Safety fencing"},
	},
	{
		keywords:  []string{"foundation", "slab", "concrete", "footing"},
		materials: []string{"Concrete", "Rebar", "Vapor barrier", "Formwork"},
	},
	{
		keywords:  []string{"framing", "frame"},
		materials: []string{"Lumber", "Joist hangers", "Nails"},
	},
	{
		keywords:  []string{"roof", "shingle"},
		materials: []string{"Shingles", "Roofing felt", "Flashing", "Drip edge"},
	},
	{
		keywords:  []string{"window", "door"},
		materials: []string{"Window/door units", "Shims", "Expanding foam", "Flashing tape"},
	},
	{
		keywords:  []string{"plumbing", "hvac", "electrical", "wiring", "rough-in", "rough in"},
		materials: []string{"Rough-in fixtures", "Conduit and pipe", "Wire and duct"},
	},
	{
		keywords:  []string{"drywall", "sheetrock"},
		materials: []string{"Drywall sheets", "Joint compound", "Drywall tape"},
	},
	{
		keywords:  []string{"tile", "flooring", "floor"},
		materials: []string{"Tile/wood/laminate", "Mortar and underlayment", "Trim"},
	},
	{
		keywords:  []string{"paint", "priming"},
		materials: []string{"Primer", "Paint", "Brushes and rollers"},
	},
	{
		keywords:  []string{"cabinet", "counter"},
		materials: []string{"Cabinets", "Countertops", "Hardware"},
	},
	{
		keywords:  []string{"fixture", "finish", "trim-out", "punch list"},
		materials: []string{"Lighting fixtures", "Plumbing trim", "Switch plates"},
	},
}

// catchAll is the terminal group: any task that matches nothing above still
// gets a non-empty materials list.
var catchAll = []string{"General building materials"}

// ClassifyTask returns the materials list for a single task string using
// keyword matching on the lower-cased task. Total: every non-empty task
// yields a non-empty list.
func ClassifyTask(task string) []string {
	lowered := strings.ToLower(task)
	for _, g := range fallbackGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lowered, kw) {
				return append([]string(nil), g.materials...)
			}
		}
	}
	return append([]string(nil), catchAll...)
}

// Classify builds a full materials table deterministically, one entry per
// task, preserving input order. Used when the model-based materials call
// fails to parse or returns nothing usable, so the materials preview is
// never empty regardless of endpoint availability.
func Classify(tasks []string) []domain.MaterialsEntry {
	entries := make([]domain.MaterialsEntry, 0, len(tasks))
	for _, task := range tasks {
		entries = append(entries, domain.MaterialsEntry{
			Task:      task,
			Materials: ClassifyTask(task),
		})
	}
	return entries
}
