package domain

// ValidationWarning flags a non-fatal problem found after parsing, such as a
// week whose dates cannot be rendered on the timeline. The affected element
// is skipped but the table and exports still render.
type ValidationWarning struct {
	Stage   string // e.g. "timeline"
	Message string
}

func (w ValidationWarning) String() string {
	return w.Stage + ": " + w.Message
}
