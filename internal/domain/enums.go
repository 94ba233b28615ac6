package domain

// ProjectType classifies the kind of construction project. It selects the
// cost rate band and flavors the schedule prompt.
type ProjectType string

const (
	TypeResidential ProjectType = "residential"
	TypeRenovation  ProjectType = "renovation"
	TypeCommercial  ProjectType = "commercial"
	TypeAddition    ProjectType = "addition"
)

// ValidProjectTypes is the canonical set of accepted project type strings.
var ValidProjectTypes = map[string]bool{
	"residential": true, "renovation": true,
	"commercial": true, "addition": true,
}

// DisplayName returns the human-readable label for a project type.
func (t ProjectType) DisplayName() string {
	switch t {
	case TypeResidential:
		return "Residential New Build"
	case TypeRenovation:
		return "Renovation"
	case TypeCommercial:
		return "Commercial"
	case TypeAddition:
		return "Addition"
	default:
		return string(t)
	}
}

// WeeksSource selects how the normalizer derives the week axis.
type WeeksSource string

const (
	// WeeksFromModel takes one row per response element in input order.
	WeeksFromModel WeeksSource = "model"

	// WeeksFixed iterates 1..N from the requested duration and looks up each
	// week in the response, tolerating omitted weeks. Dates are always
	// computed locally from the start date.
	WeeksFixed WeeksSource = "fixed"
)

// MaterialsSource records where a materials table came from.
type MaterialsSource string

const (
	MaterialsFromModel    MaterialsSource = "llm"
	MaterialsFromFallback MaterialsSource = "deterministic"
)
