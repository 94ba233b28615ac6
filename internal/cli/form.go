package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func groundworkHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

const formDateLayout = "2006-01-02"

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateWeeks(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < domain.MinWeeks || n > domain.MaxWeeks {
		return fmt.Errorf("enter a number between %d and %d", domain.MinWeeks, domain.MaxWeeks)
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(formDateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// paramsFormInput holds the raw string values bound to the generate form.
type paramsFormInput struct {
	Name     string
	Location string
	Type     string
	Sqft     string
	Stories  string
	Weeks    string
	Start    string
	Precon   bool
}

// newParamsForm builds the interactive project parameter form. Fields that
// already carry a flag value keep it as the initial input.
func newParamsForm(in *paramsFormInput) *huh.Form {
	typeOptions := []huh.Option[string]{
		huh.NewOption(domain.TypeResidential.DisplayName(), string(domain.TypeResidential)),
		huh.NewOption(domain.TypeRenovation.DisplayName(), string(domain.TypeRenovation)),
		huh.NewOption(domain.TypeCommercial.DisplayName(), string(domain.TypeCommercial)),
		huh.NewOption(domain.TypeAddition.DisplayName(), string(domain.TypeAddition)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("Maple Street Duplex").
				Value(&in.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Location").
				Placeholder("Portland, OR").
				Value(&in.Location).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Project Type").
				Options(typeOptions...).
				Value(&in.Type),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Square Footage").
				Placeholder("2400").
				Value(&in.Sqft).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Stories").
				Placeholder("2").
				Value(&in.Stories).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Duration (weeks)").
				Placeholder("12").
				Value(&in.Weeks).
				Validate(validateWeeks),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Placeholder(time.Now().Format(formDateLayout)).
				Value(&in.Start).
				Validate(validateDate),
			huh.NewConfirm().
				Title("Include pre-construction phase?").
				Description("Permits, site survey, utility locates before ground work.").
				Value(&in.Precon),
		),
	).WithTheme(groundworkHuhTheme()).WithShowHelp(false)
}

// params parses the collected strings into validated ProjectParams.
func (in *paramsFormInput) params() (domain.ProjectParams, error) {
	var p domain.ProjectParams
	p.Name = strings.TrimSpace(in.Name)
	p.Location = strings.TrimSpace(in.Location)
	p.Type = domain.ProjectType(strings.TrimSpace(strings.ToLower(in.Type)))

	var err error
	if p.SquareFootage, err = strconv.Atoi(strings.TrimSpace(in.Sqft)); err != nil {
		return p, fmt.Errorf("square footage: %w", err)
	}
	if p.Stories, err = strconv.Atoi(strings.TrimSpace(in.Stories)); err != nil {
		return p, fmt.Errorf("stories: %w", err)
	}
	if p.Weeks, err = strconv.Atoi(strings.TrimSpace(in.Weeks)); err != nil {
		return p, fmt.Errorf("weeks: %w", err)
	}
	if p.StartDate, err = time.Parse(formDateLayout, strings.TrimSpace(in.Start)); err != nil {
		return p, fmt.Errorf("start date: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
