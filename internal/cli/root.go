package cli

import (
	"github.com/alexanderramin/groundwork/internal/llm"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/alexanderramin/groundwork/internal/webhook"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to the services used by CLI commands.
type App struct {
	Generate service.GenerateService
	History  service.HistoryService
	LLM      llm.Client
	Webhook  webhook.Client // nil when no webhook URL is configured

	// IsInteractive reports whether stdin is a terminal; it gates the
	// parameter form and the spinner.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "groundwork" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "groundwork",
		Short: "AI-assisted construction schedule generator",
		Long: "Groundwork turns project parameters into a week-by-week construction\n" +
			"schedule with a materials breakdown and a rough cost range.",
	}

	// Accept the spelled-out flag variants people reach for first.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "square-footage":
			name = "sqft"
		case "start-date":
			name = "start"
		}
		return pflag.NormalizedName(name)
	})

	root.AddCommand(
		newGenerateCmd(app),
		newHistoryCmd(app),
		newStatusCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
