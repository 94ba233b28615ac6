package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/llm"
	"github.com/alexanderramin/groundwork/internal/webhook"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check endpoint, webhook, and history configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			llmCfg := llm.LoadConfig()
			hookCfg := webhook.LoadConfig()

			var b strings.Builder

			b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("ENDPOINT"), llmCfg.Endpoint))
			b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("MODEL   "), llmCfg.Model))

			if llmCfg.APIKey == "" {
				b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("API KEY "), formatter.StyleRed.Render("✗ not set")))
			} else {
				b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("API KEY "), formatter.StyleGreen.Render("✓ set")))
			}

			if app.LLM != nil && app.LLM.Available(context.Background()) {
				b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("REACHABLE"), formatter.StyleGreen.Render("✓ yes")))
			} else {
				b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("REACHABLE"), formatter.StyleRed.Render("✗ no")))
			}

			if hookCfg.URL == "" {
				b.WriteString(fmt.Sprintf("%s  %s", formatter.Dim("WEBHOOK "), formatter.Dim("not configured")))
			} else {
				b.WriteString(fmt.Sprintf("%s  %s", formatter.Dim("WEBHOOK "), hookCfg.URL))
			}

			cmd.Println(formatter.RenderBox("Status", b.String()))
			return nil
		},
	}
}
