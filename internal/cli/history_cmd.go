package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved schedules",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryExportCmd(app),
		newHistoryRemoveCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved schedules, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.History.List(context.Background())
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatHistoryList(saved))
			return nil
		},
	}
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved schedule in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := resolveSaved(app, args[0])
			if err != nil {
				return err
			}

			printResult(cmd, &service.GenerateResult{
				Params:    saved.Params,
				Schedule:  saved.Schedule,
				Materials: saved.Materials,
				Cost:      saved.Cost,
			})
			return nil
		},
	}
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var csvPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a saved schedule as CSV or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" && pdfPath == "" {
				return fmt.Errorf("pass --csv and/or --pdf")
			}

			saved, err := resolveSaved(app, args[0])
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := writeCSVFile(csvPath, &saved.Schedule); err != nil {
					return err
				}
				cmd.Printf("%s\n", formatter.Dim("CSV written to "+csvPath))
			}
			if pdfPath != "" {
				res := &service.GenerateResult{Params: saved.Params, Schedule: saved.Schedule, Cost: saved.Cost}
				if err := writePDFFile(pdfPath, res); err != nil {
					return err
				}
				cmd.Printf("%s\n", formatter.Dim("PDF written to "+pdfPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the schedule as CSV to this path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the schedule as PDF to this path")

	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a saved schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := resolveSaved(app, args[0])
			if err != nil {
				return err
			}
			if err := app.History.Delete(context.Background(), saved.ID); err != nil {
				return err
			}
			cmd.Printf("%s\n", formatter.Dim("Removed "+saved.ID))
			return nil
		},
	}
}

// resolveSaved accepts a full ID or a unique prefix, matching what the
// history list displays.
func resolveSaved(app *App, ref string) (*domain.SavedSchedule, error) {
	ctx := context.Background()

	if saved, err := app.History.Get(ctx, ref); err == nil {
		return saved, nil
	}

	all, err := app.History.List(ctx)
	if err != nil {
		return nil, err
	}

	var match *domain.SavedSchedule
	for _, s := range all {
		if strings.HasPrefix(s.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("%q matches more than one saved schedule", ref)
			}
			match = s
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no saved schedule matches %q", ref)
	}
	return app.History.Get(ctx, match.ID)
}
