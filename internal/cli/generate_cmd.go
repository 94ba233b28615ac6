package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/cost"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/export"
	"github.com/alexanderramin/groundwork/internal/llm"
	"github.com/alexanderramin/groundwork/internal/schedule"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var in paramsFormInput
	var (
		trustModelWeeks bool
		noInput         bool
		csvPath         string
		pdfPath         string
		send            bool
		save            bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weekly construction schedule",
		Long: "Generate prompts the configured model for a week-by-week schedule,\n" +
			"derives a materials breakdown, and computes a rough cost range.\n" +
			"Missing parameters are collected interactively when stdin is a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			needsForm := in.Name == "" || in.Location == "" || in.Sqft == "" ||
				in.Weeks == "" || in.Start == ""
			if needsForm {
				if noInput || !app.interactive() {
					return fmt.Errorf("missing parameters; pass --name, --location, --sqft, --weeks and --start, or run interactively")
				}
				if err := newParamsForm(&in).Run(); err != nil {
					return fmt.Errorf("collecting parameters: %w", err)
				}
			}

			params, err := in.params()
			if err != nil {
				return err
			}

			cfg := service.PipelineConfig{
				IncludePrecon: in.Precon,
				WeeksSource:   domain.WeeksFixed,
				RateTable:     cost.LoadRateTable(),
			}
			if trustModelWeeks {
				cfg.WeeksSource = domain.WeeksFromModel
			}

			var res *service.GenerateResult
			err = withSpinner(app.interactive(), "Generating schedule...", func() error {
				var genErr error
				res, genErr = app.Generate.Generate(ctx, params, cfg)
				return genErr
			})
			if err != nil {
				return describeGenerateError(err)
			}

			printResult(cmd, res)

			if csvPath != "" {
				if err := writeCSVFile(csvPath, &res.Schedule); err != nil {
					return err
				}
				cmd.Printf("%s\n", formatter.Dim("CSV written to "+csvPath))
			}
			if pdfPath != "" {
				if err := writePDFFile(pdfPath, res); err != nil {
					return err
				}
				cmd.Printf("%s\n", formatter.Dim("PDF written to "+pdfPath))
			}

			if save {
				saved, err := app.History.Save(ctx, res)
				if err != nil {
					return fmt.Errorf("saving to history: %w", err)
				}
				cmd.Printf("%s\n", formatter.Dim("Saved as "+saved.ID))
			}

			if send {
				if app.Webhook == nil {
					return fmt.Errorf("no webhook configured; set GROUNDWORK_WEBHOOK_URL")
				}
				if err := app.Webhook.Send(ctx, res.Params, &res.Schedule); err != nil {
					// One attempt only; the schedule above is still good.
					cmd.PrintErrf("%s\n", formatter.StyleRed.Render("✗ webhook delivery failed: "+err.Error()))
				} else {
					cmd.Printf("%s\n", formatter.StyleGreen.Render("✓ schedule sent to webhook"))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&in.Location, "location", "", "Project location, e.g. \"Portland, OR\"")
	cmd.Flags().StringVar(&in.Type, "type", string(domain.TypeResidential), "Project type: residential, renovation, commercial, addition")
	cmd.Flags().StringVar(&in.Sqft, "sqft", "", "Square footage")
	cmd.Flags().StringVar(&in.Stories, "stories", "1", "Number of stories")
	cmd.Flags().StringVar(&in.Weeks, "weeks", "", fmt.Sprintf("Duration in weeks (%d-%d)", domain.MinWeeks, domain.MaxWeeks))
	cmd.Flags().StringVar(&in.Start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&in.Precon, "precon", false, "Include a pre-construction phase")
	cmd.Flags().BoolVar(&trustModelWeeks, "model-weeks", false, "Take week rows as the model orders them instead of the requested 1..N axis")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; fail if parameters are missing")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the schedule as CSV to this path")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the schedule as PDF to this path")
	cmd.Flags().BoolVar(&send, "send", false, "POST the schedule to the configured webhook")
	cmd.Flags().BoolVar(&save, "save", false, "Save the schedule to the local history store")

	return cmd
}

func printResult(cmd *cobra.Command, res *service.GenerateResult) {
	cmd.Println(formatter.FormatProjectSummary(res.Params))
	cmd.Println(formatter.FormatScheduleTable(&res.Schedule))

	timeline, warnings := formatter.FormatTimeline(&res.Schedule, 40)
	if timeline != "" {
		cmd.Println(timeline)
	}
	warnings = append(res.Warnings, warnings...)
	if w := formatter.FormatWarnings(warnings); w != "" {
		cmd.Println(w)
	}

	cmd.Println(formatter.FormatMaterials(res.Materials, res.MaterialsSource))
	cmd.Println(formatter.FormatCost(res.Cost, res.Params))
}

// describeGenerateError attaches a recovery hint to the common failure modes.
func describeGenerateError(err error) error {
	var parseErr *schedule.ParseError
	switch {
	case errors.As(err, &parseErr):
		return fmt.Errorf("%w\nThe model response was discarded; run generate again", err)
	case errors.Is(err, llm.ErrAuth):
		return fmt.Errorf("%w\nSet OPENAI_API_KEY or GROUNDWORK_LLM_API_KEY", err)
	case errors.Is(err, llm.ErrUnavailable), errors.Is(err, llm.ErrTimeout):
		return fmt.Errorf("%w\nCheck GROUNDWORK_LLM_ENDPOINT and your network, then retry", err)
	default:
		return err
	}
}

func writeCSVFile(path string, s *domain.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := export.WriteCSV(f, s); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return f.Close()
}

func writePDFFile(path string, res *service.GenerateResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	opts := export.PDFOptions{
		Title: res.Params.Name + " - Construction Schedule",
		Cost:  &res.Cost,
	}
	if err := export.WritePDF(f, &res.Schedule, opts); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return f.Close()
}
