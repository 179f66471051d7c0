package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	summaryadapter "github.com/bnema/fitcalc/internal/adapters/render/summary"
	"github.com/bnema/fitcalc/internal/application"
	"github.com/spf13/cobra"
)

type outputFormat string

const (
	outputPlain outputFormat = "plain"
	outputJSON  outputFormat = "json"
	outputTable outputFormat = "table"
)

func parseOutputFormat(raw string) (outputFormat, error) {
	switch format := outputFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case outputPlain, outputJSON, outputTable:
		return format, nil
	case "":
		return outputPlain, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want plain, json or table)", raw)
	}
}

// writeReport prints results to stdout. In plain mode skipped packages are
// reported on stderr so stdout keeps one summary line per package.
func writeReport(cmd *cobra.Command, app *app, report application.Report) error {
	format, err := parseOutputFormat(app.outputFormat)
	if err != nil {
		return err
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case outputTable:
		rendered, err := app.reportRenderer(report, summaryadapter.RenderOptions{BarWidth: app.barWidth})
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
			return err
		}
	default:
		for _, result := range report.Results {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Message); err != nil {
				return err
			}
		}
		for _, failure := range report.Failures {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped package %s: %s\n", failureLabel(failure), failure.Reason)
		}
	}

	if len(report.Failures) > 0 {
		return fmt.Errorf("%d of %d packages failed", len(report.Failures), len(report.Failures)+len(report.Results))
	}

	return nil
}

func failureLabel(failure application.Failure) string {
	if failure.Package.ID == "" {
		return string(failure.Package.Code)
	}

	return string(failure.Package.ID)
}
