package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/fitcalc/internal/application"
	"github.com/bnema/fitcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newProcessCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "process <CODE> <value>...",
		Short:   "Compute the summary of a single sensor package",
		Example: "  fitcalc process RUN 15000 1 75\n  fitcalc process SWM 720 1 80 25 40",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}

			result, err := app.service.Process(cmd.Context(), application.ProcessCommand{
				Code:   domain.NormalizeCode(args[0]),
				Values: values,
			})
			if err != nil {
				return err
			}

			return writeReport(cmd, app, application.Report{Results: []application.Result{result}})
		},
	}
}

func newDemoCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Process the built-in sample packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.service.ProcessAll(cmd.Context(), application.DemoPackages())
			if err != nil {
				return err
			}

			return writeReport(cmd, app, report)
		},
	}
}

func newReportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Process every stored package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.service.Report(cmd.Context())
			if err != nil {
				return err
			}

			return writeReport(cmd, app, report)
		},
	}
}

func parseValues(raw []string) ([]float64, error) {
	values := make([]float64, 0, len(raw))
	for _, arg := range raw {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", arg, err)
		}
		values = append(values, value)
	}

	return values, nil
}
