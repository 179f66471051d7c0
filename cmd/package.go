package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/fitcalc/internal/application"
	"github.com/bnema/fitcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newPackageCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Manage stored sensor packages",
	}

	cmd.AddCommand(
		newPackageAddCmd(app),
		newPackageListCmd(app),
		newPackageRemoveCmd(app),
	)

	return cmd
}

func newPackageAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <CODE> <value>...",
		Short: "Store a sensor package for later reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}

			pkg, err := app.service.AddPackage(cmd.Context(), application.AddPackageCommand{
				Code:   domain.NormalizeCode(args[0]),
				Values: values,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added package %s (%s) to %s\n", pkg.ID, pkg.Code, app.packagesPath)
			return err
		},
	}
}

func newPackageListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			packages, err := app.service.ListPackages(cmd.Context())
			if err != nil {
				return err
			}

			if format, _ := parseOutputFormat(app.outputFormat); format == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(packages)
			}

			if len(packages) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no packages stored")
				return err
			}

			for _, pkg := range packages {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", pkg.ID, pkg.Code, formatValues(pkg.Values))
			}

			return nil
		},
	}
}

func newPackageRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a stored package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.PackageID(strings.TrimSpace(args[0]))
			if err := app.service.RemovePackage(cmd.Context(), application.RemovePackageCommand{ID: id}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed package %s\n", id)
			return err
		},
	}
}

func formatValues(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}

	return strings.Join(parts, " ")
}
