package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCodesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List supported workout codes and their values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, info := range app.service.Codes() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", info.Code, strings.Join(info.Params, " "))
			}

			return nil
		},
	}
}
