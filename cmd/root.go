package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitcalc",
		Short:         "Fitness tracker calculator: distance, speed and calories from sensor packages",
		Long:          "fitcalc turns raw fitness-tracker packages (a workout code such as RUN, WLK or SWM followed by its sensor values) into distance, mean speed and calories burned, and prints a one-line summary per package.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVarP(&app.outputFormat, "output", "o", app.outputFormat, "output format: plain, json or table")

	rootCmd.AddCommand(
		newVersionCmd(),
		newProcessCmd(app),
		newDemoCmd(app),
		newReportCmd(app),
		newPackageCmd(app),
		newCodesCmd(app),
	)

	return rootCmd
}
