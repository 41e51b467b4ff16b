package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pwmeter",
	Short: "Password strength checker",
	Long: "pwmeter classifies passwords as Weak, Medium or Strong with a trained model.\n" +
		"Run without a subcommand to open the interactive checker.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PWMETER_CONFIG env var)")
	rootCmd.PersistentFlags().String("model", "", "Path to model artifact (overrides PWMETER_MODEL env var and config)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(versionCmd)
}
