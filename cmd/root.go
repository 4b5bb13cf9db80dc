package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yayi",
	Short: "Are you repressed? A tongue-in-cheek terminal questionnaire",
	Long: "yayi asks a short or an SCL-90 style questionnaire, scores how repressed you are\n" +
		"across a handful of dimensions, and has an LLM roast the result.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite file for the LLM event log (overrides YAYI_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON question catalog (default: built-in)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
