package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lessonloop",
	Short: "Draft, review and refine lesson content with an LLM",
	Long: "A generator agent drafts an explanation and quiz for a grade and topic,\n" +
		"a reviewer agent checks it, and one refinement pass applies the feedback.\n" +
		"Without an API key it runs on canned offline replies.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. Cancelling ctx stops an in-flight run.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Path to a dotenv file (default .env)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the JSON log file (overrides LESSONLOOP_LOG_FILE)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
