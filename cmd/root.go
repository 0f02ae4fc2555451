package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appLog "fitfeed/internal/log"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "fitfeed",
	Short: "fitfeed – a workout feed built from your calendar",
	Long: `fitfeed turns your calendar into a workout feed: it fetches upcoming
events, keeps the ones that look like workouts, and presents them with
type, intensity and duration. Configuration lives in ~/.fitfeed/config.yaml.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			appLog.SetLevel(appLog.LevelDebug)
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging (per-event classification trace)")
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(loginCmd)
}
