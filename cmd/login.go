package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitfeed/internal/gcal"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Google Calendar",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Google == nil || cfg.Google.ClientID == "" {
		fmt.Fprintln(os.Stderr, "No Google client configured. Add a google section with client_id and client_secret to ~/.fitfeed/config.yaml.")
		os.Exit(1)
	}

	if _, err := gcal.GetHTTPClient(context.Background(), cfg.Google.ClientID, cfg.Google.ClientSecret); err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Signed in to Google Calendar.")
	return nil
}
