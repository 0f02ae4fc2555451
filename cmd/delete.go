package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitfeed/internal/feed"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <workout-id>",
	Short: "Delete a workout's calendar event and remove it from the feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	ctx := context.Background()

	_, session, err := refreshSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := session.Delete(ctx, id); err != nil {
		if errors.Is(err, feed.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No workout with id %q in the current feed.\n", id)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Delete failed: %v\n", err)
		fmt.Fprintln(os.Stderr, "The workout was kept in the feed because the calendar event still exists.")
		os.Exit(2)
	}

	fmt.Printf("Deleted workout %s and its calendar event.\n", id)
	return nil
}
