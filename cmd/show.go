package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <workout-id>",
	Short: "Show full details for one workout",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	workouts, _, err := refreshSession(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, w := range workouts {
		if w.ID != id {
			continue
		}
		fmt.Println(w.Title)
		fmt.Printf("  When:         %s, %s\n", w.Date, w.Time)
		fmt.Printf("  Type:         %s\n", w.Type)
		fmt.Printf("  Intensity:    %s\n", w.Intensity)
		if w.Duration != "" {
			fmt.Printf("  Duration:     %s\n", w.Duration)
		}
		fmt.Printf("  Location:     %s\n", w.Location)
		fmt.Printf("  Platforms:    %s\n", strings.Join(w.Platforms, ", "))
		names := make([]string, 0, len(w.Participants))
		for _, p := range w.Participants {
			names = append(names, p.Name)
		}
		fmt.Printf("  Participants: %s\n", strings.Join(names, ", "))
		fmt.Printf("  Notes:        %s\n", w.Description)
		return nil
	}

	fmt.Fprintf(os.Stderr, "No workout with id %q in the current feed.\n", id)
	os.Exit(1)
	return nil
}
