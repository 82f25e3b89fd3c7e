package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hearthside/yearbook"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Generate the AI year in review from all recorded memories",
		Run:   runReview,
	}

	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		exitErr("setup", err)
	}

	result, err := app.GenerateReview(cmd.Context())
	if err != nil {
		if errors.Is(err, yearbook.ErrNotEnoughMemories) {
			exitErr("review", fmt.Errorf("add at least %d memories first (currently %d)", app.MinMemories(), app.Count()))
		}
		// Network failures and malformed responses collapse into the same
		// generic notice; the distinction only reaches the log.
		fmt.Fprintln(os.Stderr, "Failed to generate review. Please check your AI configuration.")
		os.Exit(1)
	}

	fmt.Println(renderResult(result))
}
