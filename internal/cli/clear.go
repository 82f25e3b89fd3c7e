package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded memories and the persistent slot",
		Long:  "Delete all recorded memories and the persistent slot. Irreversible; asks for confirmation unless --yes is given.",
		Run:   runClear,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")

	app, err := newApp()
	if err != nil {
		exitErr("setup", err)
	}

	count := app.Count()
	if !yes {
		fmt.Printf("Clear all %d memories and start over? This cannot be undone. [y/N] ", count)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := app.Reset(); err != nil {
		exitErr("clear", err)
	}
	fmt.Printf("Cleared %d memories.\n", count)
}
