package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded memories in insertion order",
		Run:   runList,
	}

	cmd.Flags().String("format", "text", "Output format: text or json")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	format, _ := cmd.Flags().GetString("format")

	app, err := newApp()
	if err != nil {
		exitErr("setup", err)
	}

	records := app.Memories()
	if format == "json" {
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			exitErr("encode memories", err)
		}
		fmt.Println(string(b))
		return
	}

	if len(records) == 0 {
		fmt.Println(faintStyle.Render("No memories recorded yet. Add one with 'yearbook add'."))
		return
	}
	for _, r := range records {
		fmt.Println(renderMemory(r))
	}
	fmt.Println(faintStyle.Render(fmt.Sprintf("%d moments saved", len(records))))
}
