package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "describe <image>",
		Short: "Describe a photo in one sentence for the photobook",
		Args:  cobra.ExactArgs(1),
		Run:   runDescribe,
	}

	RootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) {
	path := args[0]
	mimeType := mimeTypeFor(path)
	if mimeType == "" {
		exitErr("describe", fmt.Errorf("unsupported photo format (expected jpg, jpeg or png)"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr("read photo", err)
	}

	app, err := newApp()
	if err != nil {
		exitErr("setup", err)
	}

	sentence, err := app.DescribeImage(cmd.Context(), data, mimeType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to describe photo. Please check your AI configuration.")
		os.Exit(1)
	}
	fmt.Println(sentence)
}
