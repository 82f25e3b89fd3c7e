package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthside/yearbook/memory"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the fixed memory categories",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range memory.Categories() {
				fmt.Println(string(c))
			}
		},
	}

	RootCmd.AddCommand(cmd)
}
