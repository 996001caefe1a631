package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files that would be patched",
	Args:  cobra.NoArgs,
	RunE:  listTargets,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listTargets(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	for _, target := range ctx.Targets() {
		ctx.UI.Print(target)
	}
	return nil
}
