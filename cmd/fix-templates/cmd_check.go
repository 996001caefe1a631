package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report files that still need fixing",
	Long:  `Scan the target files and report escaped sequences without writing anything.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	ctx.Check()
	return nil
}
