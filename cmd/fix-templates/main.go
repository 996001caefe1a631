package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fix-templates/internal/cli"
	"github.com/zoro11031/fix-templates/pkg/version"
)

var (
	configPath string
	baseDir    string
	noColor        bool
	nonInteractive bool
	confirm        bool
)

var rootCmd = &cobra.Command{
	Use:   "fix-templates",
	Short: "Repair escaped backticks and dollar signs in template literals",
	Long: `Rewrite a fixed list of source files in place, replacing escaped
backticks (\` + "`" + `) with ` + "`" + ` and escaped dollar signs (\\$) with $.

The file list comes from TARGET_FILES in the config file, or the built-in
default list when unset. Each file is processed independently; a failure on
one file is reported and the remaining files are still patched.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true, // Setup errors are not usage errors
	SilenceErrors: true, // main prints them
	RunE:          runFix,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./.fix-templates.conf)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "Directory relative target paths are resolved against (overrides BASE_DIR)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; prompts take their default answer")
	rootCmd.Flags().BoolVar(&confirm, "confirm", false, "Ask for confirmation before rewriting files")

	rootCmd.AddCommand(versionCmd)
}

func newRunContext() (*cli.RunContext, error) {
	ctx, err := cli.NewRunContext(cli.Options{
		ConfigPath:     configPath,
		BaseDir:        baseDir,
		NoColor:        noColor,
		NonInteractive: nonInteractive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return ctx, nil
}

// runFix always exits 0 once the batch has run; per-file errors are only printed.
func runFix(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	_, err = ctx.Fix(confirm)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
