package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fix-templates/internal/common"
	"github.com/zoro11031/fix-templates/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration file contents",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the config file.

Keys:
  TARGET_FILES  - Comma-separated list of files to patch
  BASE_DIR      - Directory relative target paths are resolved against`,
	Args: cobra.ExactArgs(2),
	RunE: setConfig,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  getConfig,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a configuration value so its default applies",
	Args:  cobra.ExactArgs(1),
	RunE:  unsetConfig,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())

	all := ctx.Config.GetAll()
	if len(all) == 0 {
		ctx.UI.Info("No values set, using defaults")
		return nil
	}

	keys := make([]string, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ctx.UI.Separator()
	for _, key := range keys {
		ctx.UI.Printf("%s=%s", key, all[key])
	}
	ctx.UI.Separator()
	return nil
}

func parseConfigKey(arg string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(arg))
	if !config.IsKnownKey(key) {
		return "", fmt.Errorf("unknown config key: %s (known: %s)", key, strings.Join(config.KnownKeys, ", "))
	}
	return key, nil
}

func getConfig(cmd *cobra.Command, args []string) error {
	key, err := parseConfigKey(args[0])
	if err != nil {
		return err
	}

	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	if !ctx.Config.Exists(key) {
		return fmt.Errorf("%s is not set in %s", key, ctx.Config.FilePath())
	}
	value, err := ctx.Config.Get(key)
	if err != nil {
		return err
	}
	ctx.UI.Print(value)
	return nil
}

func unsetConfig(cmd *cobra.Command, args []string) error {
	key, err := parseConfigKey(args[0])
	if err != nil {
		return err
	}

	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	if !ctx.Config.Exists(key) {
		ctx.UI.Warningf("%s is not set, nothing to remove", key)
		return nil
	}
	if err := ctx.Config.Delete(key); err != nil {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}
	ctx.UI.Successf("%s removed from %s", key, ctx.Config.FilePath())
	return nil
}

func setConfig(cmd *cobra.Command, args []string) error {
	key, err := parseConfigKey(args[0])
	if err != nil {
		return err
	}

	if err := validateConfigValue(key, args[1]); err != nil {
		return err
	}

	ctx, err := newRunContext()
	if err != nil {
		return err
	}

	if err := ctx.Config.Set(key, args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	ctx.UI.Successf("%s saved to %s", key, ctx.Config.FilePath())
	return nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyTargetFiles:
		return common.ValidateTargetList(value)
	case config.KeyBaseDir:
		return common.ValidateBaseDir(value)
	default:
		return nil
	}
}
