// Package cli wires configuration, output, filesystem access and the patcher
// together for the fix-templates commands.
package cli

import (
	"fmt"

	"github.com/zoro11031/fix-templates/internal/config"
	"github.com/zoro11031/fix-templates/internal/patcher"
	"github.com/zoro11031/fix-templates/internal/system"
	"github.com/zoro11031/fix-templates/internal/ui"
)

// Options are the command-line settings shared by all commands
type Options struct {
	ConfigPath     string
	BaseDir        string // Overrides BASE_DIR from the config file when set
	NoColor        bool
	NonInteractive bool
}

// RunContext holds all dependencies needed for patch operations
type RunContext struct {
	Config  *config.Config
	UI      *ui.UI
	FS      system.FileSystemManager
	Patcher *patcher.Patcher
	BaseDir string
}

// NewRunContext creates a RunContext backed by the real filesystem
func NewRunContext(opts Options) (*RunContext, error) {
	uiInstance := ui.New()
	if opts.NoColor {
		uiInstance.SetColor(false)
	}
	uiInstance.SetNonInteractive(opts.NonInteractive)

	return NewRunContextWithDeps(opts, uiInstance, system.NewFileSystem())
}

// NewRunContextWithDeps creates a RunContext with the given output and filesystem
func NewRunContextWithDeps(opts Options, u *ui.UI, fs system.FileSystemManager) (*RunContext, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = cfg.GetOrDefault(config.KeyBaseDir, ".")
	}

	return &RunContext{
		Config:  cfg,
		UI:      u,
		FS:      fs,
		Patcher: patcher.New(fs, u),
		BaseDir: baseDir,
	}, nil
}

// Targets returns the configured target files resolved against BaseDir
func (ctx *RunContext) Targets() []string {
	return patcher.ResolvePaths(ctx.BaseDir, ctx.Config.TargetFiles(patcher.DefaultTargets))
}

// Fix patches every target file. With confirm set the user is asked once
// before anything is written; declining returns no results and no error.
// In non-interactive mode the confirmation is declined.
// Per-file failures are reported in the results, never as the returned error.
func (ctx *RunContext) Fix(confirm bool) ([]patcher.Result, error) {
	targets := ctx.Targets()

	if confirm {
		ctx.UI.Infof("The following %d file(s) will be rewritten in place:", len(targets))
		for _, target := range targets {
			ctx.UI.Printf("  - %s", target)
		}

		if ctx.UI.IsNonInteractive() {
			ctx.UI.Warning("Non-interactive mode: confirmation declined")
		}

		ok, err := ctx.UI.PromptYesNo("Continue?", false)
		if err != nil {
			return nil, err
		}
		if !ok {
			ctx.UI.Info("Cancelled, no files were changed")
			return nil, nil
		}
	}

	return ctx.Patcher.Run(targets), nil
}

// Check reports which target files still contain escaped sequences
func (ctx *RunContext) Check() []patcher.Result {
	return ctx.Patcher.RunCheck(ctx.Targets())
}
