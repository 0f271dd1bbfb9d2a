// Package commands implements the widgetgen subcommands.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/am"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/preview"
)

// Status printers write to stderr so stdout carries only generated output.
var (
	statusSuccess = pterm.Success.WithWriter(os.Stderr)
	statusInfo    = pterm.Info.WithWriter(os.Stderr)
	statusWarning = pterm.Warning.WithWriter(os.Stderr)
)

// loadConfig loads and validates the configuration.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "invalid configuration"),
			"run 'widgetgen am show' to inspect the merged configuration")
	}
	return cfg, nil
}

// verbosity returns the -v count.
func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// resolveShape picks the --shape flag when set, else the configured shape.
func resolveShape(flag string, cfg *am.Config) (export.Shape, error) {
	if flag != "" {
		return export.ParseShape(flag)
	}
	return export.ParseShape(cfg.Export.Shape)
}

// toStdout reports whether an output directory means standard output.
func toStdout(dir string) bool {
	return dir == "" || dir == "-"
}

// newRenderer builds a preview renderer from the preview config.
func newRenderer(cfg *am.Config) *preview.Renderer {
	r := preview.NewRenderer()
	r.Color = preview.WithOverrides(preview.DefaultColor, cfg.Preview.Colors)
	if cfg.Preview.Background != "" {
		r.Background = cfg.Preview.Background
	}
	return r
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
