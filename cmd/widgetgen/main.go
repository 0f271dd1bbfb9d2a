package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/am"
	"github.com/teranos/widgetgen/cmd/widgetgen/commands"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "widgetgen",
	Short: "widgetgen - Generate Lua UI code from widget layouts",
	Long: `widgetgen - Generate Lua UI code from widget layouts.

widgetgen reads a layout document (JSON, YAML or TOML) describing widgets
placed on a character-cell grid and generates Lua source for the terminal
UI library, or an HTML preview of the layout.

Available commands:
  export  - Generate Lua source (full program, widgets only, or factory function)
  preview - Render an HTML preview of a layout
  inspect - List elements with their identifiers and projected geometry
  watch   - Re-export a layout every time it changes
  serve   - Serve a live-reloading preview
  am      - Manage widgetgen configuration ("I am")

Examples:
  widgetgen export layout.json                  # Full program to stdout
  widgetgen export layout.json --shape function # Factory function
  widgetgen export layout.yaml -o build/ui      # Timestamped file in build/ui
  widgetgen preview layout.json > preview.html
  widgetgen serve layout.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonLogs := false
		if cfg, err := am.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.PreviewCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
