package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/widget"
)

// ExportCmd generates Lua source from a layout
var ExportCmd = &cobra.Command{
	Use:   "export <layout>",
	Short: "Generate Lua source from a layout",
	Long: `Generate Lua source for the terminal UI library from a layout document.

Shapes:
  full     - Runnable program: bootstrap, root container, widgets, event loop
  widgets  - Widget declarations only, for pasting into an existing program
  function - createWidgets(container) factory returning the widgets by name

Output goes to stdout unless an output directory is given, in which case a
timestamped file <prefix>_<shape>_<YYYYMMDD-HHMMSS>.lua is created.

Examples:
  widgetgen export layout.json
  widgetgen export layout.json --shape widgets
  widgetgen export layout.toml --shape function -o build/ui --prefix menu`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportShape  string
	exportOutput string
	exportPrefix string
)

func init() {
	ExportCmd.Flags().StringVarP(&exportShape, "shape", "s", "", "Output shape: full, widgets, function (default from config)")
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output directory (\"-\" for stdout, default from config)")
	ExportCmd.Flags().StringVar(&exportPrefix, "prefix", "", "File name prefix (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shape, err := resolveShape(exportShape, cfg)
	if err != nil {
		return err
	}

	outputDir := cfg.Export.OutputDir
	if cmd.Flags().Changed("output") {
		outputDir = exportOutput
	}
	prefix := cfg.Export.FilePrefix
	if exportPrefix != "" {
		prefix = exportPrefix
	}

	layout, err := widget.Load(args[0])
	if err != nil {
		return err
	}

	if toStdout(outputDir) {
		fmt.Fprint(cmd.OutOrStdout(), export.Generate(layout.Elements, shape))
		return nil
	}

	path, err := export.Write(outputDir, prefix, shape, layout.Elements, time.Now())
	if err != nil {
		return err
	}

	logger.Infow("Export written",
		logger.FieldLayout, args[0],
		logger.FieldShape, shape,
		logger.FieldOutput, path,
		logger.FieldCount, layout.Len())
	statusSuccess.Printfln("Exported %d widgets (%s) to %s", layout.Len(), shape, path)
	return nil
}
