package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/watcher"
	"github.com/teranos/widgetgen/widget"
)

// WatchCmd re-exports a layout whenever it changes
var WatchCmd = &cobra.Command{
	Use:   "watch <layout>",
	Short: "Re-export a layout every time it changes",
	Long: `Export the layout once, then watch the file and export again after each
save. Saves arriving within the debounce window (watch.debounce_ms) are
collapsed into one export. Exports landing in the same second get a numbered
name (_20260304-050607-2.lua) instead of overwriting. A save that fails to
load is reported and the previous export is kept.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchShape  string
	watchOutput string
)

func init() {
	WatchCmd.Flags().StringVarP(&watchShape, "shape", "s", "", "Output shape: full, widgets, function (default from config)")
	WatchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output directory (\"-\" for stdout, default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	shape, err := resolveShape(watchShape, cfg)
	if err != nil {
		return err
	}
	outputDir := cfg.Export.OutputDir
	if cmd.Flags().Changed("output") {
		outputDir = watchOutput
	}

	session := uuid.NewString()
	log := logger.ComponentLogger("watch").With(logger.FieldSession, session)

	emit := func(layout *widget.Layout) error {
		if toStdout(outputDir) {
			fmt.Fprint(cmd.OutOrStdout(), export.Generate(layout.Elements, shape))
			return nil
		}
		path, err := export.Write(outputDir, cfg.Export.FilePrefix, shape, layout.Elements, time.Now())
		if err != nil {
			return err
		}
		log.Infow("Export written",
			logger.FieldOutput, path,
			logger.FieldShape, shape,
			logger.FieldCount, layout.Len())
		statusSuccess.Printfln("Exported %d widgets to %s", layout.Len(), path)
		return nil
	}

	layout, err := widget.Load(args[0])
	if err != nil {
		return err
	}
	if err := emit(layout); err != nil {
		return err
	}

	w, err := watcher.New(args[0], cfg.Debounce())
	if err != nil {
		return err
	}
	w.OnReload(emit)

	ctx, stop := signalContext()
	defer stop()

	statusInfo.Printfln("Watching %s (Ctrl+C to stop)", w.Path())
	log.Infow("Watch started", logger.FieldLayout, w.Path())

	if err := w.Run(ctx); err != nil {
		return err
	}
	log.Infow("Watch stopped")
	return nil
}
