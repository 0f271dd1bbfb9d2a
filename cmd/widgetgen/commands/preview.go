package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/logger"
	"github.com/teranos/widgetgen/widget"
)

// PreviewCmd renders a layout as HTML
var PreviewCmd = &cobra.Command{
	Use:   "preview <layout>",
	Short: "Render an HTML preview of a layout",
	Long: `Render the visible widgets of a layout as HTML, positioned on the
terminal's character grid with each cell drawn 8x16 pixels.

Examples:
  widgetgen preview layout.json > preview.html
  widgetgen preview layout.json -o preview.html
  widgetgen preview layout.json --fragment   # <div> only, no document`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

var (
	previewOutput   string
	previewFragment bool
)

func init() {
	PreviewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Write HTML to this file instead of stdout")
	PreviewCmd.Flags().BoolVar(&previewFragment, "fragment", false, "Emit only the preview element, without an HTML document")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := widget.Load(args[0])
	if err != nil {
		return err
	}

	renderer := newRenderer(cfg)
	var out string
	if previewFragment {
		out = renderer.Render(layout.Elements)
	} else {
		out = renderer.Page("widgetgen preview - "+filepath.Base(args[0]), layout.Elements)
	}

	if previewOutput == "" || previewOutput == "-" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if err := os.WriteFile(previewOutput, []byte(out), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write preview %s", previewOutput)
	}
	logger.Infow("Preview written",
		logger.FieldLayout, args[0],
		logger.FieldOutput, previewOutput,
		logger.FieldBytes, len(out))
	statusSuccess.Printfln("Preview written to %s", previewOutput)
	return nil
}
