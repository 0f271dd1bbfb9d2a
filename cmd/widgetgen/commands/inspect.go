package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/widgetgen/export"
	"github.com/teranos/widgetgen/preview"
	"github.com/teranos/widgetgen/widget"
)

// InspectCmd lists the elements of a layout
var InspectCmd = &cobra.Command{
	Use:   "inspect <layout>",
	Short: "List elements with their identifiers and projected geometry",
	Long: `List every element of a layout in document order with the Lua identifier
the exporter will use, its cell geometry, and where the preview places it.

Hidden elements show no pixel rectangle or stacking order.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	layout, err := widget.Load(args[0])
	if err != nil {
		return err
	}

	bounds := preview.ComputeBounds(layout.Elements)
	placed := make(map[string]preview.Placed)
	for _, p := range preview.Project(layout.Elements, bounds) {
		placed[p.Element.ID] = p
	}

	data := pterm.TableData{
		{"ID", "Identifier", "Kind", "Cells (x,y w×h)", "Visible", "Pixels (x,y w×h)", "Z"},
	}
	for _, el := range layout.Elements {
		cells := fmt.Sprintf("%d,%d %d×%d", el.X, el.Y, el.Width, el.Height)
		pixels, z := "-", "-"
		if p, ok := placed[el.ID]; ok {
			pixels = fmt.Sprintf("%d,%d %d×%d", p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height)
			z = strconv.Itoa(p.Z)
		}
		data = append(data, []string{
			el.ID,
			export.Identifier(el),
			el.Kind.String(),
			cells,
			strconv.FormatBool(el.IsVisible()),
			pixels,
			z,
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithWriter(cmd.OutOrStdout()).
		WithData(data).
		Render(); err != nil {
		return err
	}

	width, height := bounds.PixelSize()
	statusInfo.Printfln("%d elements, bounds %d,%d %d×%d cells (%d×%d px)",
		layout.Len(), bounds.MinX, bounds.MinY, bounds.Width, bounds.Height, width, height)
	return nil
}
