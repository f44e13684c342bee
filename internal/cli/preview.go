package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perchui/perch/pkg/preview"
	"github.com/perchui/perch/pkg/scene"
)

// previewCommand creates the preview command for rendering a scene to SVG.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output   string
		labels   bool
		gridStep float64
	)

	cmd := &cobra.Command{
		Use:   "preview [scene.toml|scene.json]",
		Short: "Render a scene and its computed position to SVG",
		Long: `Render a scene and its computed position to SVG.

The preview command computes the floating element position for a scene and
draws the viewport, the anchor, and the placed floating element as an SVG
image. This is useful for eyeballing a placement without wiring the result
into a UI.

By default the output file is the input path with an .svg extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], output, labels, gridStep)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG file (default: <input>.svg)")
	cmd.Flags().BoolVar(&labels, "labels", false, "label the anchor and floating rectangles")
	cmd.Flags().Float64Var(&gridStep, "grid", 0, "draw gridlines every N pixels (0 disables)")

	return cmd
}

// runPreview loads the scene, computes the position, and writes the SVG.
func (c *CLI) runPreview(input, output string, labels bool, gridStep float64) error {
	reportDiagnostics()

	sc, err := scene.Load(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	at, err := sc.Position()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	var opts []preview.SVGOption
	if labels {
		opts = append(opts, preview.WithLabels())
	}
	if gridStep > 0 {
		opts = append(opts, preview.WithGrid(gridStep))
	}

	if output == "" {
		output = replaceExt(input, ".svg")
	}

	svg := preview.RenderSVG(*sc, at, opts...)
	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write preview %s: %w", output, err)
	}

	printSuccess("Preview rendered (top=%g, left=%g)", at.Top, at.Left)
	printFile(output)

	return nil
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ext
	}
	return path + ext
}
