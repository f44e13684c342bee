package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perchui/perch/pkg/scene"
)

// placeCommand creates the place command for computing a position from a scene file.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		output   string
		jsonOnly bool
	)

	cmd := &cobra.Command{
		Use:   "place [scene.toml|scene.json]",
		Short: "Compute the floating element position for a scene",
		Long: `Compute the floating element position for a scene.

The place command loads a scene file describing the viewport, the anchor
rectangle, the floating element size, and the positioning settings, then
computes the window-relative top/left coordinates of the floating element.

Scene files can be TOML or JSON; the format is inferred from the file
extension. Use --json to print the result as JSON on stdout, or -o to
write it to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlace(args[0], output, jsonOnly)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result JSON to a file")
	cmd.Flags().BoolVar(&jsonOnly, "json", false, "print the result as JSON on stdout")

	return cmd
}

// runPlace loads the scene, computes the position, and reports it.
func (c *CLI) runPlace(input, output string, jsonOnly bool) error {
	reportDiagnostics()

	sc, err := scene.Load(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	at, err := sc.Position()
	if err != nil {
		return fmt.Errorf("place: %w", err)
	}

	if output != "" {
		if err := scene.ExportResult(at, output); err != nil {
			return fmt.Errorf("write result %s: %w", output, err)
		}
	}

	if jsonOnly {
		return scene.WriteResult(at, os.Stdout)
	}

	printSuccess("Position computed")
	printKeyValue("top", fmt.Sprintf("%g", at.Top))
	printKeyValue("left", fmt.Sprintf("%g", at.Left))
	if output != "" {
		printNewline()
		printFile(output)
	}
	printNewline()
	printNextStep("Render a preview", fmt.Sprintf("perch preview %s", input))

	return nil
}
