// Package cli implements the perch command-line interface.
//
// This package provides commands for computing floating-element placements
// from scene files, rendering SVG previews, serving the positioning HTTP
// API, and exploring placements interactively. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - place: Compute coordinates for a scene file
//   - preview: Render a scene and its placement as SVG
//   - serve: Run the HTTP positioning API
//   - playground: Explore placements interactively in the terminal
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/perchui/perch/pkg/buildinfo"
	"github.com/perchui/perch/pkg/observability"
)

// appName is the application name used for display and completions.
const appName = "perch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// diagnosticHooks surfaces solver diagnostics, such as an alignment offset
// dropped for center alignment, as styled warnings.
type diagnosticHooks struct {
	observability.NoopSolverHooks
	warn func(format string, args ...any)
}

func (h diagnosticHooks) OnDiagnostic(msg string) {
	h.warn("%s", msg)
}

// reportDiagnostics routes solver diagnostics to terminal warnings for the
// duration of a command run.
func reportDiagnostics() {
	observability.SetSolverHooks(diagnosticHooks{warn: printWarning})
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Perch computes placements for floating UI elements",
		Long:         `Perch is a toolkit for positioning floating UI elements (tooltips, popovers, menus) relative to an anchor rectangle, with viewport-aware fallback when the requested placement would render off-screen.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.playgroundCommand())
	root.AddCommand(c.completionCommand())

	return root
}
