// Package preview renders a scene and its computed placement as an SVG
// image: the viewport frame, the anchor box, and the floating box at its
// computed coordinates. The output is a debugging aid for scene files, not a
// rendering surface; coordinates always come from the positioning core.
package preview

import (
	"bytes"
	"fmt"

	"github.com/perchui/perch/pkg/geometry"
	"github.com/perchui/perch/pkg/scene"
)

const previewCSS = `
    .viewport { fill: #ffffff; stroke: #94a3b8; stroke-width: 2; }
    .anchor { fill: #bfdbfe; stroke: #1d4ed8; stroke-width: 2; }
    .floating { fill: #fde68a; fill-opacity: 0.85; stroke: #b45309; stroke-width: 2; }
    .grid { stroke: #e2e8f0; stroke-width: 1; }
    .label { font-family: ui-monospace, monospace; font-size: 13px; fill: #334155; }`

// SVGOption configures the preview renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels   bool
	gridStep float64
}

// WithLabels annotates the anchor and floating boxes with their names and
// the floating box with its computed coordinates.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithGrid draws light gridlines every step pixels.
func WithGrid(step float64) SVGOption {
	return func(r *svgRenderer) {
		if step > 0 {
			r.gridStep = step
		}
	}
}

// RenderSVG renders the scene with the floating element placed at the given
// coordinates. Out-of-viewport coordinates render outside the frame, which
// is the point: a placement that escaped the viewport should be visible.
func RenderSVG(sc scene.Scene, at geometry.Point, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	// Pad the canvas so elements that overflow the viewport stay visible.
	const margin = 40.0
	width := sc.Viewport.Width + 2*margin
	height := sc.Viewport.Height + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", previewCSS)
	fmt.Fprintf(&buf, `  <g transform="translate(%.1f, %.1f)">`+"\n", margin, margin)

	fmt.Fprintf(&buf, `    <rect class="viewport" x="0" y="0" width="%.1f" height="%.1f"/>`+"\n",
		sc.Viewport.Width, sc.Viewport.Height)

	if r.gridStep > 0 {
		renderGrid(&buf, sc.Viewport.Size(), r.gridStep)
	}

	fmt.Fprintf(&buf, `    <rect class="anchor" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		sc.Anchor.Left, sc.Anchor.Top, sc.Anchor.Width, sc.Anchor.Height)
	fmt.Fprintf(&buf, `    <rect class="floating" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		at.Left, at.Top, sc.Floating.Width, sc.Floating.Height)

	if r.labels {
		renderLabels(&buf, sc, at)
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, viewport geometry.Size, step float64) {
	for x := step; x < viewport.Width; x += step {
		fmt.Fprintf(buf, `    <line class="grid" x1="%.1f" y1="0" x2="%.1f" y2="%.1f"/>`+"\n",
			x, x, viewport.Height)
	}
	for y := step; y < viewport.Height; y += step {
		fmt.Fprintf(buf, `    <line class="grid" x1="0" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			y, viewport.Width, y)
	}
}

func renderLabels(buf *bytes.Buffer, sc scene.Scene, at geometry.Point) {
	fmt.Fprintf(buf, `    <text class="label" x="%.1f" y="%.1f">anchor</text>`+"\n",
		sc.Anchor.Left+4, sc.Anchor.Top+16)
	fmt.Fprintf(buf, `    <text class="label" x="%.1f" y="%.1f">floating (%.0f, %.0f)</text>`+"\n",
		at.Left+4, at.Top+16, at.Left, at.Top)
}
