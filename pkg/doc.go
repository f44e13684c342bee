// Package pkg provides the core libraries for Perch floating-element placement.
//
// # Overview
//
// Perch computes window-relative top/left coordinates for floating UI
// elements (tooltips, popovers, menus, dialogs) anchored to a reference
// rectangle, falling back to alternative placements when the requested one
// would render outside the viewport. The pkg directory is organized into
// five areas:
//
//  1. [position] - The placement engine (settings, case split, fallback solver)
//  2. [geometry] - Rectangle, size, and point primitives
//  3. [scene] - Scene files: TOML/JSON import, result export
//  4. [preview] - SVG rendering of scenes and computed placements
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through Perch:
//
//	Scene file / HTTP request / library call
//	         ↓
//	    [scene] package (decode + validate + resolve settings)
//	         ↓
//	    [position] package (case split + fallback chain)
//	         ↓
//	    coordinates → JSON result / SVG preview / caller
//
// # Quick Start
//
// Compute a placement directly:
//
//	import (
//	    "github.com/perchui/perch/pkg/geometry"
//	    "github.com/perchui/perch/pkg/position"
//	)
//
//	floating := geometry.NewRect(0, 0, 200, 80)
//	anchor := geometry.NewRect(340, 120, 120, 32)
//	viewport := geometry.Size{Width: 1280, Height: 720}
//
//	at, err := position.Compute(floating, anchor, viewport,
//	    position.WithSide(position.SideTop),
//	    position.WithAlign(position.AlignCenter),
//	)
//
// Or load a scene file and render a preview:
//
//	sc, _ := scene.Load("tooltip.toml")
//	at, _ := sc.Position()
//	svg := preview.RenderSVG(sc, at, preview.WithLabels())
//
// # Main Packages
//
// [position] - The placement engine. Settings describe the desired placement
// (inside/outside, side, alignment, offsets); a case-split table maps each
// valid placement/side pair to coordinates, and an ordered strategy chain
// (flip, move, offset) retries alternatives when the result would overflow
// the viewport.
//
// [geometry] - Float64 rectangles with cached right/bottom edges, plus Size
// and Point. All positioning math works in these types.
//
// [scene] - A Scene bundles viewport, anchor, floating size, and settings in
// one decodable document. Supports TOML and JSON input and JSON result
// export; used by the CLI and the HTTP API.
//
// [preview] - Renders a scene and its computed placement to SVG, with
// optional labels and gridlines, so placements can be inspected visually.
//
// [errors] - Coded errors distinguishing configuration problems (invalid
// side, invalid scene) from internal failures.
//
// [observability] - Pluggable hooks for solver and HTTP server events with
// no-op defaults.
//
// [buildinfo] - Version metadata injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/position/...    # Specific package
//
// [position]: https://pkg.go.dev/github.com/perchui/perch/pkg/position
// [geometry]: https://pkg.go.dev/github.com/perchui/perch/pkg/geometry
// [scene]: https://pkg.go.dev/github.com/perchui/perch/pkg/scene
// [preview]: https://pkg.go.dev/github.com/perchui/perch/pkg/preview
// [errors]: https://pkg.go.dev/github.com/perchui/perch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/perchui/perch/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/perchui/perch/pkg/buildinfo
package pkg
