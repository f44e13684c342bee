// Package position computes window-relative coordinates for floating UI
// elements (tooltips, popovers, menus, dialogs) anchored to a reference
// rectangle.
//
// The core entry point is [Compute]: given the floating element's rectangle,
// the anchor's rectangle, and the viewport size, it returns the coordinates
// of the floating element's top-left corner. Placement is described
// declaratively through [Option] values; unset options take the defaults of
// [DefaultSettings] (outside, bottom, first, a 10px gap, overflow prevention
// on).
//
// # Fallback strategies
//
// When the requested placement would render outside the viewport and
// overflow prevention is enabled, the solver walks an ordered strategy chain
// (flip, move, offset by default). Flip retries the opposite side, move
// retries a perpendicular side (granting the moved side one flip attempt of
// its own), and offset clamps the coordinates to the viewport without
// changing sides. Offset never fails, so a chain that includes it always
// yields on-screen coordinates. With an exhausted chain the last computed,
// possibly overflowing, coordinates are returned; Compute never fails for a
// valid configuration.
//
// # Example
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
// Compute is a pure function of its inputs: it performs no I/O, holds no
// state between calls, and is safe for concurrent use.
package position

import (
	"github.com/perchui/perch/pkg/geometry"
	"github.com/perchui/perch/pkg/observability"
)

// Compute returns the window-relative coordinates at which to place the
// floating element next to (or inside) the anchor.
//
// Supplied options are merged over [DefaultSettings]. Compute returns an
// error only for invalid configurations, such as [SideCentered] combined
// with [PlaceOutside]; an unsatisfiable placement is not an error and still
// yields coordinates. A center alignment combined with a nonzero alignment
// offset is not an error either: the offset is dropped and a diagnostic is
// emitted through the observability hooks.
func Compute(floating, anchor geometry.Rect, viewport geometry.Size, opts ...Option) (geometry.Point, error) {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return ComputeSettings(floating, anchor, viewport, s)
}

// ComputeSettings is Compute for callers that already hold a fully resolved
// Settings value, such as the scene loader and the HTTP API.
func ComputeSettings(floating, anchor geometry.Rect, viewport geometry.Size, s Settings) (geometry.Point, error) {
	if err := s.Validate(); err != nil {
		return geometry.Point{}, err
	}
	if s.Align == AlignCenter && s.AlignmentOffset != 0 {
		observability.Solver().OnDiagnostic("alignment offset is ignored when align is center")
	}

	observability.Solver().OnComputeStart(string(s.Placement), string(s.Side))

	sv := solver{floating: floating, anchor: anchor, viewport: viewport}
	out, err := sv.solve(s, s.Strategies)
	if err != nil {
		return geometry.Point{}, err
	}

	observability.Solver().OnComputeComplete(string(s.Side), !out.outOfBounds)

	// The out-of-bounds tag is solver-internal; the caller always receives
	// the last computed coordinates.
	return out.at, nil
}
