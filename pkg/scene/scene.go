// Package scene defines the declarative scene files consumed by the CLI and
// the HTTP API: a viewport, an anchor rectangle, the floating element's
// dimensions, and an optional settings block.
//
// Scenes can be written in TOML or JSON. Every settings field is optional
// and falls back to the positioning defaults, so the smallest useful scene
// is just geometry:
//
//	[viewport]
//	width = 1280
//	height = 720
//
//	[anchor]
//	left = 340
//	top = 120
//	width = 120
//	height = 32
//
//	[floating]
//	width = 200
//	height = 80
package scene

import (
	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/geometry"
	"github.com/perchui/perch/pkg/position"
)

// RectSpec is the serialized form of a rectangle: top-left corner plus
// dimensions. The derived edges are computed on conversion.
type RectSpec struct {
	Left   float64 `json:"left" toml:"left"`
	Top    float64 `json:"top" toml:"top"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Rect converts the spec to a geometry rectangle.
func (r RectSpec) Rect() geometry.Rect {
	return geometry.NewRect(r.Left, r.Top, r.Width, r.Height)
}

// SizeSpec is the serialized form of a width/height pair.
type SizeSpec struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Size converts the spec to a geometry size.
func (s SizeSpec) Size() geometry.Size {
	return geometry.Size{Width: s.Width, Height: s.Height}
}

// Settings is the optional settings block of a scene. All fields are
// optional; pointer types distinguish "unset" from a meaningful zero so a
// scene can, for example, explicitly disable overflow prevention.
type Settings struct {
	Placement       string   `json:"placement,omitempty" toml:"placement"`
	Side            string   `json:"side,omitempty" toml:"side"`
	Align           string   `json:"align,omitempty" toml:"align"`
	AnchorOffset    *float64 `json:"anchor_offset,omitempty" toml:"anchor_offset"`
	AlignmentOffset *float64 `json:"alignment_offset,omitempty" toml:"alignment_offset"`
	PreventOverflow *bool    `json:"prevent_overflow,omitempty" toml:"prevent_overflow"`
	Strategies      []string `json:"strategies,omitempty" toml:"strategies"`
}

// Resolve merges the supplied fields over the positioning defaults and
// validates every enum value.
func (s Settings) Resolve() (position.Settings, error) {
	resolved := position.DefaultSettings()

	if s.Placement != "" {
		p, err := position.ParsePlacement(s.Placement)
		if err != nil {
			return position.Settings{}, err
		}
		resolved.Placement = p
	}
	if s.Side != "" {
		side, err := position.ParseSide(s.Side)
		if err != nil {
			return position.Settings{}, err
		}
		resolved.Side = side
	}
	if s.Align != "" {
		a, err := position.ParseAlign(s.Align)
		if err != nil {
			return position.Settings{}, err
		}
		resolved.Align = a
	}
	if s.AnchorOffset != nil {
		resolved.AnchorOffset = *s.AnchorOffset
	}
	if s.AlignmentOffset != nil {
		resolved.AlignmentOffset = *s.AlignmentOffset
	}
	if s.PreventOverflow != nil {
		resolved.PreventOverflow = *s.PreventOverflow
	}
	if s.Strategies != nil {
		strategies := make([]position.Strategy, len(s.Strategies))
		for i, raw := range s.Strategies {
			strat, err := position.ParseStrategy(raw)
			if err != nil {
				return position.Settings{}, err
			}
			strategies[i] = strat
		}
		resolved.Strategies = strategies
	}

	return resolved, nil
}

// Scene is one complete positioning request: the geometry snapshot plus the
// placement settings.
type Scene struct {
	Viewport SizeSpec `json:"viewport" toml:"viewport"`
	Anchor   RectSpec `json:"anchor" toml:"anchor"`
	Floating SizeSpec `json:"floating" toml:"floating"`
	Settings Settings `json:"settings,omitempty" toml:"settings"`
}

// Validate checks the scene geometry. Settings are validated separately
// during Resolve so the error pinpoints the offending field.
func (sc Scene) Validate() error {
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene,
			"viewport must have positive dimensions, got %gx%g", sc.Viewport.Width, sc.Viewport.Height)
	}
	if sc.Floating.Width <= 0 || sc.Floating.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene,
			"floating element must have positive dimensions, got %gx%g", sc.Floating.Width, sc.Floating.Height)
	}
	if sc.Anchor.Width < 0 || sc.Anchor.Height < 0 {
		return errors.New(errors.ErrCodeInvalidScene,
			"anchor must not have negative dimensions, got %gx%g", sc.Anchor.Width, sc.Anchor.Height)
	}
	return nil
}

// Position validates the scene, resolves its settings, and computes the
// floating element's coordinates.
func (sc Scene) Position() (geometry.Point, error) {
	if err := sc.Validate(); err != nil {
		return geometry.Point{}, err
	}
	settings, err := sc.Settings.Resolve()
	if err != nil {
		return geometry.Point{}, err
	}

	floating := geometry.NewRect(0, 0, sc.Floating.Width, sc.Floating.Height)
	return position.ComputeSettings(floating, sc.Anchor.Rect(), sc.Viewport.Size(), settings)
}
