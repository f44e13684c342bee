package position

import (
	"github.com/perchui/perch/pkg/errors"
)

// Placement selects whether the floating element sits adjacent to the anchor
// box or over/within it.
type Placement string

// Placement values.
const (
	PlaceOutside Placement = "outside"
	PlaceInside  Placement = "inside"
)

// Side is the anchor edge used as the primary placement reference.
// SideCentered (horizontally centered over the anchor) is only valid for
// inside placement.
type Side string

// Side values.
const (
	SideTop      Side = "top"
	SideBottom   Side = "bottom"
	SideLeft     Side = "left"
	SideRight    Side = "right"
	SideCentered Side = "centered"
)

// Opposite returns the geometrically opposite side. Centered is its own
// opposite: there is no mirror position for a horizontally centered element.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// Perpendicular returns the side on the perpendicular axis used by the move
// fallback: top and bottom move to left, everything else moves to top.
func (s Side) Perpendicular() Side {
	if s == SideTop || s == SideBottom {
		return SideLeft
	}
	return SideTop
}

// vertical reports whether the side's primary placement axis is vertical,
// i.e. the case split resolves the top coordinate and alignment resolves left.
func (s Side) vertical() bool {
	return s == SideTop || s == SideBottom
}

// Align controls placement along the axis perpendicular to the side.
type Align string

// Align values. First snaps to the anchor's leading edge, Last to its
// trailing edge, Center centers the floating element over the anchor.
const (
	AlignFirst  Align = "first"
	AlignCenter Align = "center"
	AlignLast   Align = "last"
)

// Strategy is a fallback tag tried when the naive placement overflows the
// viewport.
type Strategy string

// Strategy values.
const (
	// StrategyFlip retries on the opposite side of the anchor.
	StrategyFlip Strategy = "flip"

	// StrategyMove retries on a perpendicular side of the anchor.
	StrategyMove Strategy = "move"

	// StrategyOffset clamps the computed coordinates to the viewport without
	// changing sides. It always produces a result, at the cost of potentially
	// covering the anchor.
	StrategyOffset Strategy = "offset"
)

// ParsePlacement converts a string to a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch Placement(s) {
	case PlaceOutside, PlaceInside:
		return Placement(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidSettings, "unknown placement: %q", s)
}

// ParseSide converts a string to a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideTop, SideBottom, SideLeft, SideRight, SideCentered:
		return Side(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidSide, "unknown side: %q", s)
}

// ParseAlign converts a string to an Align.
func ParseAlign(s string) (Align, error) {
	switch Align(s) {
	case AlignFirst, AlignCenter, AlignLast:
		return Align(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidAlign, "unknown align: %q", s)
}

// ParseStrategy converts a string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFlip, StrategyMove, StrategyOffset:
		return Strategy(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy: %q", s)
}

// Settings is the resolved configuration for one placement computation.
// Build one by applying Options over DefaultSettings; the zero value is not
// a valid configuration.
type Settings struct {
	// Placement selects inside or outside positioning relative to the anchor.
	Placement Placement

	// Side is the anchor edge used as the placement reference.
	Side Side

	// Align positions the floating element along the axis perpendicular to
	// Side.
	Align Align

	// AnchorOffset is the pixel gap (outside) or inset (inside) from the
	// anchor edge along the side axis.
	AnchorOffset float64

	// AlignmentOffset nudges the element along the alignment axis. Ignored
	// when Align is AlignCenter.
	AlignmentOffset float64

	// PreventOverflow enables the fallback strategy chain when the naive
	// placement would overflow the viewport.
	PreventOverflow bool

	// Strategies is the ordered fallback chain consumed front to back.
	Strategies []Strategy
}

// DefaultStrategies returns the default fallback chain: flip, then move,
// then offset. A fresh slice is returned on every call so callers can modify
// it freely.
func DefaultStrategies() []Strategy {
	return []Strategy{StrategyFlip, StrategyMove, StrategyOffset}
}

// DefaultSettings returns the settings used when no options are supplied:
// outside the anchor, below it, aligned to its leading edge, with a 10px gap
// and overflow prevention enabled.
func DefaultSettings() Settings {
	return Settings{
		Placement:       PlaceOutside,
		Side:            SideBottom,
		Align:           AlignFirst,
		AnchorOffset:    10,
		AlignmentOffset: 0,
		PreventOverflow: true,
		Strategies:      DefaultStrategies(),
	}
}

// Option overrides a single field of the default settings.
type Option func(*Settings)

// WithPlacement sets inside or outside placement.
func WithPlacement(p Placement) Option {
	return func(s *Settings) { s.Placement = p }
}

// WithSide sets the anchor edge used as the placement reference.
func WithSide(side Side) Option {
	return func(s *Settings) { s.Side = side }
}

// WithAlign sets the alignment along the cross axis.
func WithAlign(a Align) Option {
	return func(s *Settings) { s.Align = a }
}

// WithAnchorOffset sets the pixel gap or inset from the anchor edge.
func WithAnchorOffset(px float64) Option {
	return func(s *Settings) { s.AnchorOffset = px }
}

// WithAlignmentOffset sets the pixel nudge along the alignment axis.
func WithAlignmentOffset(px float64) Option {
	return func(s *Settings) { s.AlignmentOffset = px }
}

// WithPreventOverflow enables or disables the fallback strategy chain.
func WithPreventOverflow(enabled bool) Option {
	return func(s *Settings) { s.PreventOverflow = enabled }
}

// WithStrategies replaces the fallback chain. The slice is copied.
func WithStrategies(strategies ...Strategy) Option {
	return func(s *Settings) {
		s.Strategies = make([]Strategy, len(strategies))
		copy(s.Strategies, strategies)
	}
}

// Validate checks the settings for invalid enum values and invalid
// combinations. Centered placement over an anchor only makes sense for
// inside placement; requesting it outside is a configuration error.
func (s Settings) Validate() error {
	if _, err := ParsePlacement(string(s.Placement)); err != nil {
		return err
	}
	if _, err := ParseSide(string(s.Side)); err != nil {
		return err
	}
	if _, err := ParseAlign(string(s.Align)); err != nil {
		return err
	}
	for _, strat := range s.Strategies {
		if _, err := ParseStrategy(string(strat)); err != nil {
			return err
		}
	}
	if s.Side == SideCentered && s.Placement != PlaceInside {
		return errors.New(errors.ErrCodeInvalidSettings,
			"side %q requires inside placement, got %q", SideCentered, s.Placement)
	}
	return nil
}
