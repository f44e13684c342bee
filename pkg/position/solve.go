package position

import (
	"github.com/perchui/perch/pkg/geometry"
	"github.com/perchui/perch/pkg/observability"
)

// solver carries the geometry snapshot of one top-level computation through
// the recursive fallback attempts. The rectangles never change between
// attempts; only the settings and the remaining strategy list do.
type solver struct {
	floating geometry.Rect
	anchor   geometry.Rect
	viewport geometry.Size
}

// outcome is the tagged result of one placement attempt. outOfBounds marks a
// branch that exhausted its strategies without fitting, so the calling frame
// can try its own next strategy instead of accepting the coordinates.
type outcome struct {
	at          geometry.Point
	outOfBounds bool
}

// solve computes the placement for s and, if it overflows the viewport,
// walks the remaining strategies in order. Each recursive attempt receives
// its own immutable view of the strategies left after the one being applied,
// so a failed branch returns control here and the next strategy is tried.
func (sv solver) solve(s Settings, remaining []Strategy) (outcome, error) {
	at, err := place(sv.floating, sv.anchor, s)
	if err != nil {
		return outcome{}, err
	}

	if !s.PreventOverflow || !sv.overflows(at) {
		return outcome{at: at}, nil
	}

	for i, strat := range remaining {
		tail := remaining[i+1:]

		switch strat {
		case StrategyFlip:
			flipped := s
			flipped.Side = s.Side.Opposite()
			observability.Solver().OnFallback(string(strat), string(s.Side), string(flipped.Side))

			out, err := sv.solve(flipped, tail)
			if err != nil {
				return outcome{}, err
			}
			if !out.outOfBounds {
				return out, nil
			}

		case StrategyMove:
			moved := s
			moved.Side = s.Side.Perpendicular()
			observability.Solver().OnFallback(string(strat), string(s.Side), string(moved.Side))

			// The moved side gets one flip attempt of its own before giving
			// up, regardless of whether flip was already consumed upstream.
			queue := make([]Strategy, 0, len(tail)+1)
			queue = append(queue, StrategyFlip)
			queue = append(queue, tail...)

			out, err := sv.solve(moved, queue)
			if err != nil {
				return outcome{}, err
			}
			if !out.outOfBounds {
				return out, nil
			}

		case StrategyOffset:
			observability.Solver().OnFallback(string(strat), string(s.Side), string(s.Side))
			return outcome{at: sv.clamp(at)}, nil
		}
	}

	// Strategies exhausted: hand the uncorrected coordinates back to the
	// caller, tagged so an enclosing frame knows this branch failed.
	return outcome{at: at, outOfBounds: true}, nil
}

// overflows reports whether a floating element placed at pt would extend
// past any viewport edge.
func (sv solver) overflows(pt geometry.Point) bool {
	return pt.Top < 0 ||
		pt.Top+sv.floating.Height > sv.viewport.Height ||
		pt.Left < 0 ||
		pt.Left+sv.floating.Width > sv.viewport.Width
}

// clamp pulls each coordinate independently back inside the viewport. When
// the floating element is larger than the viewport the trailing-edge clamp
// wins and the element overhangs at the leading edge.
func (sv solver) clamp(pt geometry.Point) geometry.Point {
	if pt.Top < 0 {
		pt.Top = 0
	}
	if pt.Top+sv.floating.Height > sv.viewport.Height {
		pt.Top = sv.viewport.Height - sv.floating.Height
	}
	if pt.Left < 0 {
		pt.Left = 0
	}
	if pt.Left+sv.floating.Width > sv.viewport.Width {
		pt.Left = sv.viewport.Width - sv.floating.Width
	}
	return pt
}
