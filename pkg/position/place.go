package position

import (
	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/geometry"
)

// placementKey indexes the primary-axis table by the (placement, side) pair.
type placementKey struct {
	placement Placement
	side      Side
}

// axisFunc computes the primary-axis coordinate for one placement case.
// For vertical sides the result is the top coordinate, otherwise the left.
type axisFunc func(anchor, floating geometry.Rect, offset float64) float64

// primaryAxis maps every valid (placement, side) pair to its coordinate
// formula. Keeping the case split in a table makes each case independently
// testable and makes an unhandled combination an explicit lookup miss.
var primaryAxis = map[placementKey]axisFunc{
	{PlaceOutside, SideTop}: func(a, f geometry.Rect, off float64) float64 {
		return a.Top - off - f.Height
	},
	{PlaceOutside, SideBottom}: func(a, _ geometry.Rect, off float64) float64 {
		return a.Bottom + off
	},
	{PlaceOutside, SideLeft}: func(a, f geometry.Rect, off float64) float64 {
		return a.Left - off - f.Width
	},
	{PlaceOutside, SideRight}: func(a, _ geometry.Rect, off float64) float64 {
		return a.Right + off
	},
	{PlaceInside, SideTop}: func(a, _ geometry.Rect, off float64) float64 {
		return a.Top + off
	},
	{PlaceInside, SideBottom}: func(a, f geometry.Rect, off float64) float64 {
		return a.Bottom - off - f.Height
	},
	{PlaceInside, SideLeft}: func(a, _ geometry.Rect, off float64) float64 {
		return a.Left + off
	},
	{PlaceInside, SideRight}: func(a, f geometry.Rect, off float64) float64 {
		return a.Right - off - f.Width
	},
	{PlaceInside, SideCentered}: func(a, f geometry.Rect, _ float64) float64 {
		return a.CenterX() - f.Width/2
	},
}

// place computes the raw coordinates for one settings combination, without
// any overflow handling. The primary axis comes from the case table above;
// the cross axis comes from the alignment rules.
//
// If either axis ends up unresolved the case split is incomplete, which is a
// logic defect rather than a user error, so place fails with an internal
// error.
func place(floating, anchor geometry.Rect, s Settings) (geometry.Point, error) {
	var top, left float64
	var hasTop, hasLeft bool

	if fn, ok := primaryAxis[placementKey{s.Placement, s.Side}]; ok {
		v := fn(anchor, floating, s.AnchorOffset)
		if s.Side.vertical() {
			top, hasTop = v, true
		} else {
			left, hasLeft = v, true
		}
	}

	// The alignment offset has no meaning for centered alignment.
	alignOff := s.AlignmentOffset
	if s.Align == AlignCenter {
		alignOff = 0
	}

	if s.Side.vertical() {
		switch s.Align {
		case AlignFirst:
			left, hasLeft = anchor.Left+alignOff, true
		case AlignCenter:
			left, hasLeft = anchor.CenterX()-floating.Width/2, true
		case AlignLast:
			left, hasLeft = anchor.Right-floating.Width-alignOff, true
		}
	} else {
		switch s.Align {
		case AlignFirst:
			top, hasTop = anchor.Top+alignOff, true
		case AlignCenter:
			top, hasTop = anchor.CenterY()-floating.Height/2, true
		case AlignLast:
			top, hasTop = anchor.Bottom-floating.Height-alignOff, true
		}
	}

	if !hasTop || !hasLeft {
		return geometry.Point{}, errors.New(errors.ErrCodeInternal,
			"placement axes unresolved for %s/%s/%s", s.Placement, s.Side, s.Align)
	}

	return geometry.Point{Top: top, Left: left}, nil
}
