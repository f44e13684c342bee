// Package geometry provides the window-coordinate value types shared by the
// positioning core and every surface built on top of it.
//
// All values are pixels in a window-relative coordinate system: the origin is
// the top-left corner of the viewport, x grows to the right and y grows
// downward. Types are plain immutable values; none of the operations mutate
// their receiver.
package geometry

// Rect is an axis-aligned rectangle described by its four edges plus its
// width and height. The derived fields are kept consistent by the
// constructors; build rectangles through NewRect or FromEdges rather than
// with struct literals.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect builds a rectangle from its top-left corner and dimensions.
func NewRect(left, top, width, height float64) Rect {
	return Rect{
		Top:    top,
		Left:   left,
		Right:  left + width,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// FromEdges builds a rectangle from its four edges, deriving width and height.
func FromEdges(left, top, right, bottom float64) Rect {
	return Rect{
		Top:    top,
		Left:   left,
		Right:  right,
		Bottom: bottom,
		Width:  right - left,
		Height: bottom - top,
	}
}

// CenterX returns the horizontal midpoint of the rectangle.
func (r Rect) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// CenterY returns the vertical midpoint of the rectangle.
func (r Rect) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

// Size is a width/height pair, typically the viewport dimensions or the
// dimensions of a floating element before it has been placed.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a window-relative coordinate pair addressing the top-left corner
// of a floating element.
type Point struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}
