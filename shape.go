package polar

import "iter"

// Shape describes geometry that can express itself as a Bézier path.
type Shape interface {
	// BoundingBox returns a rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over path elements that express the
	// shape as a series of "move to", "line to", "quadratic Bézier to", "cubic
	// Bézier to", and "close path" commands.
	//
	// The tolerance parameter controls the accuracy of conversion of circular
	// arcs to Bézier curves. For drawing charts on screen, a value of 0.1 is
	// appropriate, as it is unlikely to be visible to the eye.
	PathElements(tolerance float64) iter.Seq[PathElement]

	Path(tolerance float64) BezPath
}
