// Package polar lays out chart series on a circular coordinate system.
//
// The package is the geometry engine behind polar charts: it converts a
// series' rectangular-space coordinates, an angle and a radial distance, into
// pixel positions, and computes the shapes needed to draw the series on a
// circle. It does not draw anything itself; renderers consume the [BezPath]s,
// [ArcShape]s and [ClipRegion]s it produces.
//
// # Attaching series
//
// A host declares a chart as polar by setting [Chart.Polar] and calls
// [Attach] from its series initialization hook. Attach returns the series'
// [State], through which the rest of the engine is used. Calling Attach again
// after the chart stopped being polar discards the state.
//
// The engine reads axes through the [Axis] interface. [RadialAxis] is a
// linear implementation for hosts that have no axis subsystem of their own.
//
// # Layout pass
//
// A layout pass for a line-like series looks like this:
//
//	st.Translate()                 // place every point with State.ToXY
//	path := st.GraphPath(s.Points) // outline, closed across 0/2π
//	clip := st.ClipCircle(group)   // after rendering
//
// Column series use [State.TranslateColumns] instead of Translate. On
// non-inverted charts they become columns growing outwards; on inverted
// charts they become radial bars growing around the circle, starting at the
// series' threshold or spanning their stack.
//
// # Splines
//
// [Connectors] computes the Bézier control points that keep a spline
// straight through each point, including across the seam of a closed path.
//
// # Pointer search and labels
//
// [State.SearchPoint] finds the point under the pointer, by angle alone when
// the chart shares its tooltip between series. [ResolveAlignment] and
// [State.AlignLabel] place data labels around the circle.
//
// # Coordinates
//
// Angles handed to [Axis.PostTranslate] are relative to the axis start angle.
// Absolute angles, as found in [ArcShape], are in radians clockwise from 3
// o'clock, because y grows downwards. Angles in degrees, as used for pointer
// search and label alignment, are measured clockwise from 12 o'clock.
//
// All computations are synchronous and bounded by the number of points. A
// [State] must not be used concurrently.
package polar
