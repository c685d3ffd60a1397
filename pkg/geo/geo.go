package geo

import (
	"errors"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"
)

// PLANAR GEOMETRY
// Scene coordinates are plain 2D drawing units with no spatial reference.
// Angles are radians, positive counter-clockwise.

// ErrTooFewPoints is returned when a line needs at least two points
var ErrTooFewPoints = errors.New("line string needs at least 2 points")

// Pose is a position plus heading in radians.
type Pose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// XY returns the position part of the pose.
func (p Pose) XY() (float64, float64) {
	return p.X, p.Y
}

// RectangleCorners returns the corners of a w*h rectangle centered on (cx, cy)
// and rotated by theta about that center.
// Corner order before rotation: (minX,minY), (maxX,minY), (maxX,maxY), (minX,maxY).
func RectangleCorners(cx, cy, w, h, theta float64) [4]geom.XY {
	hw, hh := w/2, h/2
	offsets := [4]geom.XY{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}

	sin, cos := math.Sincos(theta)
	var corners [4]geom.XY
	for i, o := range offsets {
		corners[i] = geom.XY{
			X: cx + o.X*cos - o.Y*sin,
			Y: cy + o.X*sin + o.Y*cos,
		}
	}
	return corners
}

// Rectangle builds the polygon of RectangleCorners as a closed ring.
// Degenerate extents (zero or negative) are not rejected: geometry
// validation is disabled, so construction cannot fail.
func Rectangle(cx, cy, w, h, theta float64) geom.Polygon {
	c := RectangleCorners(cx, cy, w, h, theta)
	flat := []float64{
		c[0].X, c[0].Y,
		c[1].X, c[1].Y,
		c[2].X, c[2].Y,
		c[3].X, c[3].Y,
		c[0].X, c[0].Y,
	}
	ring, _ := geom.NewLineString(geom.NewSequence(flat, geom.DimXY), geom.DisableAllValidations)
	poly, _ := geom.NewPolygon([]geom.LineString{ring}, geom.DisableAllValidations)
	return poly
}

// ScaleXY scales a point about the origin.
func ScaleXY(xy geom.XY, factor float64) geom.XY {
	return geom.XY{X: xy.X * factor, Y: xy.Y * factor}
}
