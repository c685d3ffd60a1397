// pkg/core/curve.go
package core

import (
	"github.com/ciss-tools/scenediagram/pkg/geo"
	geom "github.com/peterstace/simplefeatures/geom"
)

// PolyCurve is an open polyline plus the raw attributes of the item it
// was read from.
type PolyCurve struct {
	Coords     []Position2D      `json:"coords"`
	Attributes map[string]string `json:"attributes"`
}

// NewPolyCurve builds a curve from coordinates. The coordinate slice is
// copied; a nil attrs gets its own empty map.
func NewPolyCurve(coords []Position2D, attrs map[string]string) PolyCurve {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	c := make([]Position2D, len(coords))
	copy(c, coords)
	return PolyCurve{Coords: c, Attributes: attrs}
}

// Attr returns a raw item attribute.
func (c PolyCurve) Attr(key string) (string, bool) {
	v, ok := c.Attributes[key]
	return v, ok
}

// LineString derives the curve geometry. Curves with fewer than two
// points, or whose points are all equal, fail here, not at read time.
func (c PolyCurve) LineString() (geom.LineString, error) {
	xys := make([]geom.XY, len(c.Coords))
	for i, p := range c.Coords {
		xys[i] = p.XY()
	}
	return geo.NewLineString(xys)
}

// Scale scales every point about the origin. The attribute map is shared
// with the receiver.
func (c PolyCurve) Scale(factor float64) PolyCurve {
	scaled := make([]Position2D, len(c.Coords))
	for i, p := range c.Coords {
		xy := geo.ScaleXY(p.XY(), factor)
		scaled[i] = Position2D{X: xy.X, Y: xy.Y}
	}
	return PolyCurve{Coords: scaled, Attributes: c.Attributes}
}
