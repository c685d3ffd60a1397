// pkg/core/types.go
package core

import geom "github.com/peterstace/simplefeatures/geom"

// Position2D is a point in scene drawing units
type Position2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// XY converts the position to a simplefeatures coordinate.
func (p Position2D) XY() geom.XY {
	return geom.XY{X: p.X, Y: p.Y}
}
