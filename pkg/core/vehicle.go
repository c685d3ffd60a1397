// pkg/core/vehicle.go
package core

import (
	"github.com/ciss-tools/scenediagram/pkg/geo"
	geom "github.com/peterstace/simplefeatures/geom"
)

// GosModel represents a road vehicle outline.
// PX/PY is the center, SX/SY the outer footprint and BsX/BsY the
// border-inset footprint. T is the heading in radians.
type GosModel struct {
	Name   string  `json:"name"`
	DmgIdx int     `json:"dmgIdx"`
	T      float64 `json:"t"`
	PX     float64 `json:"pX"`
	PY     float64 `json:"pY"`
	SX     float64 `json:"sX"`
	SY     float64 `json:"sY"`
	BsX    float64 `json:"bsX"`
	BsY    float64 `json:"bsY"`
}

// OuterBox returns the full vehicle footprint.
func (m GosModel) OuterBox() geom.Polygon {
	return geo.Rectangle(m.PX, m.PY, m.SX, m.SY, m.T)
}

// InnerBox returns the border-inset footprint.
func (m GosModel) InnerBox() geom.Polygon {
	return geo.Rectangle(m.PX, m.PY, m.BsX, m.BsY, m.T)
}

// OuterCorners returns the corners of OuterBox.
func (m GosModel) OuterCorners() [4]geom.XY {
	return geo.RectangleCorners(m.PX, m.PY, m.SX, m.SY, m.T)
}

// InnerCorners returns the corners of InnerBox.
func (m GosModel) InnerCorners() [4]geom.XY {
	return geo.RectangleCorners(m.PX, m.PY, m.BsX, m.BsY, m.T)
}

// CenterCoordinates returns center x, center y and heading.
func (m GosModel) CenterCoordinates() (x, y, t float64) {
	return m.PX, m.PY, m.T
}

// Pose returns the vehicle's center and heading.
func (m GosModel) Pose() geo.Pose {
	return geo.Pose{X: m.PX, Y: m.PY, Theta: m.T}
}

// Scale multiplies position and extents by factor. Heading, name and
// damage index are kept.
func (m GosModel) Scale(factor float64) GosModel {
	return GosModel{
		Name:   m.Name,
		DmgIdx: m.DmgIdx,
		T:      m.T,
		PX:     m.PX * factor,
		PY:     m.PY * factor,
		SX:     m.SX * factor,
		SY:     m.SY * factor,
		BsX:    m.BsX * factor,
		BsY:    m.BsY * factor,
	}
}
