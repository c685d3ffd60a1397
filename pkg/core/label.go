// pkg/core/label.go
package core

import (
	"github.com/ciss-tools/scenediagram/pkg/geo"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Label is a rotated text box placed in the scene
type Label struct {
	PosX  float64 `json:"posX"`
	PosY  float64 `json:"posY"`
	SX    float64 `json:"sX"`
	SY    float64 `json:"sY"`
	Theta float64 `json:"theta"`
	Text  string  `json:"text"`
}

// OuterBox returns the text box footprint.
func (l Label) OuterBox() geom.Polygon {
	return geo.Rectangle(l.PosX, l.PosY, l.SX, l.SY, l.Theta)
}

// OuterCorners returns the corners of OuterBox.
func (l Label) OuterCorners() [4]geom.XY {
	return geo.RectangleCorners(l.PosX, l.PosY, l.SX, l.SY, l.Theta)
}

// Pose returns the label's center and rotation.
func (l Label) Pose() geo.Pose {
	return geo.Pose{X: l.PosX, Y: l.PosY, Theta: l.Theta}
}

// Scale multiplies position and extents by factor.
func (l Label) Scale(factor float64) Label {
	return Label{
		PosX:  l.PosX * factor,
		PosY:  l.PosY * factor,
		SX:    l.SX * factor,
		SY:    l.SY * factor,
		Theta: l.Theta,
		Text:  l.Text,
	}
}
