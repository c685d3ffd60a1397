package geo

import (
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
)

// NewLineString builds a geom.LineString from an ordered list of points.
// Besides the two-point minimum, simplefeatures validation applies: a line
// whose points are all equal is rejected.
func NewLineString(xys []geom.XY) (geom.LineString, error) {
	if len(xys) < 2 {
		return geom.LineString{}, fmt.Errorf("%w, got %d", ErrTooFewPoints, len(xys))
	}

	flatCoords := make([]float64, 0, len(xys)*2)
	for _, xy := range xys {
		flatCoords = append(flatCoords, xy.X, xy.Y)
	}

	seq := geom.NewSequence(flatCoords, geom.DimXY)
	ls, err := geom.NewLineString(seq)
	if err != nil {
		return geom.LineString{}, fmt.Errorf("invalid line string: %w", err)
	}
	return ls, nil
}
