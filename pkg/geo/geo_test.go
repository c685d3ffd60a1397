package geo

import (
	"math"
	"testing"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func dist(a, b geom.XY) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestPose_XY(t *testing.T) {
	x, y := Pose{X: 1.5, Y: -2, Theta: math.Pi}.XY()
	assert.Equal(t, 1.5, x)
	assert.Equal(t, -2.0, y)
}

func TestRectangleCorners_ZeroAngle(t *testing.T) {
	c := RectangleCorners(10, 20, 4, 2, 0)

	assert.Equal(t, geom.XY{X: 8, Y: 19}, c[0])
	assert.Equal(t, geom.XY{X: 12, Y: 19}, c[1])
	assert.Equal(t, geom.XY{X: 12, Y: 21}, c[2])
	assert.Equal(t, geom.XY{X: 8, Y: 21}, c[3])
}

func TestRectangleCorners_QuarterTurnIsCounterClockwise(t *testing.T) {
	// a 4x2 box turned by +90deg about its center becomes 2x4
	c := RectangleCorners(0, 0, 4, 2, math.Pi/2)

	assert.InDelta(t, 1.0, c[0].X, eps)
	assert.InDelta(t, -2.0, c[0].Y, eps)
	assert.InDelta(t, 1.0, c[1].X, eps)
	assert.InDelta(t, 2.0, c[1].Y, eps)
	assert.InDelta(t, -1.0, c[2].X, eps)
	assert.InDelta(t, 2.0, c[2].Y, eps)
	assert.InDelta(t, -1.0, c[3].X, eps)
	assert.InDelta(t, -2.0, c[3].Y, eps)
}

func TestRectangleCorners_RotatesAboutOwnCenter(t *testing.T) {
	for _, theta := range []float64{0, 0.3, 1, math.Pi, -2.5, 7} {
		c := RectangleCorners(100, -50, 6, 3, theta)

		var sx, sy float64
		for _, xy := range c {
			sx += xy.X
			sy += xy.Y
		}
		assert.InDelta(t, 100.0, sx/4, eps, "theta=%v", theta)
		assert.InDelta(t, -50.0, sy/4, eps, "theta=%v", theta)

		// side lengths survive rotation
		assert.InDelta(t, 6.0, dist(c[0], c[1]), eps)
		assert.InDelta(t, 3.0, dist(c[1], c[2]), eps)
	}
}

func TestRectangle_ClosedRing(t *testing.T) {
	poly := Rectangle(1, 1, 2, 2, 0.4)
	seq := poly.ExteriorRing().Coordinates()

	require.Equal(t, 5, seq.Length())
	assert.Equal(t, seq.GetXY(0), seq.GetXY(4))

	corners := RectangleCorners(1, 1, 2, 2, 0.4)
	for i, want := range corners {
		assert.Equal(t, want, seq.GetXY(i))
	}
}

func TestRectangle_CentroidAndArea(t *testing.T) {
	poly := Rectangle(3, 4, 5, 2, 1.1)

	centroid, ok := poly.Centroid().XY()
	require.True(t, ok)
	assert.InDelta(t, 3.0, centroid.X, eps)
	assert.InDelta(t, 4.0, centroid.Y, eps)
	assert.InDelta(t, 10.0, poly.Area(), eps)
}

func TestRectangle_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"zero both", 0, 0},
		{"negative width", -2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var poly geom.Polygon
			require.NotPanics(t, func() {
				poly = Rectangle(1, 2, tt.w, tt.h, 0.5)
			})

			seq := poly.ExteriorRing().Coordinates()
			require.Equal(t, 5, seq.Length())
			corners := RectangleCorners(1, 2, tt.w, tt.h, 0.5)
			for i, want := range corners {
				assert.Equal(t, want, seq.GetXY(i))
			}
		})
	}

	c := RectangleCorners(0, 0, -2, 2, 0)
	assert.Equal(t, geom.XY{X: 1, Y: -1}, c[0])
}

func TestScaleXY(t *testing.T) {
	assert.Equal(t, geom.XY{X: 3, Y: -6}, ScaleXY(geom.XY{X: 1, Y: -2}, 3))
	assert.Equal(t, geom.XY{}, ScaleXY(geom.XY{X: 1, Y: -2}, 0))
}
