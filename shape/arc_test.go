package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuichi110/drawlib/geom"
)

// ellipsePoint is the analytic point at deg degrees on the ellipse
// centered at c with radii rx, ry.
func ellipsePoint(c geom.Point, rx, ry, deg float64) geom.Point {
	rad := deg * math.Pi / 180
	return geom.Pt(c.X+rx*math.Cos(rad), c.Y+ry*math.Sin(rad))
}

func firstLast(p Path) (first, last geom.Point) {
	pts := p.Points()
	return pts[0], pts[len(pts)-1]
}

func TestArcEndpointExactness(t *testing.T) {
	center := geom.Pt(50, 50)
	for _, tc := range []struct{ start, end float64 }{
		{0, 90},
		{0, 360},
		{30, 300},
		{-45, 45},
		{10, 700},
		{270, 90}, // start > end wraps through 360
	} {
		p, err := Arc(center, 40, 20, tc.start, tc.end, 0, CenterAlign)
		require.NoError(t, err)

		first, last := firstLast(p)
		end := tc.end
		for tc.start > end {
			end += 360
		}
		wantFirst := ellipsePoint(center, 20, 10, tc.start)
		wantLast := ellipsePoint(center, 20, 10, end)
		assert.InDelta(t, wantFirst.X, first.X, 1e-9, "start %v-%v", tc.start, tc.end)
		assert.InDelta(t, wantFirst.Y, first.Y, 1e-9)
		assert.InDelta(t, wantLast.X, last.X, 1e-9, "end %v-%v", tc.start, tc.end)
		assert.InDelta(t, wantLast.Y, last.Y, 1e-9)
	}
}

func TestArcSplitCount(t *testing.T) {
	p, err := Arc(geom.Pt(0, 0), 10, 10, 0, 90, 0, CenterAlign)
	require.NoError(t, err)
	cubics := 0
	for _, op := range p {
		if _, ok := op.(CubicTo); ok {
			cubics++
		}
	}
	assert.Equal(t, 1, cubics, "90 degrees fits one cubic")

	p, err = Arc(geom.Pt(0, 0), 10, 10, 0, 360, 0, CenterAlign)
	require.NoError(t, err)
	cubics = 0
	for _, op := range p {
		if _, ok := op.(CubicTo); ok {
			cubics++
		}
	}
	assert.Equal(t, 3, cubics, "360 degrees splits into three 120-degree cubics")
}

func TestArcMidpointAccuracy(t *testing.T) {
	// Evaluate the single cubic for a 90 degree circular arc at its
	// parametric midpoint; it must sit on the circle to within a
	// fraction of a percent of the radius.
	p, err := Arc(geom.Pt(0, 0), 200, 200, 0, 90, 0, CenterAlign)
	require.NoError(t, err)

	var start geom.Point
	var cubic CubicTo
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			start = geom.Point(op)
		case CubicTo:
			cubic = op
		}
	}
	// De Casteljau at t = 0.5.
	mid := start.Scale(0.125).
		Add(cubic[0].Scale(0.375)).
		Add(cubic[1].Scale(0.375)).
		Add(cubic[2].Scale(0.125))
	assert.InDelta(t, 100.0, mid.Length(), 0.05)
}

func TestEllipseClosedAndCentered(t *testing.T) {
	p, err := Ellipse(geom.Pt(30, 40), 20, 10, 0, CenterAlign)
	require.NoError(t, err)
	assert.True(t, p.Closed())

	// Starts and ends on the rightmost point of the ellipse.
	first, last := firstLast(p)
	assert.True(t, geom.NearPt(geom.Pt(40, 40), first))
	assert.True(t, geom.NearPt(geom.Pt(40, 40), last))

	// The bounding box of the control polygon contains the ellipse box.
	b := p.Bounds()
	assert.LessOrEqual(t, b.X, 20.0)
	assert.GreaterOrEqual(t, b.X+b.W, 40.0)
	assert.LessOrEqual(t, b.Y, 35.0)
	assert.GreaterOrEqual(t, b.Y+b.H, 45.0)
}

func TestCircle(t *testing.T) {
	p, err := Circle(geom.Pt(0, 0), 5, CenterAlign)
	require.NoError(t, err)
	first, _ := firstLast(p)
	assert.InDelta(t, 5.0, first.Length(), 1e-9, "starts on the circle")

	_, err = Circle(geom.Pt(0, 0), 0, CenterAlign)
	assert.Error(t, err)
}

func TestWedgeClosesThroughCenter(t *testing.T) {
	p, err := Wedge(geom.Pt(0, 0), 20, 20, 0, 90, 0, CenterAlign)
	require.NoError(t, err)
	assert.True(t, p.Closed())
	first, _ := firstLast(p)
	assert.True(t, geom.NearPt(geom.Point{}, first), "starts at the center")
}

func TestArcDegenerate(t *testing.T) {
	_, err := Arc(geom.Pt(0, 0), 0, 10, 0, 90, 0, CenterAlign)
	assert.Error(t, err)
	_, err = Ellipse(geom.Pt(0, 0), 10, 0, 0, CenterAlign)
	assert.Error(t, err)
}
