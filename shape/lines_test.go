package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuichi110/drawlib/geom"
)

func TestPolyline(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	p, err := Polyline(pts, 0)
	require.NoError(t, err)
	assert.False(t, p.Closed())
	assertVertices(t, p, pts)
}

func TestPolylineRoundedCorner(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	p, err := Polyline(pts, 2)
	require.NoError(t, err)
	// The corner is cut 2 units along each adjacent edge, joined by a
	// quadratic through the original vertex.
	assertVertices(t, p, []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(8, 0),
		geom.Pt(10, 0), // quad control is the vertex itself
		geom.Pt(10, 2),
		geom.Pt(10, 10),
	})
}

func TestPolylineRadiusClamped(t *testing.T) {
	// Edges of length 2 cap the cut at 1, whatever r says.
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2)}
	p, err := Polyline(pts, 50)
	require.NoError(t, err)
	got := p.Points()
	assert.True(t, geom.NearPt(geom.Pt(1, 0), got[1]))
	assert.True(t, geom.NearPt(geom.Pt(2, 1), got[3]))
}

func TestPolylineErrors(t *testing.T) {
	_, err := Polyline([]geom.Point{geom.Pt(0, 0)}, 0)
	assert.Error(t, err)
	_, err = Polyline([]geom.Point{geom.Pt(0, 0), geom.Pt(0, 0)}, 0)
	assert.Error(t, err, "zero-length segment")
	_, err = Polyline([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0)}, -1)
	assert.Error(t, err, "negative radius")
}

func TestSmoothPolyline(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	p, err := SmoothPolyline(pts, 0.25)
	require.NoError(t, err)
	// bend 0.25 of the 10-unit edges cuts 2.5 from the corner.
	assertVertices(t, p, []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(7.5, 0),
		geom.Pt(10, 0),
		geom.Pt(10, 2.5),
		geom.Pt(10, 10),
	})
}

func TestSmoothPolylineBendRange(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	for _, bend := range []float64{0, -0.1, 0.6} {
		_, err := SmoothPolyline(pts, bend)
		assert.Error(t, err, "bend %v", bend)
	}
	_, err := SmoothPolyline(pts, 0.5)
	assert.NoError(t, err, "bend 0.5 is the inclusive maximum")
}

func TestCurvedPolyline(t *testing.T) {
	p, err := CurvedPolyline(geom.Pt(0, 0), []CurvePoint{
		LineToPoint(geom.Pt(10, 0)),
		QuadToPoint(geom.Pt(15, 5), geom.Pt(10, 10)),
		CubicToPoint(geom.Pt(5, 15), geom.Pt(0, 15), geom.Pt(0, 10)),
	})
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.IsType(t, MoveTo{}, p[0])
	assert.IsType(t, LineTo{}, p[1])
	assert.IsType(t, QuadTo{}, p[2])
	assert.IsType(t, CubicTo{}, p[3])
}

func TestCurvedPolylineErrors(t *testing.T) {
	_, err := CurvedPolyline(geom.Pt(0, 0), nil)
	assert.Error(t, err, "no segments")

	_, err = CurvedPolyline(geom.Pt(0, 0), []CurvePoint{
		{Points: []geom.Point{geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0), geom.Pt(4, 0)}},
	})
	assert.Error(t, err, "4-point segment is malformed")

	_, err = CurvedPolyline(geom.Pt(0, 0), []CurvePoint{{}})
	assert.Error(t, err, "empty segment is malformed")
}
