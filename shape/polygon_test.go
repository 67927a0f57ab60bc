package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuichi110/drawlib/geom"
)

func assertVertices(t *testing.T, p Path, want []geom.Point) {
	t.Helper()
	got := p.Points()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, geom.NearPt(want[i], got[i]), "vertex %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestPolygonFollowsVertices(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	p, err := Polygon(pts, 0, 0)
	require.NoError(t, err)
	assert.True(t, p.Closed())
	assertVertices(t, p, pts)
}

func TestPolygonRotatesAboutBBoxCenter(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	p, err := Polygon(pts, 0, 90)
	require.NoError(t, err)
	// A square rotated 90 degrees about its center maps onto itself;
	// the bounding box is unchanged.
	b := p.Bounds()
	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.InDelta(t, 10, b.W, 1e-9)
	assert.InDelta(t, 10, b.H, 1e-9)
}

func TestPolygonRounded(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	p, err := Polygon(pts, 2, 0)
	require.NoError(t, err)
	quads := 0
	for _, op := range p {
		if _, ok := op.(QuadTo); ok {
			quads++
		}
	}
	assert.Equal(t, 4, quads, "one rounded joint per vertex")
	assert.True(t, p.Closed())
}

func TestPolygonErrors(t *testing.T) {
	_, err := Polygon([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)}, 0, 0)
	assert.Error(t, err, "two vertices are not a polygon")

	_, err = Polygon([]geom.Point{geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(1, 1)}, 0, 0)
	assert.Error(t, err, "repeated vertex makes a zero-length segment")
}

func TestRegularPolygonVertices(t *testing.T) {
	p, err := RegularPolygon(geom.Pt(0, 0), 4, 20, 20, 0, CenterAlign)
	require.NoError(t, err)
	assertVertices(t, p, []geom.Point{
		geom.Pt(0, 10),
		geom.Pt(-10, 0),
		geom.Pt(0, -10),
		geom.Pt(10, 0),
	})
	assert.True(t, p.Closed())
}

func TestRegularPolygonErrors(t *testing.T) {
	_, err := RegularPolygon(geom.Pt(0, 0), 2, 20, 20, 0, CenterAlign)
	assert.Error(t, err)
	_, err = RegularPolygon(geom.Pt(0, 0), 5, 0, 20, 0, CenterAlign)
	assert.Error(t, err)
}

func TestStarVertices(t *testing.T) {
	p, err := Star(geom.Pt(0, 0), 4, 20, 20, 0.5, 0, CenterAlign)
	require.NoError(t, err)
	pts := p.Points()
	require.Len(t, pts, 8)
	// Outer and inner radii alternate.
	for i, v := range pts {
		want := 10.0
		if i%2 == 1 {
			want = 5.0
		}
		assert.InDelta(t, want, v.Length(), 1e-9, "vertex %d", i)
	}
	// First outer vertex at the top, first inner vertex 45 degrees on.
	assert.True(t, geom.NearPt(geom.Pt(0, 10), pts[0]))
	assert.InDelta(t, 135, geom.AngleDeg(geom.Point{}, pts[1]), 1e-9)
}

func TestStarErrors(t *testing.T) {
	_, err := Star(geom.Pt(0, 0), 5, 20, 20, 0, 0, CenterAlign)
	assert.Error(t, err, "inner ratio 0 collapses the inner ring")
	_, err = Star(geom.Pt(0, 0), 5, 20, 20, 1, 0, CenterAlign)
	assert.Error(t, err, "inner ratio 1 makes a regular polygon")
	_, err = Star(geom.Pt(0, 0), 2, 20, 20, 0.5, 0, CenterAlign)
	assert.Error(t, err)
}

func TestTriangle(t *testing.T) {
	p, err := Triangle(geom.Pt(0, 0), 10, 6, 0.5, 0, CenterAlign)
	require.NoError(t, err)
	assertVertices(t, p, []geom.Point{
		geom.Pt(-5, -3),
		geom.Pt(0, 3),
		geom.Pt(5, -3),
	})

	// topRatio 0 puts the apex above the left base corner.
	p, err = Triangle(geom.Pt(0, 0), 10, 6, 0, 0, CenterAlign)
	require.NoError(t, err)
	assert.True(t, geom.NearPt(geom.Pt(-5, 3), p.Points()[1]))

	_, err = Triangle(geom.Pt(0, 0), 10, 6, 1.5, 0, CenterAlign)
	assert.Error(t, err)
}

func TestParallelogram(t *testing.T) {
	p, err := Parallelogram(geom.Pt(0, 0), 10, 6, 4, 0, CenterAlign)
	require.NoError(t, err)
	// The sheared box spans w+shear; bounds stay centered.
	b := p.Bounds()
	assert.InDelta(t, 14, b.W, 1e-9)
	assert.InDelta(t, 6, b.H, 1e-9)
	assert.InDelta(t, -7, b.X, 1e-9)
	assert.InDelta(t, -3, b.Y, 1e-9)

	_, err = Parallelogram(geom.Pt(0, 0), 0, 6, 4, 0, CenterAlign)
	assert.Error(t, err)
}

func TestTrapezoid(t *testing.T) {
	p, err := Trapezoid(geom.Pt(0, 0), 10, 6, 4, 0, CenterAlign)
	require.NoError(t, err)
	assertVertices(t, p, []geom.Point{
		geom.Pt(-5, -2),
		geom.Pt(-3, 2),
		geom.Pt(3, 2),
		geom.Pt(5, -2),
	})

	_, err = Trapezoid(geom.Pt(0, 0), 10, -1, 4, 0, CenterAlign)
	assert.Error(t, err)
}

func TestChevron(t *testing.T) {
	p, err := Chevron(geom.Pt(0, 0), 10, 6, 2, 0, CenterAlign)
	require.NoError(t, err)
	assertVertices(t, p, []geom.Point{
		geom.Pt(-5, -3),
		geom.Pt(-3, 0),
		geom.Pt(-5, 3),
		geom.Pt(3, 3),
		geom.Pt(5, 0),
		geom.Pt(3, -3),
	})

	_, err = Chevron(geom.Pt(0, 0), 10, 6, 10, 0, CenterAlign)
	assert.Error(t, err, "depth must stay below the width")
}
