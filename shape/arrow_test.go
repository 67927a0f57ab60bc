package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuichi110/drawlib/geom"
)

func TestParseHeads(t *testing.T) {
	for s, want := range map[string]Heads{
		"->":  HeadEnd,
		"<-":  HeadStart,
		"<->": HeadBoth,
	} {
		got, err := ParseHeads(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := ParseHeads(">>")
	assert.Error(t, err)
}

func TestArrowRight(t *testing.T) {
	p, err := Arrow(geom.Pt(0, 0), geom.Pt(10, 0), 2, 4, 3, HeadEnd)
	require.NoError(t, err)
	assert.True(t, p.Closed())
	// Tail stops 3 units short of the tip; the head flares to the full
	// head width at its base.
	assertVertices(t, p, []geom.Point{
		geom.Pt(0, 1),
		geom.Pt(7, 1),
		geom.Pt(7, 2),
		geom.Pt(10, 0), // tip
		geom.Pt(7, -2),
		geom.Pt(7, -1),
		geom.Pt(0, -1),
	})
}

func TestArrowBothHeads(t *testing.T) {
	p, err := Arrow(geom.Pt(0, 0), geom.Pt(10, 0), 2, 4, 3, HeadBoth)
	require.NoError(t, err)
	assertVertices(t, p, []geom.Point{
		geom.Pt(0, 0), // start tip
		geom.Pt(3, 2),
		geom.Pt(3, 1),
		geom.Pt(7, 1),
		geom.Pt(7, 2),
		geom.Pt(10, 0), // end tip
		geom.Pt(7, -2),
		geom.Pt(7, -1),
		geom.Pt(3, -1),
		geom.Pt(3, -2),
	})
}

func TestArrowStartHeadOnly(t *testing.T) {
	p, err := Arrow(geom.Pt(0, 0), geom.Pt(10, 0), 2, 4, 3, HeadStart)
	require.NoError(t, err)
	got := p.Points()
	assert.True(t, geom.NearPt(geom.Pt(0, 0), got[0]), "starts at the tip")
	// The flat end keeps the tail width.
	assert.True(t, geom.NearPt(geom.Pt(10, 1), got[3]))
	assert.True(t, geom.NearPt(geom.Pt(10, -1), got[4]))
}

func TestArrowPolylineBend(t *testing.T) {
	// Right-angle bend: the outer offset corner re-intersects at
	// (11, 1), the inner at (9, -1)... relative to travel. With the
	// bend turning up, left of travel flips from +y to -x.
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	p, err := ArrowPolyline(pts, 2, 4, 3, HeadEnd, 0)
	require.NoError(t, err)
	got := p.Points()

	// Left side: along y=1 then x=9, meeting at (9, 1).
	assert.True(t, geom.NearPt(geom.Pt(0, 1), got[0]))
	assert.True(t, geom.NearPt(geom.Pt(9, 1), got[1]))
	// Tip at the real endpoint.
	tip := geom.Pt(10, 10)
	found := false
	for _, v := range got {
		if geom.NearPt(tip, v) {
			found = true
		}
	}
	assert.True(t, found, "tip %v present", tip)
	// Right side corner re-intersects at (11, -1).
	foundOuter := false
	for _, v := range got {
		if geom.NearPt(geom.Pt(11, -1), v) {
			foundOuter = true
		}
	}
	assert.True(t, foundOuter, "outer corner (11,-1) present")
}

func TestArrowErrors(t *testing.T) {
	_, err := Arrow(geom.Pt(0, 0), geom.Pt(10, 0), 0, 4, 3, HeadEnd)
	assert.Error(t, err, "tail width must be positive")

	_, err = Arrow(geom.Pt(0, 0), geom.Pt(10, 0), 4, 2, 3, HeadEnd)
	assert.Error(t, err, "head narrower than tail")

	_, err = Arrow(geom.Pt(0, 0), geom.Pt(10, 0), 2, 4, 0, HeadEnd)
	assert.Error(t, err, "head length must be positive")

	_, err = Arrow(geom.Pt(0, 0), geom.Pt(2, 0), 2, 4, 3, HeadEnd)
	assert.Error(t, err, "head longer than the arrow")

	_, err = Arrow(geom.Pt(0, 0), geom.Pt(0, 0), 2, 4, 3, HeadEnd)
	assert.Error(t, err, "degenerate spine")

	_, err = ArrowPolyline([]geom.Point{geom.Pt(0, 0)}, 2, 4, 3, HeadEnd, 0)
	assert.Error(t, err, "single point")
}

func TestOffsetPolylineCollinear(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(10, 0)}
	out, err := offsetPolyline(pts, 1)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, v := range out {
		assert.InDelta(t, 1.0, v.Y, 1e-9, "point %d", i)
	}
}
