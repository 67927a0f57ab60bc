package shape

import (
	"fmt"
	"math"

	"github.com/yuichi110/drawlib/geom"
)

// Heads selects which ends of an arrow carry a head.
type Heads uint8

const (
	HeadEnd   Heads = iota // "->"
	HeadStart              // "<-"
	HeadBoth               // "<->"
)

func (h Heads) String() string {
	switch h {
	case HeadEnd:
		return "->"
	case HeadStart:
		return "<-"
	case HeadBoth:
		return "<->"
	default:
		return "<unknown Heads>"
	}
}

// ParseHeads reads the arrow notation "->", "<-" or "<->".
func ParseHeads(s string) (Heads, error) {
	switch s {
	case "->":
		return HeadEnd, nil
	case "<-":
		return HeadStart, nil
	case "<->":
		return HeadBoth, nil
	default:
		return 0, fmt.Errorf("shape: arrow heads %q not one of \"->\", \"<-\", \"<->\"", s)
	}
}

// offsetPolyline returns the polyline parallel to pts at signed
// distance d (positive is to the left of travel). Consecutive offset
// segments are re-joined at their analytic line intersection; at
// near-parallel joints the shared offset point is used directly.
func offsetPolyline(pts []geom.Point, d float64) ([]geom.Point, error) {
	normals := make([]geom.Point, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		dir, err := pts[i+1].Sub(pts[i]).Normalized()
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		normals[i] = dir.Perp()
	}

	out := make([]geom.Point, len(pts))
	out[0] = pts[0].Add(normals[0].Scale(d))
	for i := 1; i < len(pts)-1; i++ {
		a0 := pts[i-1].Add(normals[i-1].Scale(d))
		a1 := pts[i].Add(normals[i-1].Scale(d))
		b0 := pts[i].Add(normals[i].Scale(d))
		b1 := pts[i+1].Add(normals[i].Scale(d))
		joint, err := geom.Intersect(a0, a1, b0, b1)
		if err != nil {
			// Collinear segments: both offset lines pass through
			// the same offset vertex.
			joint = a1
		}
		out[i] = joint
	}
	out[len(pts)-1] = pts[len(pts)-1].Add(normals[len(normals)-1].Scale(d))
	return out, nil
}

// appendRounded appends pts to p (continuing the current subpath) with
// quadratic corner cuts of radius r at interior vertices. r == 0
// appends plain line segments.
func appendRounded(p *Path, pts []geom.Point, r float64) {
	if r == 0 || len(pts) < 3 {
		for _, v := range pts {
			p.Line(v)
		}
		return
	}
	p.Line(pts[0])
	for i := 1; i < len(pts)-1; i++ {
		prev, c, next := pts[i-1], pts[i], pts[i+1]
		la, lb := geom.Distance(prev, c), geom.Distance(c, next)
		d := math.Min(r, math.Min(la, lb)/2)
		da, errA := prev.Sub(c).Normalized()
		db, errB := next.Sub(c).Normalized()
		if errA != nil || errB != nil {
			p.Line(c)
			continue
		}
		p.Line(c.Add(da.Scale(d)))
		p.Quad(c, c.Add(db.Scale(d)))
	}
	p.Line(pts[len(pts)-1])
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, v := range pts {
		out[len(pts)-1-i] = v
	}
	return out
}

// ArrowPolyline builds a closed arrow outline along the given
// polyline: a tail of width tailWidth bounded by the two parallel
// offset curves, with triangular heads of the given width and length
// spliced onto the ends selected by heads. r > 0 rounds the tail's
// interior joints.
//
// The polyline must be long enough that the heads do not consume a
// whole end segment.
func ArrowPolyline(pts []geom.Point, tailWidth, headWidth, headLength float64, heads Heads, r float64) (Path, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("shape: arrow: need at least 2 points, got %d", len(pts))
	}
	if tailWidth <= 0 {
		return nil, fmt.Errorf("shape: arrow: tail width %v must be positive", tailWidth)
	}
	if headWidth < tailWidth {
		return nil, fmt.Errorf("shape: arrow: head width %v must be at least tail width %v", headWidth, tailWidth)
	}
	if headLength <= 0 {
		return nil, fmt.Errorf("shape: arrow: head length %v must be positive", headLength)
	}

	// Shorten the spine where a head will sit, so the tail stops at
	// the head's base.
	spine := make([]geom.Point, len(pts))
	copy(spine, pts)
	headAtStart := heads == HeadStart || heads == HeadBoth
	headAtEnd := heads == HeadEnd || heads == HeadBoth

	if headAtStart {
		dir, err := spine[1].Sub(spine[0]).Normalized()
		if err != nil {
			return nil, fmt.Errorf("shape: arrow: %w", err)
		}
		if geom.Distance(spine[0], spine[1]) <= headLength {
			return nil, fmt.Errorf("shape: arrow: first segment shorter than head length %v", headLength)
		}
		spine[0] = spine[0].Add(dir.Scale(headLength))
	}
	if headAtEnd {
		n := len(spine)
		dir, err := spine[n-2].Sub(spine[n-1]).Normalized()
		if err != nil {
			return nil, fmt.Errorf("shape: arrow: %w", err)
		}
		if geom.Distance(spine[n-2], spine[n-1]) <= headLength {
			return nil, fmt.Errorf("shape: arrow: last segment shorter than head length %v", headLength)
		}
		spine[n-1] = spine[n-1].Add(dir.Scale(headLength))
	}

	half := tailWidth / 2
	left, err := offsetPolyline(spine, half)
	if err != nil {
		return nil, fmt.Errorf("shape: arrow: %w", err)
	}
	right, err := offsetPolyline(spine, -half)
	if err != nil {
		return nil, fmt.Errorf("shape: arrow: %w", err)
	}

	n := len(spine)
	startDir, _ := spine[0].Sub(spine[1]).Normalized()   // points out of the start
	endDir, _ := spine[n-1].Sub(spine[n-2]).Normalized() // points out of the end

	var p Path

	// Walk counter-clockwise: up the left side, around the end,
	// down the right side, around the start.
	if headAtStart {
		p.Start(pts[0]) // tip
		p.Line(spine[0].Add(startDir.Perp().Scale(-headWidth / 2)))
		p.Line(left[0])
	} else {
		p.Start(left[0])
	}
	appendRounded(&p, left[1:], r)

	if headAtEnd {
		p.Line(spine[n-1].Add(endDir.Perp().Scale(headWidth / 2)))
		p.Line(pts[len(pts)-1]) // tip
		p.Line(spine[n-1].Add(endDir.Perp().Scale(-headWidth / 2)))
		p.Line(right[n-1])
	} else {
		p.Line(right[n-1])
	}
	appendRounded(&p, reversed(right[:n-1]), r)

	if headAtStart {
		p.Line(spine[0].Add(startDir.Perp().Scale(headWidth / 2)))
	}
	p.Stop(true)
	return p, nil
}

// Arrow builds a straight block arrow from from to to.
func Arrow(from, to geom.Point, tailWidth, headWidth, headLength float64, heads Heads) (Path, error) {
	return ArrowPolyline([]geom.Point{from, to}, tailWidth, headWidth, headLength, heads, 0)
}
