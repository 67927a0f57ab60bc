package shape

import (
	"fmt"
	"math"

	"github.com/yuichi110/drawlib/geom"
)

// polylinePath builds a path through pts, optionally closed. r > 0
// rounds each interior corner with a corner-cutting transform: the
// vertex is replaced by two points at distance r along each adjacent
// edge, joined by a quadratic whose control is the original vertex.
// r is clamped to half of each adjacent edge so cuts never overlap.
func polylinePath(pts []geom.Point, r float64, closed bool) (Path, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", len(pts))
	}
	if r < 0 {
		return nil, fmt.Errorf("corner radius %v must not be negative", r)
	}
	for i := 1; i < len(pts); i++ {
		if geom.Distance(pts[i-1], pts[i]) < geom.Tol {
			return nil, fmt.Errorf("zero-length segment at index %d", i)
		}
	}

	var p Path
	if r == 0 {
		p.Start(pts[0])
		for _, v := range pts[1:] {
			p.Line(v)
		}
		p.Stop(closed)
		return p, nil
	}

	// cut returns the point at distance d from corner toward other.
	cut := func(corner, other geom.Point, d float64) geom.Point {
		dir, _ := other.Sub(corner).Normalized() // segments checked non-zero above
		return corner.Add(dir.Scale(d))
	}
	radiusAt := func(prev, corner, next geom.Point) float64 {
		d := math.Min(geom.Distance(prev, corner), geom.Distance(corner, next))
		return math.Min(r, d/2)
	}

	n := len(pts)
	if closed {
		// Every vertex is an interior corner.
		last := pts[n-1]
		d0 := radiusAt(last, pts[0], pts[1])
		p.Start(cut(pts[0], pts[1], d0))
		for i := 1; i <= n; i++ {
			corner := pts[i%n]
			prev := pts[(i-1)%n]
			next := pts[(i+1)%n]
			d := radiusAt(prev, corner, next)
			p.Line(cut(corner, prev, d))
			p.Quad(corner, cut(corner, next, d))
		}
		p.Stop(true)
		return p, nil
	}

	p.Start(pts[0])
	for i := 1; i < n-1; i++ {
		d := radiusAt(pts[i-1], pts[i], pts[i+1])
		p.Line(cut(pts[i], pts[i-1], d))
		p.Quad(pts[i], cut(pts[i], pts[i+1], d))
	}
	p.Line(pts[n-1])
	return p, nil
}

// Polyline builds an open path through pts with optional corner
// rounding r.
func Polyline(pts []geom.Point, r float64) (Path, error) {
	p, err := polylinePath(pts, r, false)
	if err != nil {
		return nil, fmt.Errorf("shape: polyline: %w", err)
	}
	return p, nil
}

// SmoothPolyline builds an open path through pts where every interior
// vertex is smoothed by a quadratic through the vertex, cutting each
// adjacent edge at the given fraction bend in (0, 0.5].
func SmoothPolyline(pts []geom.Point, bend float64) (Path, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("shape: smooth polyline: need at least 2 points, got %d", len(pts))
	}
	if bend <= 0 || bend > 0.5 {
		return nil, fmt.Errorf("shape: smooth polyline: bend %v out of range (0, 0.5]", bend)
	}
	// Corner cutting with a per-vertex radius proportional to the
	// shorter adjacent edge.
	var p Path
	p.Start(pts[0])
	for i := 1; i < len(pts)-1; i++ {
		a, c, b := pts[i-1], pts[i], pts[i+1]
		la, lb := geom.Distance(a, c), geom.Distance(c, b)
		if la < geom.Tol || lb < geom.Tol {
			return nil, fmt.Errorf("shape: smooth polyline: zero-length segment at index %d", i)
		}
		d := bend * math.Min(la, lb)
		da, _ := a.Sub(c).Normalized()
		db, _ := b.Sub(c).Normalized()
		p.Line(c.Add(da.Scale(d)))
		p.Quad(c, c.Add(db.Scale(d)))
	}
	p.Line(pts[len(pts)-1])
	return p, nil
}

// CurvePoint is one caller-supplied element of a mixed straight/curved
// path: 1 point is a line-to, 2 points a quadratic (control, end),
// 3 points a cubic (control, control, end).
type CurvePoint struct {
	Points []geom.Point
}

// LineToPoint wraps a single endpoint.
func LineToPoint(end geom.Point) CurvePoint { return CurvePoint{[]geom.Point{end}} }

// QuadToPoint wraps a quadratic control and endpoint.
func QuadToPoint(ctrl, end geom.Point) CurvePoint {
	return CurvePoint{[]geom.Point{ctrl, end}}
}

// CubicToPoint wraps two cubic controls and an endpoint.
func CubicToPoint(c1, c2, end geom.Point) CurvePoint {
	return CurvePoint{[]geom.Point{c1, c2, end}}
}

// CurvedPolyline builds an open path starting at start and following
// the caller-supplied segments. Elements with a point count other than
// 1, 2 or 3 are malformed and rejected.
func CurvedPolyline(start geom.Point, segments []CurvePoint) (Path, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("shape: curved polyline: no segments")
	}
	var p Path
	p.Start(start)
	for i, seg := range segments {
		switch len(seg.Points) {
		case 1:
			p.Line(seg.Points[0])
		case 2:
			p.Quad(seg.Points[0], seg.Points[1])
		case 3:
			p.Cubic(seg.Points[0], seg.Points[1], seg.Points[2])
		default:
			return nil, fmt.Errorf("shape: curved polyline: segment %d has %d points, want 1, 2 or 3",
				i, len(seg.Points))
		}
	}
	return p, nil
}
