// Package geom provides the scalar and vector primitives shared by the
// path builders and the drawing surface: points, rectangles and
// degree-based rotation helpers.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tol is the absolute tolerance used by Near and NearPt.
const Tol = 1e-9

// Point is a location or vector in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Length is the distance from the origin.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Normalized returns the unit vector in the direction of p.
// A zero-length vector has no direction and is reported as an error.
func (p Point) Normalized() (Point, error) {
	l := p.Length()
	if l < Tol {
		return Point{}, fmt.Errorf("geom: cannot normalize zero-length vector %v", p)
	}
	return Point{p.X / l, p.Y / l}, nil
}

// Perp returns p turned 90 degrees counter-clockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

func (p Point) String() string { return fmt.Sprintf("(%.3f,%.3f)", p.X, p.Y) }

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 { return b.Sub(a).Length() }

// AngleDeg returns the angle of the vector from a to b,
// in degrees counter-clockwise from the positive x axis, in [0, 360).
func AngleDeg(a, b Point) float64 {
	d := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	if d < 0 {
		d += 360
	}
	return d
}

// Rotate returns p rotated by deg degrees counter-clockwise around center.
func (p Point) Rotate(center Point, deg float64) Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// Near reports whether a and b are equal within Tol.
func Near(a, b float64) bool { return scalar.EqualWithinAbs(a, b, Tol) }

// NearPt reports whether both coordinates of a and b are equal within Tol.
func NearPt(a, b Point) bool { return Near(a.X, b.X) && Near(a.Y, b.Y) }

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Union returns the smallest rectangle covering both r and s.
// An empty rectangle (zero W and H at the origin) is treated as "no extent".
func (r Rect) Union(s Rect) Rect {
	if r == (Rect{}) {
		return s
	}
	if s == (Rect{}) {
		return r
	}
	minX := math.Min(r.X, s.X)
	minY := math.Min(r.Y, s.Y)
	maxX := math.Max(r.X+r.W, s.X+s.W)
	maxY := math.Max(r.Y+r.H, s.Y+s.H)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// BoundsOf returns the bounding rectangle of the given points.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// CenterOf returns the centroid of the bounding box of the given points.
func CenterOf(pts []Point) Point { return BoundsOf(pts).Center() }

// Intersect returns the intersection of the infinite lines through
// p1-p2 and p3-p4. Parallel (or coincident) lines have no single
// intersection and are reported as an error.
func Intersect(p1, p2, p3, p4 Point) (Point, error) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < Tol {
		return Point{}, fmt.Errorf("geom: lines %v-%v and %v-%v are parallel", p1, p2, p3, p4)
	}
	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / denom
	return p1.Add(d1.Scale(t)), nil
}
