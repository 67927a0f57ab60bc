// Package shape converts declarative shape parameters into explicit
// path segment sequences: straight, quadratic or cubic segments in
// final canvas coordinates. Higher layers only ever hand finished
// paths to a rendering backend.
package shape

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/yuichi110/drawlib/geom"
)

// Adder accumulates path commands in the backend's fixed-point format.
// rasterx fillers and dashers satisfy it directly.
type Adder interface {
	// Start starts a new subpath at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment from the current point to b.
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic bezier curve to the path.
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path.
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop closes the subpath to its start point if closeLoop is set.
	Stop(closeLoop bool)
}

// Op is one path command.
type Op interface {
	// addTo replays the command on a, applying the device transform m.
	addTo(a Adder, m geom.Matrix2D)
	// points appends the command's vertices and control points.
	points(dst []geom.Point) []geom.Point
	// transform returns the command with m applied to every point.
	transform(m geom.Matrix2D) Op
}

type MoveTo geom.Point

type LineTo geom.Point

type QuadTo [2]geom.Point

type CubicTo [3]geom.Point

type Close struct{}

func (op MoveTo) addTo(a Adder, m geom.Matrix2D) {
	a.Stop(false) // implicit close if currently in path
	a.Start(m.ToFixed(geom.Point(op)))
}

func (op LineTo) addTo(a Adder, m geom.Matrix2D) {
	a.Line(m.ToFixed(geom.Point(op)))
}

func (op QuadTo) addTo(a Adder, m geom.Matrix2D) {
	a.QuadBezier(m.ToFixed(op[0]), m.ToFixed(op[1]))
}

func (op CubicTo) addTo(a Adder, m geom.Matrix2D) {
	a.CubeBezier(m.ToFixed(op[0]), m.ToFixed(op[1]), m.ToFixed(op[2]))
}

func (op Close) addTo(a Adder, _ geom.Matrix2D) {
	a.Stop(true)
}

func (op MoveTo) points(dst []geom.Point) []geom.Point { return append(dst, geom.Point(op)) }
func (op LineTo) points(dst []geom.Point) []geom.Point { return append(dst, geom.Point(op)) }
func (op QuadTo) points(dst []geom.Point) []geom.Point { return append(dst, op[0], op[1]) }
func (op CubicTo) points(dst []geom.Point) []geom.Point {
	return append(dst, op[0], op[1], op[2])
}
func (op Close) points(dst []geom.Point) []geom.Point { return dst }

func (op MoveTo) transform(m geom.Matrix2D) Op { return MoveTo(m.Transform(geom.Point(op))) }
func (op LineTo) transform(m geom.Matrix2D) Op { return LineTo(m.Transform(geom.Point(op))) }
func (op QuadTo) transform(m geom.Matrix2D) Op {
	return QuadTo{m.Transform(op[0]), m.Transform(op[1])}
}
func (op CubicTo) transform(m geom.Matrix2D) Op {
	return CubicTo{m.Transform(op[0]), m.Transform(op[1]), m.Transform(op[2])}
}
func (op Close) transform(geom.Matrix2D) Op { return op }

// Path is an ordered sequence of path commands. Once a builder returns
// it, every point is in final canvas coordinates; consumers apply only
// the device transform.
type Path []Op

// Start starts a new subpath at the given point.
func (p *Path) Start(a geom.Point) { *p = append(*p, MoveTo(a)) }

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b geom.Point) { *p = append(*p, LineTo(b)) }

// Quad adds a quadratic segment to the current subpath.
func (p *Path) Quad(ctrl, end geom.Point) { *p = append(*p, QuadTo{ctrl, end}) }

// Cubic adds a cubic segment to the current subpath.
func (p *Path) Cubic(c1, c2, end geom.Point) { *p = append(*p, CubicTo{c1, c2, end}) }

// Stop closes the current subpath if closeLoop is set.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Append concatenates q onto p.
func (p *Path) Append(q Path) { *p = append(*p, q...) }

// AddTo replays the path on the adder, applying the device transform m
// to every point.
func (p Path) AddTo(a Adder, m geom.Matrix2D) {
	for _, op := range p {
		op.addTo(a, m)
	}
	a.Stop(false)
}

// Transform returns a copy of the path with m applied to every vertex
// and control point.
func (p Path) Transform(m geom.Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		out[i] = op.transform(m)
	}
	return out
}

// Rotate returns the path rotated by deg degrees counter-clockwise
// around center.
func (p Path) Rotate(center geom.Point, deg float64) Path {
	if deg == 0 {
		return p.Transform(geom.Identity)
	}
	m := geom.Identity.Translate(center.X, center.Y).RotateDeg(deg).Translate(-center.X, -center.Y)
	return p.Transform(m)
}

// Points returns every vertex and control point of the path.
func (p Path) Points() []geom.Point {
	var out []geom.Point
	for _, op := range p {
		out = op.points(out)
	}
	return out
}

// Bounds returns the bounding rectangle of the path's vertices and
// control points. Control points over-estimate curve extent slightly;
// that is fine for the margin and grid consumers.
func (p Path) Bounds() geom.Rect { return geom.BoundsOf(p.Points()) }

// Closed reports whether the path ends with a Close command.
func (p Path) Closed() bool {
	if len(p) == 0 {
		return false
	}
	_, ok := p[len(p)-1].(Close)
	return ok
}

// String renders the path in SVG path syntax, for debugging and tests.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%.3f,%.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%.3f,%.3f", op.X, op.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%.3f,%.3f,%.3f,%.3f", op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%.3f,%.3f,%.3f,%.3f,%.3f,%.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}
