package shape

import (
	"fmt"
	"math"

	"github.com/yuichi110/drawlib/geom"
)

// maxArcSweep is the widest sub-arc approximated by a single cubic.
// At 135 degrees the radial error of the tangent-length construction
// is still well under a thousandth of the radius.
const maxArcSweep = 135.0

// arcSegments appends the cubic bezier approximation of the elliptical
// arc from angleStart to angleEnd (degrees, counter-clockwise) on the
// axis-aligned ellipse centered at the origin with radii rx, ry.
// If start is set, the arc begins with a MoveTo at the start point.
//
// When angleStart > angleEnd, the sweep is treated as continuing past
// 360 degrees; no other normalization is applied.
func arcSegments(p *Path, rx, ry, angleStart, angleEnd float64, start bool) {
	for angleStart > angleEnd {
		angleEnd += 360
	}

	point := func(deg float64) geom.Point {
		rad := deg * math.Pi / 180
		return geom.Pt(rx*math.Cos(rad), ry*math.Sin(rad))
	}
	tangent := func(deg float64) geom.Point {
		rad := deg * math.Pi / 180
		return geom.Pt(-rx*math.Sin(rad), ry*math.Cos(rad))
	}

	sweep := angleEnd - angleStart
	segs := int(sweep/maxArcSweep) + 1
	dTheta := sweep / float64(segs)
	// Tangent length for a single-cubic arc span.
	k := 4.0 / 3.0 * math.Tan(dTheta*math.Pi/180/4)

	if start {
		p.Start(point(angleStart))
	}
	for i := 1; i <= segs; i++ {
		a0 := angleStart + dTheta*float64(i-1)
		a1 := angleStart + dTheta*float64(i)
		p0, p1 := point(a0), point(a1)
		c1 := p0.Add(tangent(a0).Scale(k))
		c2 := p1.Sub(tangent(a1).Scale(k))
		p.Cubic(c1, c2, p1)
	}
}

// Arc builds the open elliptical arc path inscribed in a box of the
// given size anchored at xy. angleStart and angleEnd are in degrees
// counter-clockwise from the positive x axis; a start angle greater
// than the end angle sweeps through 360. angle rotates the whole arc
// about the box center.
func Arc(xy geom.Point, w, h, angleStart, angleEnd, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: arc: width %v and height %v must be positive", w, h)
	}
	center := AnchorCenter(xy, w, h, align)

	var p Path
	arcSegments(&p, w/2, h/2, angleStart, angleEnd, true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Ellipse builds a closed ellipse path inscribed in a box of the given
// size anchored at xy and rotated by angle degrees about its center.
func Ellipse(xy geom.Point, w, h, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: ellipse: width %v and height %v must be positive", w, h)
	}
	center := AnchorCenter(xy, w, h, align)

	var p Path
	arcSegments(&p, w/2, h/2, 0, 360, true)
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Circle builds a closed circle path of the given radius anchored at
// xy (the center, unless align overrides it).
func Circle(xy geom.Point, radius float64, align Align) (Path, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("shape: circle: radius %v must be positive", radius)
	}
	return Ellipse(xy, radius*2, radius*2, 0, align)
}

// Wedge builds a closed pie-slice path: the elliptical arc from
// angleStart to angleEnd joined to the box center.
func Wedge(xy geom.Point, w, h, angleStart, angleEnd, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: wedge: width %v and height %v must be positive", w, h)
	}
	center := AnchorCenter(xy, w, h, align)

	var p Path
	p.Start(geom.Point{})
	rad := angleStart * math.Pi / 180
	p.Line(geom.Pt(w/2*math.Cos(rad), h/2*math.Sin(rad)))
	arcSegments(&p, w/2, h/2, angleStart, angleEnd, false)
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}
