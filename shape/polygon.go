package shape

import (
	"fmt"
	"math"

	"github.com/yuichi110/drawlib/geom"
)

// Polygon builds a closed path through the given vertices, in canvas
// coordinates, rotated by angle degrees about the centroid of their
// bounding box. r > 0 rounds interior corners with quadratic inserts.
func Polygon(points []geom.Point, r, angle float64) (Path, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("shape: polygon: need at least 3 vertices, got %d", len(points))
	}
	p, err := polylinePath(points, r, true)
	if err != nil {
		return nil, fmt.Errorf("shape: polygon: %w", err)
	}
	return p.Rotate(geom.CenterOf(points), angle), nil
}

// vertexRing returns n points evenly spaced on the origin-centered
// ellipse with radii rx, ry, starting at the top and proceeding
// counter-clockwise.
func vertexRing(n int, rx, ry float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		rad := (90 + 360*float64(i)/float64(n)) * math.Pi / 180
		pts[i] = geom.Pt(rx*math.Cos(rad), ry*math.Sin(rad))
	}
	return pts
}

// RegularPolygon builds a closed n-gon inscribed in a box of the given
// size anchored at xy, first vertex at the top, rotated by angle
// degrees about the center.
func RegularPolygon(xy geom.Point, n int, w, h, angle float64, align Align) (Path, error) {
	if n < 3 {
		return nil, fmt.Errorf("shape: regular polygon: vertex count %d must be at least 3", n)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: regular polygon: width %v and height %v must be positive", w, h)
	}
	center := AnchorCenter(xy, w, h, align)

	var p Path
	ring := vertexRing(n, w/2, h/2)
	p.Start(ring[0])
	for _, v := range ring[1:] {
		p.Line(v)
	}
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Star builds a closed n-pointed star: n outer vertices on the box
// ellipse interleaved with n inner vertices scaled by innerRatio.
func Star(xy geom.Point, n int, w, h, innerRatio, angle float64, align Align) (Path, error) {
	if n < 3 {
		return nil, fmt.Errorf("shape: star: point count %d must be at least 3", n)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: star: width %v and height %v must be positive", w, h)
	}
	if innerRatio <= 0 || innerRatio >= 1 {
		return nil, fmt.Errorf("shape: star: inner ratio %v out of range (0, 1)", innerRatio)
	}
	center := AnchorCenter(xy, w, h, align)

	outer := vertexRing(n, w/2, h/2)
	halfStep := 180 / float64(n)
	var p Path
	p.Start(outer[0])
	for i := 0; i < n; i++ {
		rad := (90 + halfStep + 360*float64(i)/float64(n)) * math.Pi / 180
		inner := geom.Pt(w/2*innerRatio*math.Cos(rad), h/2*innerRatio*math.Sin(rad))
		p.Line(inner)
		if i < n-1 {
			p.Line(outer[i+1])
		}
	}
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Triangle builds a closed isosceles triangle filling a box of the
// given size: apex centered at the top, base along the bottom. topRatio
// shifts the apex across the top edge, 0.5 being centered.
func Triangle(xy geom.Point, w, h, topRatio, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: triangle: width %v and height %v must be positive", w, h)
	}
	if topRatio < 0 || topRatio > 1 {
		return nil, fmt.Errorf("shape: triangle: top ratio %v out of range [0, 1]", topRatio)
	}
	center := AnchorCenter(xy, w, h, align)

	var p Path
	p.Start(geom.Pt(-w/2, -h/2))
	p.Line(geom.Pt(-w/2+w*topRatio, h/2))
	p.Line(geom.Pt(w/2, -h/2))
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Parallelogram builds a closed parallelogram: a w-by-h box whose top
// edge is sheared right by shear (may be negative).
func Parallelogram(xy geom.Point, w, h, shear, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: parallelogram: width %v and height %v must be positive", w, h)
	}
	center := AnchorCenter(xy, w+math.Abs(shear), h, align)

	half := (w + math.Abs(shear)) / 2
	lo, hi := -half, half
	s := shear
	var p Path
	if s >= 0 {
		p.Start(geom.Pt(lo, -h/2))
		p.Line(geom.Pt(lo+s, h/2))
		p.Line(geom.Pt(hi, h/2))
		p.Line(geom.Pt(hi-s, -h/2))
	} else {
		p.Start(geom.Pt(lo-s, -h/2))
		p.Line(geom.Pt(lo, h/2))
		p.Line(geom.Pt(hi+s, h/2))
		p.Line(geom.Pt(hi, -h/2))
	}
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Trapezoid builds a closed trapezoid: bottom edge of width w, top
// edge of width topW centered above it.
func Trapezoid(xy geom.Point, w, topW, h, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: trapezoid: width %v and height %v must be positive", w, h)
	}
	if topW < 0 {
		return nil, fmt.Errorf("shape: trapezoid: top width %v must not be negative", topW)
	}
	full := math.Max(w, topW)
	center := AnchorCenter(xy, full, h, align)

	var p Path
	p.Start(geom.Pt(-w/2, -h/2))
	p.Line(geom.Pt(-topW/2, h/2))
	p.Line(geom.Pt(topW/2, h/2))
	p.Line(geom.Pt(w/2, -h/2))
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}

// Chevron builds a closed chevron (block arrow without a tail): a
// w-by-h box whose right side is drawn to a point, with the left side
// notched by the same depth.
func Chevron(xy geom.Point, w, h, depth, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: chevron: width %v and height %v must be positive", w, h)
	}
	if depth < 0 || depth >= w {
		return nil, fmt.Errorf("shape: chevron: depth %v out of range [0, width)", depth)
	}
	center := AnchorCenter(xy, w, h, align)

	var p Path
	p.Start(geom.Pt(-w/2, -h/2))
	p.Line(geom.Pt(-w/2+depth, 0))
	p.Line(geom.Pt(-w/2, h/2))
	p.Line(geom.Pt(w/2-depth, h/2))
	p.Line(geom.Pt(w/2, 0))
	p.Line(geom.Pt(w/2-depth, -h/2))
	p.Stop(true)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}
