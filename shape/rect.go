package shape

import (
	"fmt"
	"math"

	"github.com/yuichi110/drawlib/geom"
)

// Rectangle builds a closed rectangle path of the given size anchored
// at xy, with rounded corners of radius r (0 for square corners) and a
// counter-clockwise rotation in degrees about the rectangle's center.
//
// Corners with r > 0 are a single quadratic segment whose control point
// is the square corner. This is a deliberate cheap approximation of a
// circular fillet; it deviates visibly from a true arc only for radii
// approaching half the shorter side, and r is clamped there.
func Rectangle(xy geom.Point, w, h, r, angle float64, align Align) (Path, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("shape: rectangle: width %v and height %v must be positive", w, h)
	}
	if r < 0 {
		return nil, fmt.Errorf("shape: rectangle: corner radius %v must not be negative", r)
	}
	if max := math.Min(w, h) / 2; r > max {
		r = max
	}

	center := AnchorCenter(xy, w, h, align)

	// Local origin-centered frame; rotate about the center afterwards.
	x0, y0 := -w/2, -h/2
	x1, y1 := w/2, h/2

	var p Path
	if r == 0 {
		p.Start(geom.Pt(x0, y0))
		p.Line(geom.Pt(x0, y1))
		p.Line(geom.Pt(x1, y1))
		p.Line(geom.Pt(x1, y0))
	} else {
		p.Start(geom.Pt(x0+r, y0))
		p.Quad(geom.Pt(x0, y0), geom.Pt(x0, y0+r))
		p.Line(geom.Pt(x0, y1-r))
		p.Quad(geom.Pt(x0, y1), geom.Pt(x0+r, y1))
		p.Line(geom.Pt(x1-r, y1))
		p.Quad(geom.Pt(x1, y1), geom.Pt(x1, y1-r))
		p.Line(geom.Pt(x1, y0+r))
		p.Quad(geom.Pt(x1, y0), geom.Pt(x1-r, y0))
	}
	p.Stop(true)

	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y)), nil
}
