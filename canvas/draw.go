package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/icon"
	"github.com/yuichi110/drawlib/imageio"
	"github.com/yuichi110/drawlib/render"
	"github.com/yuichi110/drawlib/shape"
	"github.com/yuichi110/drawlib/style"
)

// Every drawing call resolves its style, builds the path in final
// canvas coordinates and appends one or more artifacts. Calls return
// an error on invalid arguments or style lookups and commit nothing
// in that case; they never partially apply.

// drawShape is the shared tail of the closed-shape calls.
func (c *Canvas) drawShape(kind string, ref style.Ref[style.Shape],
	build func(s style.Shape, align shape.Align) (shape.Path, error), angle float64) error {

	s, err := resolveRef(c.theme.ShapeKind(kind), sysShape(), ref)
	if err != nil {
		return c.fail(err)
	}
	align := shape.ResolveAlign(s.HAlign, s.VAlign, angle, shape.CenterAlign)
	p, err := build(s, align)
	if err != nil {
		return c.fail(err)
	}
	c.pushPath(p, shapePaint(s))
	return nil
}

// Shape draws a closed shape of the named kind with default
// proportions fitted to a w-by-h box. Kinds with mandatory extra
// parameters have dedicated methods.
func (c *Canvas) Shape(kind string, xy geom.Point, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape(kind, ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		switch kind {
		case "rectangle":
			return shape.Rectangle(xy, w, h, 0, angle, align)
		case "circle":
			return shape.Circle(xy, min(w, h)/2, align)
		case "ellipse":
			return shape.Ellipse(xy, w, h, angle, align)
		case "regular polygon":
			return shape.RegularPolygon(xy, 5, w, h, angle, align)
		case "star":
			return shape.Star(xy, 5, w, h, 0.4, angle, align)
		case "triangle":
			return shape.Triangle(xy, w, h, 0.5, angle, align)
		case "parallelogram":
			return shape.Parallelogram(xy, w, h, w/4, angle, align)
		case "trapezoid":
			return shape.Trapezoid(xy, w, w/2, h, angle, align)
		case "chevron":
			return shape.Chevron(xy, w, h, w/4, angle, align)
		case "arrow":
			center := shape.AnchorCenter(xy, w, h, align)
			from := geom.Pt(center.X-w/2, center.Y)
			to := geom.Pt(center.X+w/2, center.Y)
			p, err := shape.Arrow(from, to, h/2, h, w/4, shape.HeadEnd)
			if err != nil {
				return nil, err
			}
			return p.Rotate(center, angle), nil
		default:
			return nil, fmt.Errorf("canvas: unknown shape kind %q", kind)
		}
	}, angle)
}

// Rectangle draws a rectangle with rounded corners of radius r.
func (c *Canvas) Rectangle(xy geom.Point, w, h, r, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("rectangle", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Rectangle(xy, w, h, r, angle, align)
	}, angle)
}

func (c *Canvas) Circle(xy geom.Point, radius float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("circle", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Circle(xy, radius, align)
	}, 0)
}

func (c *Canvas) Ellipse(xy geom.Point, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("ellipse", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Ellipse(xy, w, h, angle, align)
	}, angle)
}

// Arc draws an open elliptical arc from angleStart to angleEnd
// degrees. Only the stroke of the resolved style applies; use Wedge
// for a filled pie slice.
func (c *Canvas) Arc(xy geom.Point, w, h, angleStart, angleEnd, angle float64, ref style.Ref[style.Shape]) error {
	s, err := resolveRef(c.theme.ShapeKind("arc"), sysShape(), ref)
	if err != nil {
		return c.fail(err)
	}
	align := shape.ResolveAlign(s.HAlign, s.VAlign, angle, shape.CenterAlign)
	p, err := shape.Arc(xy, w, h, angleStart, angleEnd, angle, align)
	if err != nil {
		return c.fail(err)
	}
	c.pushPath(p, strokeOnly(shapePaint(s)))
	return nil
}

// Wedge draws a filled pie slice from angleStart to angleEnd degrees.
func (c *Canvas) Wedge(xy geom.Point, w, h, angleStart, angleEnd, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("arc", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Wedge(xy, w, h, angleStart, angleEnd, angle, align)
	}, angle)
}

// Polygon draws a closed polygon through the given vertices, already
// in canvas coordinates, optionally rounding corners by r.
func (c *Canvas) Polygon(pts []geom.Point, r, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("polygon", ref, func(_ style.Shape, _ shape.Align) (shape.Path, error) {
		return shape.Polygon(pts, r, angle)
	}, angle)
}

func (c *Canvas) RegularPolygon(xy geom.Point, n int, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("regular polygon", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.RegularPolygon(xy, n, w, h, angle, align)
	}, angle)
}

func (c *Canvas) Star(xy geom.Point, n int, w, h, innerRatio, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("star", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Star(xy, n, w, h, innerRatio, angle, align)
	}, angle)
}

// Diamond draws a rhombus fitted to a w-by-h box: the 4-vertex
// regular ring.
func (c *Canvas) Diamond(xy geom.Point, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("regular polygon", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.RegularPolygon(xy, 4, w, h, angle, align)
	}, angle)
}

func (c *Canvas) Triangle(xy geom.Point, w, h, topRatio, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("triangle", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Triangle(xy, w, h, topRatio, angle, align)
	}, angle)
}

func (c *Canvas) Parallelogram(xy geom.Point, w, h, shear, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("parallelogram", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Parallelogram(xy, w, h, shear, angle, align)
	}, angle)
}

func (c *Canvas) Trapezoid(xy geom.Point, w, topW, h, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("trapezoid", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Trapezoid(xy, w, topW, h, angle, align)
	}, angle)
}

func (c *Canvas) Chevron(xy geom.Point, w, h, depth, angle float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("chevron", ref, func(_ style.Shape, align shape.Align) (shape.Path, error) {
		return shape.Chevron(xy, w, h, depth, angle, align)
	}, angle)
}

// drawLine is the shared tail of the open-path calls.
func (c *Canvas) drawLine(ref style.Ref[style.Line], build func() (shape.Path, error)) error {
	s, err := resolveRef(c.theme.Line, sysLine(), ref)
	if err != nil {
		return c.fail(err)
	}
	p, err := build()
	if err != nil {
		return c.fail(err)
	}
	c.pushPath(p, linePaint(s))
	return nil
}

// Line draws a straight segment.
func (c *Canvas) Line(from, to geom.Point, ref style.Ref[style.Line]) error {
	return c.drawLine(ref, func() (shape.Path, error) {
		return shape.Polyline([]geom.Point{from, to}, 0)
	})
}

// Lines draws a polyline through the given points.
func (c *Canvas) Lines(pts []geom.Point, ref style.Ref[style.Line]) error {
	return c.drawLine(ref, func() (shape.Path, error) {
		return shape.Polyline(pts, 0)
	})
}

// LinesCurved draws a polyline with interior corners rounded by r.
func (c *Canvas) LinesCurved(pts []geom.Point, r float64, ref style.Ref[style.Line]) error {
	return c.drawLine(ref, func() (shape.Path, error) {
		return shape.Polyline(pts, r)
	})
}

// LinesSmooth draws a polyline with corners smoothed by the bend
// factor in (0, 0.5].
func (c *Canvas) LinesSmooth(pts []geom.Point, bend float64, ref style.Ref[style.Line]) error {
	return c.drawLine(ref, func() (shape.Path, error) {
		return shape.SmoothPolyline(pts, bend)
	})
}

// LinesBezier draws a mixed path of line, quadratic and cubic
// segments from an explicit start point.
func (c *Canvas) LinesBezier(start geom.Point, segments []shape.CurvePoint, ref style.Ref[style.Line]) error {
	return c.drawLine(ref, func() (shape.Path, error) {
		return shape.CurvedPolyline(start, segments)
	})
}

// Arrow draws a straight arrow between two points, with triangular
// heads on the ends selected by heads.
func (c *Canvas) Arrow(from, to geom.Point, tailWidth, headWidth, headLength float64, heads shape.Heads, ref style.Ref[style.Shape]) error {
	return c.drawShape("arrow", ref, func(_ style.Shape, _ shape.Align) (shape.Path, error) {
		return shape.Arrow(from, to, tailWidth, headWidth, headLength, heads)
	}, 0)
}

// ArrowLine draws an arrow following a polyline, with interior bends
// of the tail optionally rounded by r.
func (c *Canvas) ArrowLine(pts []geom.Point, tailWidth, headWidth, headLength float64, heads shape.Heads, r float64, ref style.Ref[style.Shape]) error {
	return c.drawShape("arrow", ref, func(_ style.Shape, _ shape.Align) (shape.Path, error) {
		return shape.ArrowPolyline(pts, tailWidth, headWidth, headLength, heads, r)
	}, 0)
}

// Text draws a run of text anchored at xy. The anchor defaults to the
// run's left-bottom corner; explicit alignment fields override it, and
// a rotated run centers on the anchor. When the resolved style has a
// background, the box is committed first so it paints behind the run.
func (c *Canvas) Text(text string, xy geom.Point, angle float64, ref style.Ref[style.Text]) error {
	s, err := resolveRef(c.theme.Text, sysText(), ref)
	if err != nil {
		return c.fail(err)
	}
	size := val(s.Size, 16)
	font := val(s.Font, style.FontSansRegular)
	outline, metrics, err := render.TextOutline(font, text, size)
	if err != nil {
		return c.fail(err)
	}

	w, h := metrics.Width, metrics.Height()
	align := shape.ResolveAlign(s.HAlign, s.VAlign, angle, shape.BottomLeftAlign)
	center := shape.AnchorCenter(xy, w, h, align)

	// The outline's baseline is at y=0 with x starting at 0, so its
	// box center sits at (w/2, (ascent-descent)/2).
	boxCenter := geom.Pt(w/2, (metrics.Ascent-metrics.Descent)/2)
	outline = outline.
		Transform(geom.Identity.Translate(center.X-boxCenter.X, center.Y-boxCenter.Y)).
		Rotate(center, angle)

	alpha := val(s.Alpha, 1)
	withBorder := s.BgLineColor != nil && val(s.BgLineWidth, 0) > 0
	if w > 0 && (s.BgColor != nil || withBorder) {
		pad := size * 0.25
		box, err := shape.Rectangle(center, w+2*pad, h+2*pad, 0, angle, shape.CenterAlign)
		if err != nil {
			return c.fail(err)
		}
		paint := render.Paint{Opacity: alpha, UseNonZeroWinding: true}
		if s.BgColor != nil {
			paint.FillColor = s.BgColor.NRGBA(1)
		}
		if withBorder {
			paint.StrokeColor = s.BgLineColor.NRGBA(1)
			paint.LineWidth = *s.BgLineWidth
		}
		c.pushPath(box, paint)
	}

	paint := render.Paint{Opacity: alpha, UseNonZeroWinding: true}
	if s.Color != nil {
		paint.FillColor = s.Color.NRGBA(1)
	}
	c.pushPath(outline, paint)
	return nil
}

// Image loads an image file and places it in a w-by-h box at xy. A
// non-positive w or h is derived from the pixel aspect ratio; at
// least one must be given.
func (c *Canvas) Image(name string, xy geom.Point, w, h, angle float64, ref style.Ref[style.Image]) error {
	img, err := imageio.Load(name)
	if err != nil {
		return c.fail(err)
	}
	return c.ImageData(img, xy, w, h, angle, ref)
}

// ImageData places an already decoded image.
func (c *Canvas) ImageData(img image.Image, xy geom.Point, w, h, angle float64, ref style.Ref[style.Image]) error {
	s, err := resolveRef(c.theme.Image, sysImage(), ref)
	if err != nil {
		return c.fail(err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return c.fail(errors.New("canvas: image has no pixels"))
	}
	if w <= 0 && h <= 0 {
		return c.fail(errors.New("canvas: image needs a positive width or height"))
	}
	if w <= 0 {
		w = h * float64(b.Dx()) / float64(b.Dy())
	}
	if h <= 0 {
		h = w * float64(b.Dy()) / float64(b.Dx())
	}

	align := shape.ResolveAlign(s.HAlign, s.VAlign, angle, shape.CenterAlign)
	center := shape.AnchorCenter(xy, w, h, align)
	c.push(imageArtifact{
		img:    img,
		center: center,
		w:      w,
		h:      h,
		angle:  angle,
		alpha:  val(s.Alpha, 1),
	})

	if s.BorderColor != nil && val(s.BorderWidth, 0) > 0 {
		box, err := shape.Rectangle(center, w, h, 0, angle, shape.CenterAlign)
		if err != nil {
			return c.fail(err)
		}
		c.pushPath(box, render.Paint{
			StrokeColor:       s.BorderColor.NRGBA(1),
			LineWidth:         *s.BorderWidth,
			Opacity:           1,
			UseNonZeroWinding: true,
		})
	}
	return nil
}

// Icon loads an SVG icon file and places it in a w-by-h box at xy,
// filled with the resolved icon color. Unsupported SVG elements are
// logged and skipped.
func (c *Canvas) Icon(name string, xy geom.Point, w, h, angle float64, ref style.Ref[style.Icon]) error {
	ic, err := icon.ReadFile(name, icon.WarnErrorMode)
	if err != nil {
		return c.fail(err)
	}
	return c.IconData(ic, xy, w, h, angle, ref)
}

// IconData places an already parsed icon.
func (c *Canvas) IconData(ic *icon.Icon, xy geom.Point, w, h, angle float64, ref style.Ref[style.Icon]) error {
	s, err := resolveRef(c.theme.Icon, sysIcon(), ref)
	if err != nil {
		return c.fail(err)
	}
	align := shape.ResolveAlign(s.HAlign, s.VAlign, angle, shape.CenterAlign)
	p := ic.Fit(xy, w, h, angle, align)
	if p == nil {
		return c.fail(errors.New("canvas: icon has an empty view box"))
	}
	paint := render.Paint{Opacity: val(s.Alpha, 1), UseNonZeroWinding: true}
	if s.Color != nil {
		paint.FillColor = s.Color.NRGBA(1)
	}
	c.pushPath(p, paint)
	return nil
}
