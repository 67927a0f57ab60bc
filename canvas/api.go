package canvas

import (
	"image"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/icon"
	"github.com/yuichi110/drawlib/shape"
	"github.com/yuichi110/drawlib/style"
)

// Most scripts draw one figure at a time, so the package exposes a
// process-wide default canvas and free functions forwarding to it.

var std = New()

// Default returns the process-wide default canvas.
func Default() *Canvas { return std }

func Configure(cfg Config) error { return std.Config(cfg) }
func Clear()                     { std.Clear() }
func Save(name string) error     { return std.Save(name) }

func Shape(kind string, xy geom.Point, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return std.Shape(kind, xy, w, h, angle, ref)
}

func Rectangle(xy geom.Point, w, h, r, angle float64, ref style.Ref[style.Shape]) error {
	return std.Rectangle(xy, w, h, r, angle, ref)
}

func Circle(xy geom.Point, radius float64, ref style.Ref[style.Shape]) error {
	return std.Circle(xy, radius, ref)
}

func Ellipse(xy geom.Point, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return std.Ellipse(xy, w, h, angle, ref)
}

func Arc(xy geom.Point, w, h, angleStart, angleEnd, angle float64, ref style.Ref[style.Shape]) error {
	return std.Arc(xy, w, h, angleStart, angleEnd, angle, ref)
}

func Wedge(xy geom.Point, w, h, angleStart, angleEnd, angle float64, ref style.Ref[style.Shape]) error {
	return std.Wedge(xy, w, h, angleStart, angleEnd, angle, ref)
}

func Polygon(pts []geom.Point, r, angle float64, ref style.Ref[style.Shape]) error {
	return std.Polygon(pts, r, angle, ref)
}

func RegularPolygon(xy geom.Point, n int, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return std.RegularPolygon(xy, n, w, h, angle, ref)
}

func Star(xy geom.Point, n int, w, h, innerRatio, angle float64, ref style.Ref[style.Shape]) error {
	return std.Star(xy, n, w, h, innerRatio, angle, ref)
}

func Diamond(xy geom.Point, w, h, angle float64, ref style.Ref[style.Shape]) error {
	return std.Diamond(xy, w, h, angle, ref)
}

func Triangle(xy geom.Point, w, h, topRatio, angle float64, ref style.Ref[style.Shape]) error {
	return std.Triangle(xy, w, h, topRatio, angle, ref)
}

func Parallelogram(xy geom.Point, w, h, shear, angle float64, ref style.Ref[style.Shape]) error {
	return std.Parallelogram(xy, w, h, shear, angle, ref)
}

func Trapezoid(xy geom.Point, w, topW, h, angle float64, ref style.Ref[style.Shape]) error {
	return std.Trapezoid(xy, w, topW, h, angle, ref)
}

func Chevron(xy geom.Point, w, h, depth, angle float64, ref style.Ref[style.Shape]) error {
	return std.Chevron(xy, w, h, depth, angle, ref)
}

func Line(from, to geom.Point, ref style.Ref[style.Line]) error {
	return std.Line(from, to, ref)
}

func Lines(pts []geom.Point, ref style.Ref[style.Line]) error {
	return std.Lines(pts, ref)
}

func LinesCurved(pts []geom.Point, r float64, ref style.Ref[style.Line]) error {
	return std.LinesCurved(pts, r, ref)
}

func LinesSmooth(pts []geom.Point, bend float64, ref style.Ref[style.Line]) error {
	return std.LinesSmooth(pts, bend, ref)
}

func LinesBezier(start geom.Point, segments []shape.CurvePoint, ref style.Ref[style.Line]) error {
	return std.LinesBezier(start, segments, ref)
}

func Arrow(from, to geom.Point, tailWidth, headWidth, headLength float64, heads shape.Heads, ref style.Ref[style.Shape]) error {
	return std.Arrow(from, to, tailWidth, headWidth, headLength, heads, ref)
}

func ArrowLine(pts []geom.Point, tailWidth, headWidth, headLength float64, heads shape.Heads, r float64, ref style.Ref[style.Shape]) error {
	return std.ArrowLine(pts, tailWidth, headWidth, headLength, heads, r, ref)
}

func Text(text string, xy geom.Point, angle float64, ref style.Ref[style.Text]) error {
	return std.Text(text, xy, angle, ref)
}

func Image(name string, xy geom.Point, w, h, angle float64, ref style.Ref[style.Image]) error {
	return std.Image(name, xy, w, h, angle, ref)
}

func ImageData(img image.Image, xy geom.Point, w, h, angle float64, ref style.Ref[style.Image]) error {
	return std.ImageData(img, xy, w, h, angle, ref)
}

func Icon(name string, xy geom.Point, w, h, angle float64, ref style.Ref[style.Icon]) error {
	return std.Icon(name, xy, w, h, angle, ref)
}

func IconData(ic *icon.Icon, xy geom.Point, w, h, angle float64, ref style.Ref[style.Icon]) error {
	return std.IconData(ic, xy, w, h, angle, ref)
}
