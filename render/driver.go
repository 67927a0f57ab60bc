// Package render implements the painting backends for resolved
// drawing artifacts. Geometry arrives as paths in canvas coordinates;
// a device transform is applied to the points before they reach the
// drawers, so drivers never need any canvas knowledge.
package render

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/shape"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any styling knowledge.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path
	SetColor(c color.Color, opacity float64)

	// Draw paints the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the beginning of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

type DashOptions struct {
	Dash       []float64 // values for the dash pattern (nil or an empty slice for no dashes)
	DashOffset float64   // starting offset into the dash array
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // the miter cutoff value for the Miter join mode
	LineJoin   JoinMode
	LineCap    CapMode // capping function for both line ends
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Join      JoinOptions
	Dash      DashOptions
}

// Paint carries the fully resolved painting parameters for one path.
// A nil color disables the corresponding operation.
type Paint struct {
	FillColor   color.Color
	StrokeColor color.Color
	LineWidth   float64
	Dash        DashOptions
	Opacity     float64

	UseNonZeroWinding bool
	Join              JoinOptions
}

// FillPaint returns a solid fill with no stroke.
func FillPaint(c color.Color) Paint {
	return Paint{FillColor: c, Opacity: 1, UseNonZeroWinding: true}
}

// StrokePaint returns a stroke with no fill.
func StrokePaint(c color.Color, width float64) Paint {
	return Paint{StrokeColor: c, LineWidth: width, Opacity: 1, UseNonZeroWinding: true}
}

// DrawPath paints the path on the driver, fill first, then stroke,
// after mapping the points through the device transform m.
func DrawPath(d Driver, p shape.Path, m geom.Matrix2D, paint Paint) {
	filler, stroker := d.SetupDrawers(paint.FillColor != nil, paint.StrokeColor != nil)

	if filler != nil {
		filler.Clear()
		filler.SetWinding(paint.UseNonZeroWinding)
		p.AddTo(filler, m)
		filler.SetColor(paint.FillColor, paint.Opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(paint.LineWidth * 64),
			Join: JoinOptions{
				MiterLimit: paint.Join.MiterLimit,
				LineJoin:   paint.Join.LineJoin,
				LineCap:    paint.Join.LineCap,
			},
			Dash: paint.Dash,
		})
		p.AddTo(stroker, m)
		stroker.SetColor(paint.StrokeColor, paint.Opacity)
		stroker.Draw()
	}
}
