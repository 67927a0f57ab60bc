// Implements a PDF backend, by wrapping codeberg.org/go-pdf/fpdf.
package render

import (
	"image/color"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/image/math/fixed"
)

var _ Driver = PDF{} // assert interface conformance

// PDF paints paths onto a page of the given document. Coordinates
// are expected in the document unit, so the device transform must
// already map canvas coordinates to it.
type PDF struct {
	pdf *fpdf.Fpdf
}

// NewPDF returns a renderer which will write to `pdf`.
func NewPDF(pdf *fpdf.Fpdf) PDF {
	return PDF{pdf: pdf}
}

func (r PDF) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var f Filler
	var s Stroker
	if willFill {
		f = &pdfFiller{pdfPather{pdf: r.pdf}, true}
	}
	if willStroke {
		s = &pdfStroker{pdfPather{pdf: r.pdf}}
	}
	return f, s
}

// pdfPather implements the common path commands,
// shared by the filler and the stroker.
type pdfPather struct {
	pdf *fpdf.Fpdf
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pdfPather) Clear() {}

func (p *pdfPather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p *pdfPather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p *pdfPather) QuadBezier(b, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p *pdfPather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *pdfPather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// rgb flattens a color to 8 bit channels plus an opacity fraction.
func rgb(c color.Color) (int, int, int, float64) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0, 0, 0, 0
	}
	// un-premultiply
	return int(r * 255 / a), int(g * 255 / a), int(b * 255 / a), float64(a) / 0xffff
}

type pdfFiller struct {
	pdfPather
	useNonZeroWinding bool
}

func (f *pdfFiller) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *pdfFiller) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*a, "Normal")
}

func (f *pdfFiller) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

type pdfStroker struct {
	pdfPather
}

var joinToPDF = [...]string{
	Round: "round",
	Bevel: "bevel",
	Miter: "miter",
}

var capToPDF = [...]string{
	ButtCap:   "butt",
	SquareCap: "square",
	RoundCap:  "round",
}

func (s *pdfStroker) SetStrokeOptions(options StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineCapStyle(capToPDF[options.Join.LineCap])
	s.pdf.SetLineJoinStyle(joinToPDF[options.Join.LineJoin])
	s.pdf.SetDashPattern(options.Dash.Dash, options.Dash.DashOffset)
}

func (s *pdfStroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*a, "Normal")
}

func (s *pdfStroker) Draw() {
	s.pdf.DrawPath("D")
}
