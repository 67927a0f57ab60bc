// Implements the raster backend, by wrapping rasterx.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ Driver = (*Raster)(nil) // assert interface conformance

// Raster rasterizes paths into an RGBA image.
type Raster struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher // separate instance, to avoid shared state
}

// NewRaster returns a rasterizer drawing into a fresh
// width-by-height image.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Raster{
		img:    img,
		filler: rasterx.NewFiller(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		dasher: rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
	}
}

// Image exposes the target image.
func (rd *Raster) Image() *image.RGBA { return rd.img }

// FillBackground floods the whole image with the given color.
func (rd *Raster) FillBackground(c color.Color) {
	draw.Draw(rd.img, rd.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (rd *Raster) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var f Filler
	var s Stroker
	if willFill {
		f = rasterFiller{rd.filler}
	}
	if willStroke {
		s = rasterStroker{rd.dasher}
	}
	return f, s
}

type rasterFiller struct {
	*rasterx.Filler
}

func (f rasterFiller) SetColor(c color.Color, opacity float64) {
	f.Filler.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type rasterStroker struct {
	*rasterx.Dasher
}

func (s rasterStroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		Round: rasterx.Round,
		Bevel: rasterx.Bevel,
		Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		ButtCap:   rasterx.ButtCap,
		SquareCap: rasterx.SquareCap,
		RoundCap:  rasterx.RoundCap,
	}
)

func (s rasterStroker) SetStrokeOptions(options StrokeOptions) {
	miter := options.Join.MiterLimit
	if miter == 0 {
		miter = fixed.I(4)
	}
	s.Dasher.SetStroke(
		options.LineWidth, miter,
		capToFunc[options.Join.LineCap], capToFunc[options.Join.LineCap],
		rasterx.FlatGap, joinToJoin[options.Join.LineJoin],
		options.Dash.Dash, options.Dash.DashOffset,
	)
}
