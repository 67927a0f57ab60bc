package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/yuichi110/drawlib/geom"
)

// DrawImage draws src into dst mapped through the affine transform m
// (source pixel coordinates to destination pixel coordinates), blended
// with the given alpha in [0, 1].
func DrawImage(dst *image.RGBA, src image.Image, m geom.Matrix2D, alpha float64) {
	aff := f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
	var opts *xdraw.Options
	if alpha < 1 {
		a := uint8(alpha*255 + 0.5)
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: a}),
		}
	}
	xdraw.BiLinear.Transform(dst, aff, src, src.Bounds(), xdraw.Over, opts)
}

// ImagePlacement computes the source-to-device transform placing an
// image of pxW-by-pxH pixels into a box of w-by-h canvas units
// centered at `center`, rotated by angle degrees, where `device` maps
// canvas coordinates to device pixels.
func ImagePlacement(device geom.Matrix2D, center geom.Point, w, h, angle float64, pxW, pxH int) geom.Matrix2D {
	// Source origin is the top-left corner with y down; canvas y
	// grows up, so the y scale flips sign twice and stays positive
	// in device space.
	toCanvas := geom.Identity.
		Translate(center.X, center.Y).
		RotateDeg(angle).
		Translate(-w/2, h/2).
		Scale(w/float64(pxW), -h/float64(pxH))
	return device.Mult(toCanvas)
}
