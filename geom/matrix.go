package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D is a 2x3 affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Transform applies the matrix to the point (x, y).
func (a Matrix2D) Transform(p Point) Point {
	return Point{
		X: p.X*a.A + p.Y*a.C + a.E,
		Y: p.X*a.B + p.Y*a.D + a.F,
	}
}

// TransformVector applies only the linear part of the matrix,
// ignoring translation. Used for direction vectors.
func (a Matrix2D) TransformVector(p Point) Point {
	return Point{
		X: p.X*a.A + p.Y*a.C,
		Y: p.X*a.B + p.Y*a.D,
	}
}

// Mult returns a times b, so that applying the result is equivalent
// to applying b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate returns a followed by a translation of (x, y).
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale returns a followed by a scale of (x, y).
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate returns a followed by a counter-clockwise rotation of rad radians.
func (a Matrix2D) Rotate(rad float64) Matrix2D {
	sin, cos := math.Sincos(rad)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// RotateDeg returns a followed by a counter-clockwise rotation in degrees.
func (a Matrix2D) RotateDeg(deg float64) Matrix2D {
	return a.Rotate(deg * math.Pi / 180)
}

// SkewX returns a followed by a skew of rad radians along the x axis.
func (a Matrix2D) SkewX(rad float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(rad), 1, 0, 0})
}

// SkewY returns a followed by a skew of rad radians along the y axis.
func (a Matrix2D) SkewY(rad float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(rad), 0, 1, 0, 0})
}

// ToFixed converts the transformed point to the 26.6 fixed-point format
// consumed by the rasterizer.
func (a Matrix2D) ToFixed(p Point) fixed.Point26_6 {
	t := a.Transform(p)
	return fixed.Point26_6{
		X: fixed.Int26_6(t.X * 64),
		Y: fixed.Int26_6(t.Y * 64),
	}
}
