package shape

import (
	"github.com/yuichi110/drawlib/geom"

	"github.com/yuichi110/drawlib/style"
)

// Shapes are anchored at their center by default: the xy argument of a
// drawing call is the bounding-box center unless an alignment override
// pins an edge to it instead. Rotation always happens about the
// shape's own center, so a rotated shape keeps its anchor regardless
// of alignment.

// Align is a resolved alignment pair.
type Align struct {
	H style.HAlign
	V style.VAlign
}

// CenterAlign pins the bounding-box center to the anchor.
var CenterAlign = Align{style.HCenter, style.VCenter}

// BottomLeftAlign pins the left-bottom corner to the anchor. This is
// the default for axis-aligned text and image placement.
var BottomLeftAlign = Align{style.Left, style.Bottom}

// ResolveAlign picks the effective alignment: explicit style fields
// win; otherwise rotated drawables center on the anchor (an unrotated
// corner anchor has no stable meaning once rotated), and the drawable's
// own default applies for the rest.
func ResolveAlign(h *style.HAlign, v *style.VAlign, angle float64, def Align) Align {
	a := def
	if angle != 0 {
		a = CenterAlign
	}
	if h != nil {
		a.H = *h
	}
	if v != nil {
		a.V = *v
	}
	return a
}

// AnchorCenter returns the bounding-box center for a box of the given
// size anchored at xy with the given alignment.
func AnchorCenter(xy geom.Point, w, h float64, a Align) geom.Point {
	c := xy
	switch a.H {
	case style.Left:
		c.X += w / 2
	case style.Right:
		c.X -= w / 2
	}
	switch a.V {
	case style.Bottom:
		c.Y += h / 2
	case style.Top:
		c.Y -= h / 2
	}
	return c
}
