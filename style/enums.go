package style

import "fmt"

// HAlign selects which vertical edge (or the center) of a drawable's
// bounding box is pinned to its anchor point.
type HAlign uint8

const (
	Left HAlign = iota
	HCenter
	Right
)

func (h HAlign) String() string {
	switch h {
	case Left:
		return "left"
	case HCenter:
		return "center"
	case Right:
		return "right"
	default:
		return "<unknown HAlign>"
	}
}

func (h HAlign) validate() error {
	if h > Right {
		return fmt.Errorf("halign value %d out of range", h)
	}
	return nil
}

// VAlign selects which horizontal edge (or the center) of a drawable's
// bounding box is pinned to its anchor point.
type VAlign uint8

const (
	Bottom VAlign = iota
	VCenter
	Top
)

func (v VAlign) String() string {
	switch v {
	case Bottom:
		return "bottom"
	case VCenter:
		return "center"
	case Top:
		return "top"
	default:
		return "<unknown VAlign>"
	}
}

func (v VAlign) validate() error {
	if v > Top {
		return fmt.Errorf("valign value %d out of range", v)
	}
	return nil
}

// DashStyle selects the stroke dash pattern.
type DashStyle uint8

const (
	Solid DashStyle = iota
	Dashed
	Dotted
	DashDot
)

func (d DashStyle) String() string {
	switch d {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	case DashDot:
		return "dashdot"
	default:
		return "<unknown DashStyle>"
	}
}

func (d DashStyle) validate() error {
	if d > DashDot {
		return fmt.Errorf("dash style value %d out of range", d)
	}
	return nil
}

// Pattern returns the on/off run lengths for the dash style, scaled by
// the stroke width. Solid returns nil (no dashing).
func (d DashStyle) Pattern(width float64) []float64 {
	if width <= 0 {
		width = 1
	}
	switch d {
	case Dashed:
		return []float64{3 * width, 3 * width}
	case Dotted:
		return []float64{width, 2 * width}
	case DashDot:
		return []float64{3 * width, 2 * width, width, 2 * width}
	default:
		return nil
	}
}

// Font selects one of the embedded typefaces.
type Font uint8

const (
	FontSansRegular Font = iota
	FontSansBold
	FontSansItalic
	FontMonoRegular
)

func (f Font) String() string {
	switch f {
	case FontSansRegular:
		return "sans-regular"
	case FontSansBold:
		return "sans-bold"
	case FontSansItalic:
		return "sans-italic"
	case FontMonoRegular:
		return "mono-regular"
	default:
		return "<unknown Font>"
	}
}

func (f Font) validate() error {
	if f > FontMonoRegular {
		return fmt.Errorf("font value %d out of range", f)
	}
	return nil
}
