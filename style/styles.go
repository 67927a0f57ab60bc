package style

import "fmt"

// Every style record is a flat set of independently-optional fields.
// A nil field means "inherit from the lower-priority layer"; the zero
// record is therefore the identity of Merge. Merge is field-wise, the
// receiver is the lower-priority layer and the argument wins wherever
// it is set. Neither operand is mutated and results share no pointers
// with their operands, so registry copies and caller working copies
// never alias.

// Ptr returns a pointer to v, for filling optional style fields inline.
func Ptr[T any](v T) *T { return &v }

func cp[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func pick[T any](base, over *T) *T {
	if over != nil {
		return cp(over)
	}
	return cp(base)
}

func validateOpt[T interface{ validate() error }](kind, field string, p *T) error {
	if p == nil {
		return nil
	}
	if err := (*p).validate(); err != nil {
		return fmt.Errorf("%s style: field %s: %w", kind, field, err)
	}
	return nil
}

func validateColor(kind, field string, p *Color) error {
	if p == nil {
		return nil
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s style: field %s: %w", kind, field, err)
	}
	return nil
}

func validateAlpha(kind, field string, p *float64) error {
	if p == nil {
		return nil
	}
	if *p < 0 || *p > 1 {
		return fmt.Errorf("%s style: field %s value %v out of range [0, 1]", kind, field, *p)
	}
	return nil
}

func validateNonNeg(kind, field string, p *float64) error {
	if p == nil {
		return nil
	}
	if *p < 0 {
		return fmt.Errorf("%s style: field %s value %v must not be negative", kind, field, *p)
	}
	return nil
}

// Line styles lines, polylines and line arrows.
type Line struct {
	Color *Color
	Width *float64
	Dash  *DashStyle
	Alpha *float64
}

func (s Line) Merge(o Line) Line {
	return Line{
		Color: pick(s.Color, o.Color),
		Width: pick(s.Width, o.Width),
		Dash:  pick(s.Dash, o.Dash),
		Alpha: pick(s.Alpha, o.Alpha),
	}
}

func (s Line) Clone() Line { return s.Merge(Line{}) }

func (s Line) Validate() error {
	if err := validateColor("line", "Color", s.Color); err != nil {
		return err
	}
	if err := validateNonNeg("line", "Width", s.Width); err != nil {
		return err
	}
	if err := validateOpt("line", "Dash", s.Dash); err != nil {
		return err
	}
	return validateAlpha("line", "Alpha", s.Alpha)
}

// Shape styles closed shapes: outline stroke plus fill.
type Shape struct {
	LineColor *Color
	LineWidth *float64
	Dash      *DashStyle
	FillColor *Color
	Alpha     *float64
	HAlign    *HAlign
	VAlign    *VAlign
}

func (s Shape) Merge(o Shape) Shape {
	return Shape{
		LineColor: pick(s.LineColor, o.LineColor),
		LineWidth: pick(s.LineWidth, o.LineWidth),
		Dash:      pick(s.Dash, o.Dash),
		FillColor: pick(s.FillColor, o.FillColor),
		Alpha:     pick(s.Alpha, o.Alpha),
		HAlign:    pick(s.HAlign, o.HAlign),
		VAlign:    pick(s.VAlign, o.VAlign),
	}
}

func (s Shape) Clone() Shape { return s.Merge(Shape{}) }

func (s Shape) Validate() error {
	if err := validateColor("shape", "LineColor", s.LineColor); err != nil {
		return err
	}
	if err := validateNonNeg("shape", "LineWidth", s.LineWidth); err != nil {
		return err
	}
	if err := validateOpt("shape", "Dash", s.Dash); err != nil {
		return err
	}
	if err := validateColor("shape", "FillColor", s.FillColor); err != nil {
		return err
	}
	if err := validateAlpha("shape", "Alpha", s.Alpha); err != nil {
		return err
	}
	if err := validateOpt("shape", "HAlign", s.HAlign); err != nil {
		return err
	}
	return validateOpt("shape", "VAlign", s.VAlign)
}

// ShapeText styles a label embedded in a shape.
type ShapeText struct {
	Color *Color
	Size  *float64
	Font  *Font
	Alpha *float64
}

func (s ShapeText) Merge(o ShapeText) ShapeText {
	return ShapeText{
		Color: pick(s.Color, o.Color),
		Size:  pick(s.Size, o.Size),
		Font:  pick(s.Font, o.Font),
		Alpha: pick(s.Alpha, o.Alpha),
	}
}

func (s ShapeText) Clone() ShapeText { return s.Merge(ShapeText{}) }

func (s ShapeText) Validate() error {
	if err := validateColor("shape text", "Color", s.Color); err != nil {
		return err
	}
	if err := validateNonNeg("shape text", "Size", s.Size); err != nil {
		return err
	}
	if err := validateOpt("shape text", "Font", s.Font); err != nil {
		return err
	}
	return validateAlpha("shape text", "Alpha", s.Alpha)
}

// Text styles free-standing text runs, including the optional
// background box drawn behind the run.
type Text struct {
	Color       *Color
	Size        *float64
	Font        *Font
	Alpha       *float64
	HAlign      *HAlign
	VAlign      *VAlign
	BgColor     *Color
	BgLineColor *Color
	BgLineWidth *float64
}

func (s Text) Merge(o Text) Text {
	return Text{
		Color:       pick(s.Color, o.Color),
		Size:        pick(s.Size, o.Size),
		Font:        pick(s.Font, o.Font),
		Alpha:       pick(s.Alpha, o.Alpha),
		HAlign:      pick(s.HAlign, o.HAlign),
		VAlign:      pick(s.VAlign, o.VAlign),
		BgColor:     pick(s.BgColor, o.BgColor),
		BgLineColor: pick(s.BgLineColor, o.BgLineColor),
		BgLineWidth: pick(s.BgLineWidth, o.BgLineWidth),
	}
}

func (s Text) Clone() Text { return s.Merge(Text{}) }

func (s Text) Validate() error {
	if err := validateColor("text", "Color", s.Color); err != nil {
		return err
	}
	if err := validateNonNeg("text", "Size", s.Size); err != nil {
		return err
	}
	if err := validateOpt("text", "Font", s.Font); err != nil {
		return err
	}
	if err := validateAlpha("text", "Alpha", s.Alpha); err != nil {
		return err
	}
	if err := validateOpt("text", "HAlign", s.HAlign); err != nil {
		return err
	}
	if err := validateOpt("text", "VAlign", s.VAlign); err != nil {
		return err
	}
	if err := validateColor("text", "BgColor", s.BgColor); err != nil {
		return err
	}
	if err := validateColor("text", "BgLineColor", s.BgLineColor); err != nil {
		return err
	}
	return validateNonNeg("text", "BgLineWidth", s.BgLineWidth)
}

// Image styles raster image placement.
type Image struct {
	Alpha       *float64
	HAlign      *HAlign
	VAlign      *VAlign
	BorderColor *Color
	BorderWidth *float64
}

func (s Image) Merge(o Image) Image {
	return Image{
		Alpha:       pick(s.Alpha, o.Alpha),
		HAlign:      pick(s.HAlign, o.HAlign),
		VAlign:      pick(s.VAlign, o.VAlign),
		BorderColor: pick(s.BorderColor, o.BorderColor),
		BorderWidth: pick(s.BorderWidth, o.BorderWidth),
	}
}

func (s Image) Clone() Image { return s.Merge(Image{}) }

func (s Image) Validate() error {
	if err := validateAlpha("image", "Alpha", s.Alpha); err != nil {
		return err
	}
	if err := validateOpt("image", "HAlign", s.HAlign); err != nil {
		return err
	}
	if err := validateOpt("image", "VAlign", s.VAlign); err != nil {
		return err
	}
	if err := validateColor("image", "BorderColor", s.BorderColor); err != nil {
		return err
	}
	return validateNonNeg("image", "BorderWidth", s.BorderWidth)
}

// Icon styles vector icon placement: a single fill color applied to the
// icon's glyph paths.
type Icon struct {
	Color  *Color
	Alpha  *float64
	HAlign *HAlign
	VAlign *VAlign
}

func (s Icon) Merge(o Icon) Icon {
	return Icon{
		Color:  pick(s.Color, o.Color),
		Alpha:  pick(s.Alpha, o.Alpha),
		HAlign: pick(s.HAlign, o.HAlign),
		VAlign: pick(s.VAlign, o.VAlign),
	}
}

func (s Icon) Clone() Icon { return s.Merge(Icon{}) }

func (s Icon) Validate() error {
	if err := validateColor("icon", "Color", s.Color); err != nil {
		return err
	}
	if err := validateAlpha("icon", "Alpha", s.Alpha); err != nil {
		return err
	}
	if err := validateOpt("icon", "HAlign", s.HAlign); err != nil {
		return err
	}
	return validateOpt("icon", "VAlign", s.VAlign)
}
