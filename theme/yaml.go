package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yuichi110/drawlib/style"
)

// Custom theme bundles can be described in YAML:
//
//	name: corporate
//	background: "#ffffff"
//	default:
//	  shape: {line-color: "#223344", fill-color: "#e0e4eb", line-width: 1.5}
//	  text: {color: "#223344", size: 16, font: sans-regular}
//	styles:
//	  - name: accent
//	    shape: {fill-color: "#ffcc00"}
//	colors:
//	  - {name: red, color: "#e06c75"}
//
// The decoded document goes through the same Bundle validation as a
// hand-built bundle, so a malformed file never touches the registries.

type bundleDoc struct {
	Name       string        `yaml:"name"`
	Background string        `yaml:"background"`
	Default    styleSetDoc   `yaml:"default"`
	Styles     []namedSetDoc `yaml:"styles"`
	Colors     []colorDoc    `yaml:"colors"`
}

type namedSetDoc struct {
	Name        string `yaml:"name"`
	styleSetDoc `yaml:",inline"`
}

type colorDoc struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type styleSetDoc struct {
	Line      *lineDoc      `yaml:"line"`
	Shape     *shapeDoc     `yaml:"shape"`
	ShapeText *shapeTextDoc `yaml:"shape-text"`
	Text      *textDoc      `yaml:"text"`
	Image     *imageDoc     `yaml:"image"`
	Icon      *iconDoc      `yaml:"icon"`
}

type lineDoc struct {
	Color *string  `yaml:"color"`
	Width *float64 `yaml:"width"`
	Dash  *string  `yaml:"dash"`
	Alpha *float64 `yaml:"alpha"`
}

type shapeDoc struct {
	LineColor *string  `yaml:"line-color"`
	LineWidth *float64 `yaml:"line-width"`
	Dash      *string  `yaml:"dash"`
	FillColor *string  `yaml:"fill-color"`
	Alpha     *float64 `yaml:"alpha"`
	HAlign    *string  `yaml:"halign"`
	VAlign    *string  `yaml:"valign"`
}

type shapeTextDoc struct {
	Color *string  `yaml:"color"`
	Size  *float64 `yaml:"size"`
	Font  *string  `yaml:"font"`
	Alpha *float64 `yaml:"alpha"`
}

type textDoc struct {
	Color       *string  `yaml:"color"`
	Size        *float64 `yaml:"size"`
	Font        *string  `yaml:"font"`
	Alpha       *float64 `yaml:"alpha"`
	HAlign      *string  `yaml:"halign"`
	VAlign      *string  `yaml:"valign"`
	BgColor     *string  `yaml:"bg-color"`
	BgLineColor *string  `yaml:"bg-line-color"`
	BgLineWidth *float64 `yaml:"bg-line-width"`
}

type imageDoc struct {
	Alpha       *float64 `yaml:"alpha"`
	HAlign      *string  `yaml:"halign"`
	VAlign      *string  `yaml:"valign"`
	BorderColor *string  `yaml:"border-color"`
	BorderWidth *float64 `yaml:"border-width"`
}

type iconDoc struct {
	Color  *string  `yaml:"color"`
	Alpha  *float64 `yaml:"alpha"`
	HAlign *string  `yaml:"halign"`
	VAlign *string  `yaml:"valign"`
}

// LoadBundle decodes a YAML theme bundle. The result still needs
// Theme.Apply, which performs full validation.
func LoadBundle(r io.Reader) (Bundle, error) {
	var doc bundleDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Bundle{}, fmt.Errorf("theme: decode bundle: %w", err)
	}
	return doc.toBundle()
}

// LoadBundleFile reads a YAML theme bundle from disk.
func LoadBundleFile(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("theme: open bundle: %w", err)
	}
	defer f.Close()
	return LoadBundle(f)
}

func (doc bundleDoc) toBundle() (Bundle, error) {
	b := Bundle{Name: doc.Name, Background: style.RGB(255, 255, 255)}
	if doc.Background != "" {
		c, err := style.Hex(doc.Background)
		if err != nil {
			return Bundle{}, fmt.Errorf("theme %q: background: %w", doc.Name, err)
		}
		b.Background = c
	}
	var err error
	if b.Default, err = doc.Default.toSet(); err != nil {
		return Bundle{}, fmt.Errorf("theme %q: default set: %w", doc.Name, err)
	}
	for _, ns := range doc.Styles {
		set, err := ns.styleSetDoc.toSet()
		if err != nil {
			return Bundle{}, fmt.Errorf("theme %q: set %q: %w", doc.Name, ns.Name, err)
		}
		b.Named = append(b.Named, NamedSet{Name: ns.Name, Set: set})
	}
	for _, nc := range doc.Colors {
		c, err := style.Hex(nc.Color)
		if err != nil {
			return Bundle{}, fmt.Errorf("theme %q: color %q: %w", doc.Name, nc.Name, err)
		}
		b.Colors = append(b.Colors, NamedColor{Name: nc.Name, Color: c})
	}
	return b, nil
}

func (doc styleSetDoc) toSet() (StyleSet, error) {
	var set StyleSet
	var err error
	if doc.Line != nil {
		if set.Line, err = doc.Line.toStyle(); err != nil {
			return set, err
		}
	}
	if doc.Shape != nil {
		if set.Shape, err = doc.Shape.toStyle(); err != nil {
			return set, err
		}
	}
	if doc.ShapeText != nil {
		if set.ShapeText, err = doc.ShapeText.toStyle(); err != nil {
			return set, err
		}
	}
	if doc.Text != nil {
		if set.Text, err = doc.Text.toStyle(); err != nil {
			return set, err
		}
	}
	if doc.Image != nil {
		if set.Image, err = doc.Image.toStyle(); err != nil {
			return set, err
		}
	}
	if doc.Icon != nil {
		if set.Icon, err = doc.Icon.toStyle(); err != nil {
			return set, err
		}
	}
	return set, nil
}

func parseColor(s *string) (*style.Color, error) {
	if s == nil {
		return nil, nil
	}
	c, err := style.Hex(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func parseDash(s *string) (*style.DashStyle, error) {
	if s == nil {
		return nil, nil
	}
	var d style.DashStyle
	switch *s {
	case "solid":
		d = style.Solid
	case "dashed":
		d = style.Dashed
	case "dotted":
		d = style.Dotted
	case "dashdot":
		d = style.DashDot
	default:
		return nil, fmt.Errorf("unknown dash style %q", *s)
	}
	return &d, nil
}

func parseFont(s *string) (*style.Font, error) {
	if s == nil {
		return nil, nil
	}
	var f style.Font
	switch *s {
	case "sans-regular":
		f = style.FontSansRegular
	case "sans-bold":
		f = style.FontSansBold
	case "sans-italic":
		f = style.FontSansItalic
	case "mono-regular":
		f = style.FontMonoRegular
	default:
		return nil, fmt.Errorf("unknown font %q", *s)
	}
	return &f, nil
}

func parseHAlign(s *string) (*style.HAlign, error) {
	if s == nil {
		return nil, nil
	}
	var h style.HAlign
	switch *s {
	case "left":
		h = style.Left
	case "center":
		h = style.HCenter
	case "right":
		h = style.Right
	default:
		return nil, fmt.Errorf("unknown halign %q", *s)
	}
	return &h, nil
}

func parseVAlign(s *string) (*style.VAlign, error) {
	if s == nil {
		return nil, nil
	}
	var v style.VAlign
	switch *s {
	case "bottom":
		v = style.Bottom
	case "center":
		v = style.VCenter
	case "top":
		v = style.Top
	default:
		return nil, fmt.Errorf("unknown valign %q", *s)
	}
	return &v, nil
}

func (d lineDoc) toStyle() (*style.Line, error) {
	color, err := parseColor(d.Color)
	if err != nil {
		return nil, err
	}
	dash, err := parseDash(d.Dash)
	if err != nil {
		return nil, err
	}
	return &style.Line{Color: color, Width: d.Width, Dash: dash, Alpha: d.Alpha}, nil
}

func (d shapeDoc) toStyle() (*style.Shape, error) {
	lineColor, err := parseColor(d.LineColor)
	if err != nil {
		return nil, err
	}
	fillColor, err := parseColor(d.FillColor)
	if err != nil {
		return nil, err
	}
	dash, err := parseDash(d.Dash)
	if err != nil {
		return nil, err
	}
	h, err := parseHAlign(d.HAlign)
	if err != nil {
		return nil, err
	}
	v, err := parseVAlign(d.VAlign)
	if err != nil {
		return nil, err
	}
	return &style.Shape{
		LineColor: lineColor, LineWidth: d.LineWidth, Dash: dash,
		FillColor: fillColor, Alpha: d.Alpha, HAlign: h, VAlign: v,
	}, nil
}

func (d shapeTextDoc) toStyle() (*style.ShapeText, error) {
	color, err := parseColor(d.Color)
	if err != nil {
		return nil, err
	}
	font, err := parseFont(d.Font)
	if err != nil {
		return nil, err
	}
	return &style.ShapeText{Color: color, Size: d.Size, Font: font, Alpha: d.Alpha}, nil
}

func (d textDoc) toStyle() (*style.Text, error) {
	color, err := parseColor(d.Color)
	if err != nil {
		return nil, err
	}
	font, err := parseFont(d.Font)
	if err != nil {
		return nil, err
	}
	h, err := parseHAlign(d.HAlign)
	if err != nil {
		return nil, err
	}
	v, err := parseVAlign(d.VAlign)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(d.BgColor)
	if err != nil {
		return nil, err
	}
	bgLine, err := parseColor(d.BgLineColor)
	if err != nil {
		return nil, err
	}
	return &style.Text{
		Color: color, Size: d.Size, Font: font, Alpha: d.Alpha,
		HAlign: h, VAlign: v,
		BgColor: bg, BgLineColor: bgLine, BgLineWidth: d.BgLineWidth,
	}, nil
}

func (d imageDoc) toStyle() (*style.Image, error) {
	h, err := parseHAlign(d.HAlign)
	if err != nil {
		return nil, err
	}
	v, err := parseVAlign(d.VAlign)
	if err != nil {
		return nil, err
	}
	border, err := parseColor(d.BorderColor)
	if err != nil {
		return nil, err
	}
	return &style.Image{
		Alpha: d.Alpha, HAlign: h, VAlign: v,
		BorderColor: border, BorderWidth: d.BorderWidth,
	}, nil
}

func (d iconDoc) toStyle() (*style.Icon, error) {
	color, err := parseColor(d.Color)
	if err != nil {
		return nil, err
	}
	h, err := parseHAlign(d.HAlign)
	if err != nil {
		return nil, err
	}
	v, err := parseVAlign(d.VAlign)
	if err != nil {
		return nil, err
	}
	return &style.Icon{Color: color, Alpha: d.Alpha, HAlign: h, VAlign: v}, nil
}
