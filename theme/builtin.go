package theme

import (
	"fmt"

	"github.com/yuichi110/drawlib/style"
)

// Builtin bundle definitions. Each is rebuilt on every call so applied
// themes never share pointers with these definitions.

var builtinNames = []string{"default", "essentials", "monochrome"}

// BuiltinNames lists the available builtin theme bundles.
func BuiltinNames() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}

// Builtin returns the named builtin bundle, panicking on unknown names.
// Use ApplyNamed for the error-returning path.
func Builtin(name string) Bundle {
	b, err := builtin(name)
	if err != nil {
		panic(err)
	}
	return b
}

func builtin(name string) (Bundle, error) {
	switch name {
	case "default":
		return defaultBundle(), nil
	case "essentials":
		return essentialsBundle(), nil
	case "monochrome":
		return monochromeBundle(), nil
	default:
		return Bundle{}, fmt.Errorf("theme: no builtin theme named %q", name)
	}
}

func baseDefault(line, fill style.Color) StyleSet {
	return StyleSet{
		Line: &style.Line{
			Color: style.Ptr(line),
			Width: style.Ptr(2.0),
			Dash:  style.Ptr(style.Solid),
		},
		Shape: &style.Shape{
			LineColor: style.Ptr(line),
			LineWidth: style.Ptr(1.0),
			Dash:      style.Ptr(style.Solid),
			FillColor: style.Ptr(fill),
		},
		ShapeText: &style.ShapeText{
			Color: style.Ptr(line),
			Size:  style.Ptr(14.0),
			Font:  style.Ptr(style.FontSansRegular),
		},
		Text: &style.Text{
			Color:  style.Ptr(line),
			Size:   style.Ptr(16.0),
			Font:   style.Ptr(style.FontSansRegular),
			HAlign: style.Ptr(style.Left),
			VAlign: style.Ptr(style.Bottom),
		},
		Image: &style.Image{
			Alpha: style.Ptr(1.0),
		},
		Icon: &style.Icon{
			Color: style.Ptr(line),
		},
	}
}

func defaultBundle() Bundle {
	return Bundle{
		Name:       "default",
		Background: style.RGB(255, 255, 255),
		Default:    baseDefault(style.RGB(55, 63, 71), style.RGB(231, 236, 240)),
		Named: []NamedSet{
			{Name: "solid", Set: StyleSet{
				Shape: &style.Shape{FillColor: style.Ptr(style.RGB(55, 63, 71)), LineWidth: style.Ptr(0.0)},
				Line:  &style.Line{Dash: style.Ptr(style.Solid)},
			}},
			{Name: "dashed", Set: StyleSet{
				Shape: &style.Shape{Dash: style.Ptr(style.Dashed)},
				Line:  &style.Line{Dash: style.Ptr(style.Dashed)},
			}},
		},
		Colors: []NamedColor{
			{Name: "red", Color: style.RGB(239, 95, 95)},
			{Name: "green", Color: style.RGB(79, 174, 120)},
			{Name: "blue", Color: style.RGB(83, 131, 222)},
			{Name: "black", Color: style.RGB(30, 30, 30)},
			{Name: "white", Color: style.RGB(250, 250, 250)},
		},
	}
}

func essentialsBundle() Bundle {
	b := Bundle{
		Name:       "essentials",
		Background: style.RGB(252, 252, 250),
		Default:    baseDefault(style.RGB(40, 44, 52), style.RGB(224, 228, 235)),
		Colors: []NamedColor{
			{Name: "red", Color: style.RGB(224, 108, 117)},
			{Name: "orange", Color: style.RGB(209, 154, 102)},
			{Name: "yellow", Color: style.RGB(229, 192, 123)},
			{Name: "green", Color: style.RGB(152, 195, 121)},
			{Name: "blue", Color: style.RGB(97, 175, 239)},
			{Name: "purple", Color: style.RGB(198, 120, 221)},
		},
	}
	b.Default.Shape.LineWidth = style.Ptr(1.5)
	return b
}

func monochromeBundle() Bundle {
	return Bundle{
		Name:       "monochrome",
		Background: style.RGB(255, 255, 255),
		Default:    baseDefault(style.RGB(0, 0, 0), style.RGB(255, 255, 255)),
		Named: []NamedSet{
			{Name: "gray", Set: colorSet(style.RGB(128, 128, 128))},
			{Name: "lightgray", Set: colorSet(style.RGB(200, 200, 200))},
		},
		Colors: []NamedColor{
			{Name: "black", Color: style.RGB(0, 0, 0)},
			{Name: "white", Color: style.RGB(255, 255, 255)},
		},
	}
}
