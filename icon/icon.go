// Package icon loads small single-color SVG glyph files into paths.
// Only the subset of SVG needed for flat icons is supported: path data
// and the basic shape elements, without gradients, defs or text.
package icon

import (
	"errors"
	"io"
	"os"

	"encoding/xml"

	"golang.org/x/net/html/charset"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/shape"
)

// ErrorMode determines how the parser reacts to an unsupported
// element found in the icon file.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// Icon holds the glyph outline parsed from an SVG file, in the file's
// viewBox coordinates (y axis pointing down, as in SVG).
type Icon struct {
	ViewBox geom.Rect
	Titles  []string
	Path    shape.Path
}

// ReadStream parses the icon from the given reader. errMode determines
// if the parser ignores, errors out, or logs a warning when it meets
// an element it does not handle.
func ReadStream(stream io.Reader, errMode ErrorMode) (*Icon, error) {
	icon := &Icon{}
	cursor := &iconCursor{icon: icon, errorMode: errMode, transforms: []geom.Matrix2D{geom.Identity}}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return icon, err
			}
		case xml.EndElement:
			cursor.transforms = cursor.transforms[:len(cursor.transforms)-1]
			if se.Name.Local == "title" {
				cursor.inTitleText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
		}
	}
	if icon.ViewBox.W == 0 || icon.ViewBox.H == 0 {
		b := icon.Path.Bounds()
		icon.ViewBox = geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
	}
	return icon, nil
}

// ReadFile reads the icon from the given file path.
func ReadFile(name string, errMode ErrorMode) (*Icon, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStream(f, errMode)
}

// Fit maps the glyph into a w-by-h box anchored at xy, flipping the
// y axis so the icon is upright in canvas coordinates (y pointing up),
// and rotating by angle degrees about the box center.
func (ic *Icon) Fit(xy geom.Point, w, h, angle float64, align shape.Align) shape.Path {
	if ic.ViewBox.W == 0 || ic.ViewBox.H == 0 {
		return nil
	}
	center := shape.AnchorCenter(xy, w, h, align)
	sx := w / ic.ViewBox.W
	sy := h / ic.ViewBox.H
	// viewBox center to origin, scale with the y flip, then place.
	m := geom.Identity.
		Scale(sx, -sy).
		Translate(-(ic.ViewBox.X + ic.ViewBox.W/2), -(ic.ViewBox.Y + ic.ViewBox.H/2))
	p := ic.Path.Transform(m)
	p = p.Rotate(geom.Point{}, angle)
	return p.Transform(geom.Identity.Translate(center.X, center.Y))
}
