package icon

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"encoding/xml"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/shape"
)

var errParamMismatch = errors.New("param mismatch")

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon       *Icon
	errorMode  ErrorMode
	transforms []geom.Matrix2D
	points     []float64
	path       shape.Path

	inTitleText bool
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"title":    titleF,
	"desc":     gF,
	"path":     pathF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	m := c.transforms[len(c.transforms)-1]
	for _, attr := range se.Attr {
		if attr.Name.Local == "transform" {
			var err error
			m, err = c.parseTransform(m, attr.Value)
			if err != nil {
				return err
			}
		}
	}
	c.transforms = append(c.transforms, m)

	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		errStr := "Cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	if err := df(c, se.Attr); err != nil {
		return err
	}
	if len(c.path) > 0 {
		c.icon.Path.Append(c.path.Transform(m))
		c.path = c.path[:0]
	}
	return nil
}

func (c *iconCursor) parseTransform(m geom.Matrix2D, v string) (geom.Matrix2D, error) {
	ts := strings.Split(v, ")")
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m, errParamMismatch // badly formed transformation
		}
		if err := c.getPoints(d[1]); err != nil {
			return m, err
		}
		var err error
		m, err = readTransformAttr(m, strings.ToLower(strings.TrimSpace(d[0])), c.points)
		if err != nil {
			return m, err
		}
	}
	return m, nil
}

func readTransformAttr(m1 geom.Matrix2D, k string, pts []float64) (geom.Matrix2D, error) {
	ln := len(pts)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(pts[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(pts[1], pts[2]).
				Rotate(pts[0]*math.Pi/180).
				Translate(-pts[1], -pts[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(pts[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(pts[0], pts[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(pts[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(pts[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(pts[0], pts[0])
		} else if ln == 2 {
			m1 = m1.Scale(pts[0], pts[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(geom.Matrix2D{
				A: pts[0], B: pts[1],
				C: pts[2], D: pts[3],
				E: pts[4], F: pts[5],
			})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func parseBasicFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}

// getPoints reads a comma or space separated list of numbers into
// c.points, reusing the slice.
func (c *iconCursor) getPoints(s string) error {
	c.points = c.points[:0]
	for _, v := range splitOnCommaOrSpace(s) {
		f, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
	}
	return nil
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			err = c.getPoints(attr.Value)
			if err == nil && len(c.points) != 4 {
				return errParamMismatch
			}
			if err == nil {
				c.icon.ViewBox = geom.Rect{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}
			}
		case "width":
			width, err = parseBasicFloat(attr.Value)
		case "height":
			height, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the transform

func titleF(c *iconCursor, _ []xml.Attr) error {
	c.icon.Titles = append(c.icon.Titles, "")
	c.inTitleText = true
	return nil
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			return c.compilePath(attr.Value)
		}
	}
	return nil
}

// quarterK is the cubic control distance approximating a quarter
// ellipse arc, 4/3*(sqrt(2)-1).
const quarterK = 0.5522847498307936

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseBasicFloat(attr.Value)
		case "y":
			y, err = parseBasicFloat(attr.Value)
		case "width":
			w, err = parseBasicFloat(attr.Value)
		case "height":
			h, err = parseBasicFloat(attr.Value)
		case "rx":
			rx, err = parseBasicFloat(attr.Value)
		case "ry":
			ry, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 {
		return nil
	}
	if rx == 0 {
		rx = ry
	}
	if ry == 0 {
		ry = rx
	}
	c.addRoundRect(x, y, w, h, math.Min(rx, w/2), math.Min(ry, h/2))
	return nil
}

func (c *iconCursor) addRoundRect(x, y, w, h, rx, ry float64) {
	if rx == 0 || ry == 0 {
		c.path.Start(geom.Pt(x, y))
		c.path.Line(geom.Pt(x+w, y))
		c.path.Line(geom.Pt(x+w, y+h))
		c.path.Line(geom.Pt(x, y+h))
		c.path.Stop(true)
		return
	}
	kx, ky := quarterK*rx, quarterK*ry
	c.path.Start(geom.Pt(x+rx, y))
	c.path.Line(geom.Pt(x+w-rx, y))
	c.path.Cubic(geom.Pt(x+w-rx+kx, y), geom.Pt(x+w, y+ry-ky), geom.Pt(x+w, y+ry))
	c.path.Line(geom.Pt(x+w, y+h-ry))
	c.path.Cubic(geom.Pt(x+w, y+h-ry+ky), geom.Pt(x+w-rx+kx, y+h), geom.Pt(x+w-rx, y+h))
	c.path.Line(geom.Pt(x+rx, y+h))
	c.path.Cubic(geom.Pt(x+rx-kx, y+h), geom.Pt(x, y+h-ry+ky), geom.Pt(x, y+h-ry))
	c.path.Line(geom.Pt(x, y+ry))
	c.path.Cubic(geom.Pt(x, y+ry-ky), geom.Pt(x+rx-kx, y), geom.Pt(x+rx, y))
	c.path.Stop(true)
}

func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseBasicFloat(attr.Value)
		case "cy":
			cy, err = parseBasicFloat(attr.Value)
		case "r":
			rx, err = parseBasicFloat(attr.Value)
			ry = rx
		case "rx":
			rx, err = parseBasicFloat(attr.Value)
		case "ry":
			ry, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil
	}
	kx, ky := quarterK*rx, quarterK*ry
	c.path.Start(geom.Pt(cx+rx, cy))
	c.path.Cubic(geom.Pt(cx+rx, cy+ky), geom.Pt(cx+kx, cy+ry), geom.Pt(cx, cy+ry))
	c.path.Cubic(geom.Pt(cx-kx, cy+ry), geom.Pt(cx-rx, cy+ky), geom.Pt(cx-rx, cy))
	c.path.Cubic(geom.Pt(cx-rx, cy-ky), geom.Pt(cx-kx, cy-ry), geom.Pt(cx, cy-ry))
	c.path.Cubic(geom.Pt(cx+kx, cy-ry), geom.Pt(cx+rx, cy-ky), geom.Pt(cx+rx, cy))
	c.path.Stop(true)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseBasicFloat(attr.Value)
		case "y1":
			y1, err = parseBasicFloat(attr.Value)
		case "x2":
			x2, err = parseBasicFloat(attr.Value)
		case "y2":
			y2, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.path.Start(geom.Pt(x1, y1))
	c.path.Line(geom.Pt(x2, y2))
	return nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	return c.addPolyline(attrs, false)
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	return c.addPolyline(attrs, true)
}

func (c *iconCursor) addPolyline(attrs []xml.Attr, closed bool) error {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return err
		}
		if len(c.points) < 4 || len(c.points)%2 != 0 {
			return errParamMismatch
		}
		c.path.Start(geom.Pt(c.points[0], c.points[1]))
		for i := 2; i < len(c.points); i += 2 {
			c.path.Line(geom.Pt(c.points[i], c.points[i+1]))
		}
		c.path.Stop(closed)
	}
	return nil
}
