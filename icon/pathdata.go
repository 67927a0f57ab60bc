package icon

import (
	"fmt"
	"math"
	"strconv"

	"github.com/yuichi110/drawlib/geom"
)

// This file compiles SVG path data ("d" attribute) strings.

// tokenizePathData splits path data into command letters and numbers.
// A '-' or '+' starts a new number unless it follows an exponent, and
// a second '.' inside a number starts a new one, per the SVG grammar.
func tokenizePathData(d string) []string {
	var tokens []string
	var cur []byte
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	for i := 0; i < len(d); i++ {
		b := d[i]
		switch {
		case b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z':
			if b == 'e' || b == 'E' {
				cur = append(cur, b)
				continue
			}
			flush()
			tokens = append(tokens, string(b))
		case b == '-' || b == '+':
			if len(cur) > 0 && (cur[len(cur)-1] == 'e' || cur[len(cur)-1] == 'E') {
				cur = append(cur, b)
				continue
			}
			flush()
			cur = append(cur, b)
		case b == '.':
			for _, p := range cur {
				if p == '.' {
					flush()
					break
				}
			}
			cur = append(cur, b)
		case b >= '0' && b <= '9':
			cur = append(cur, b)
		default: // separator
			flush()
		}
	}
	flush()
	return tokens
}

func (c *iconCursor) compilePath(d string) error {
	tokens := tokenizePathData(d)
	i := 0
	take := func(n int) ([]float64, error) {
		if i+n > len(tokens) {
			return nil, fmt.Errorf("icon: path data ends inside a command")
		}
		out := make([]float64, n)
		for j := 0; j < n; j++ {
			f, err := strconv.ParseFloat(tokens[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("icon: bad path number %q", tokens[i+j])
			}
			out[j] = f
		}
		i += n
		return out, nil
	}
	isCmd := func(s string) bool {
		return len(s) == 1 && (s[0] >= 'A' && s[0] <= 'Z' || s[0] >= 'a' && s[0] <= 'z') &&
			s[0] != 'e' && s[0] != 'E'
	}

	var cmd byte
	var cur, start geom.Point
	var lastC, lastQ geom.Point // previous control points for S and T
	var lastCmd byte
	started := false

	for i < len(tokens) {
		if isCmd(tokens[i]) {
			cmd = tokens[i][0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				c.path.Stop(true)
				cur = start
				lastCmd = 'Z'
				continue
			}
		} else if cmd == 0 {
			return fmt.Errorf("icon: path data starts with a number")
		} else if cmd == 'M' {
			cmd = 'L' // implicit line-to after a move
		} else if cmd == 'm' {
			cmd = 'l'
		}

		rel := cmd >= 'a'
		abs := func(p geom.Point) geom.Point {
			if rel {
				return cur.Add(p)
			}
			return p
		}
		upper := cmd
		if rel {
			upper = cmd - 'a' + 'A'
		}

		switch upper {
		case 'M':
			pts, err := take(2)
			if err != nil {
				return err
			}
			cur = abs(geom.Pt(pts[0], pts[1]))
			start = cur
			c.path.Start(cur)
			started = true
		case 'L':
			pts, err := take(2)
			if err != nil {
				return err
			}
			cur = abs(geom.Pt(pts[0], pts[1]))
			c.path.Line(cur)
		case 'H':
			pts, err := take(1)
			if err != nil {
				return err
			}
			if rel {
				cur.X += pts[0]
			} else {
				cur.X = pts[0]
			}
			c.path.Line(cur)
		case 'V':
			pts, err := take(1)
			if err != nil {
				return err
			}
			if rel {
				cur.Y += pts[0]
			} else {
				cur.Y = pts[0]
			}
			c.path.Line(cur)
		case 'C':
			pts, err := take(6)
			if err != nil {
				return err
			}
			c1 := abs(geom.Pt(pts[0], pts[1]))
			c2 := abs(geom.Pt(pts[2], pts[3]))
			cur = abs(geom.Pt(pts[4], pts[5]))
			c.path.Cubic(c1, c2, cur)
			lastC = c2
		case 'S':
			pts, err := take(4)
			if err != nil {
				return err
			}
			c1 := cur
			if lastCmd == 'C' || lastCmd == 'S' {
				c1 = cur.Scale(2).Sub(lastC)
			}
			c2 := abs(geom.Pt(pts[0], pts[1]))
			cur = abs(geom.Pt(pts[2], pts[3]))
			c.path.Cubic(c1, c2, cur)
			lastC = c2
		case 'Q':
			pts, err := take(4)
			if err != nil {
				return err
			}
			ctrl := abs(geom.Pt(pts[0], pts[1]))
			cur = abs(geom.Pt(pts[2], pts[3]))
			c.path.Quad(ctrl, cur)
			lastQ = ctrl
		case 'T':
			pts, err := take(2)
			if err != nil {
				return err
			}
			ctrl := cur
			if lastCmd == 'Q' || lastCmd == 'T' {
				ctrl = cur.Scale(2).Sub(lastQ)
			}
			cur = abs(geom.Pt(pts[0], pts[1]))
			c.path.Quad(ctrl, cur)
			lastQ = ctrl
		case 'A':
			pts, err := take(7)
			if err != nil {
				return err
			}
			end := abs(geom.Pt(pts[5], pts[6]))
			c.ellipticalArc(cur, end, pts[0], pts[1], pts[2], pts[3] != 0, pts[4] != 0)
			cur = end
		default:
			return fmt.Errorf("icon: unsupported path command %q", string(cmd))
		}
		if !started {
			return fmt.Errorf("icon: path data does not start with a move-to")
		}
		lastCmd = upper
	}
	return nil
}

// ellipticalArc appends the cubic approximation of the SVG arc from
// p1 to p2, following the endpoint-to-center conversion of the SVG
// spec (section F.6.5).
func (c *iconCursor) ellipticalArc(p1, p2 geom.Point, rx, ry, rotDeg float64, largeArc, sweep bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || (p1.X == p2.X && p1.Y == p2.Y) {
		c.path.Line(p2)
		return
	}
	phi := rotDeg * math.Pi / 180
	sinp, cosp := math.Sincos(phi)

	dx, dy := (p1.X-p2.X)/2, (p1.Y-p2.Y)/2
	x1p := cosp*dx + sinp*dy
	y1p := -sinp*dx + cosp*dy

	// Scale radii up if the endpoints are too far apart.
	lam := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lam > 1 {
		s := math.Sqrt(lam)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx
	cx := cosp*cxp - sinp*cyp + (p1.X+p2.X)/2
	cy := sinp*cxp + cosp*cyp + (p1.Y+p2.Y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dTheta := theta2 - theta1
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	point := func(theta float64) geom.Point {
		sin, cos := math.Sincos(theta)
		return geom.Pt(cx+rx*cos*cosp-ry*sin*sinp, cy+rx*cos*sinp+ry*sin*cosp)
	}
	deriv := func(theta float64) geom.Point {
		sin, cos := math.Sincos(theta)
		return geom.Pt(-rx*sin*cosp-ry*cos*sinp, -rx*sin*sinp+ry*cos*cosp)
	}

	segs := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	step := dTheta / float64(segs)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for s := 0; s < segs; s++ {
		t0 := theta1 + step*float64(s)
		t1 := t0 + step
		e0, e1 := point(t0), point(t1)
		c1 := e0.Add(deriv(t0).Scale(k))
		c2 := e1.Sub(deriv(t1).Scale(k))
		if s == segs-1 {
			e1 = p2 // land exactly on the endpoint
		}
		c.path.Cubic(c1, c2, e1)
	}
}
