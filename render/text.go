package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/shape"
	"github.com/yuichi110/drawlib/style"
)

// TextMetrics describes the extent of a laid out line of text, in
// canvas units relative to the baseline origin.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height is the nominal line height.
func (m TextMetrics) Height() float64 { return m.Ascent + m.Descent }

// TextOutline converts one line of text to a filled outline path.
// The path starts at the baseline origin and extends Width to the
// right, with y growing upwards.
func TextOutline(kind style.Font, text string, size float64) (shape.Path, TextMetrics, error) {
	f, err := loadFont(kind)
	if err != nil {
		return nil, TextMetrics{}, err
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	met, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, TextMetrics{}, fmt.Errorf("render: font metrics: %w", err)
	}
	tm := TextMetrics{
		Ascent:  float64(met.Ascent) / 64,
		Descent: float64(met.Descent) / 64,
	}

	var p shape.Path
	x := 0.0
	var prev sfnt.GlyphIndex
	hasPrev := false
	for _, r := range text {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, tm, fmt.Errorf("render: glyph lookup %q: %w", r, err)
		}
		if hasPrev {
			if k, err := f.Kern(&buf, prev, gi, ppem, font.HintingNone); err == nil {
				x += float64(k) / 64
			}
		}
		segs, err := f.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil {
			return nil, tm, fmt.Errorf("render: loading glyph %q: %w", r, err)
		}
		appendGlyph(&p, segs, x)
		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return nil, tm, fmt.Errorf("render: glyph advance %q: %w", r, err)
		}
		x += float64(adv) / 64
		prev, hasPrev = gi, true
	}
	tm.Width = x
	return p, tm, nil
}

// appendGlyph adds the glyph contours to p, shifted right by dx and
// flipped to y-up baseline coordinates. Contours are closed at each
// move-to and at the end of the glyph.
func appendGlyph(p *shape.Path, segs []sfnt.Segment, dx float64) {
	pt := func(a fixed.Point26_6) geom.Point {
		return geom.Pt(dx+float64(a.X)/64, -float64(a.Y)/64)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Stop(true)
			}
			p.Start(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.Line(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.Quad(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.Cubic(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p.Stop(true)
	}
}
