package canvas

import (
	"image/color"
	"strconv"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/render"
	"github.com/yuichi110/drawlib/shape"
	"github.com/yuichi110/drawlib/style"
)

const gridLabelSize = 3.0

// gridArtifacts builds the coordinate overlay for the `_grid` output
// file: one line per grid step in each direction, x labels along the
// bottom edge and y labels along the left edge.
func (c *Canvas) gridArtifacts() []artifact {
	linePaint := render.Paint{
		StrokeColor:       color.NRGBA{R: 110, G: 110, B: 110, A: 150},
		LineWidth:         0.2,
		Opacity:           1,
		UseNonZeroWinding: true,
	}
	labelPaint := render.Paint{
		FillColor:         color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		Opacity:           1,
		UseNonZeroWinding: true,
	}

	var arts []artifact
	w, h, step := c.cfg.Width, c.cfg.Height, c.cfg.GridStep

	for x := 0.0; x <= w+geom.Tol; x += step {
		var p shape.Path
		p.Start(geom.Pt(x, 0))
		p.Line(geom.Pt(x, h))
		p.Stop(false)
		arts = append(arts, pathArtifact{path: p, paint: linePaint})
		if a, ok := gridLabel(x, geom.Pt(x+0.6, 0.6), labelPaint); ok {
			arts = append(arts, a)
		}
	}
	for y := 0.0; y <= h+geom.Tol; y += step {
		var p shape.Path
		p.Start(geom.Pt(0, y))
		p.Line(geom.Pt(w, y))
		p.Stop(false)
		arts = append(arts, pathArtifact{path: p, paint: linePaint})
		if y == 0 {
			continue // the origin label is already placed by the x pass
		}
		if a, ok := gridLabel(y, geom.Pt(0.6, y+0.6), labelPaint); ok {
			arts = append(arts, a)
		}
	}
	return arts
}

// gridLabel renders a coordinate value with its baseline-left corner
// at `at`. A font failure just drops the label; the grid file is a
// debugging aid and should never fail a save.
func gridLabel(v float64, at geom.Point, paint render.Paint) (artifact, bool) {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	outline, _, err := render.TextOutline(style.FontMonoRegular, text, gridLabelSize)
	if err != nil {
		return nil, false
	}
	outline = outline.Transform(geom.Identity.Translate(at.X, at.Y))
	return pathArtifact{path: outline, paint: paint}, true
}
