// Package canvas implements the drawing surface: an append-only list
// of drawable artifacts accumulated by drawing calls and consumed by
// Save, with per-call style resolution against the process-wide theme.
//
// A canvas is a small state machine. It starts Unconfigured; Config
// moves it to Configured; the first drawing call moves it to Drawing.
// Config is rejected once drawing has started, since the pixel
// dimensions would no longer match coordinates already committed.
// Save writes the output files and returns the canvas to Configured
// with an empty artifact list, so the same configuration can be drawn
// on again. Clear returns to Unconfigured from any state; it never
// touches the theme, which is process-wide and independent.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/imageio"
	"github.com/yuichi110/drawlib/render"
	"github.com/yuichi110/drawlib/shape"
	"github.com/yuichi110/drawlib/style"
	"github.com/yuichi110/drawlib/theme"
)

type state uint8

const (
	stateUnconfigured state = iota
	stateConfigured
	stateDrawing
)

// Config holds the canvas parameters. The zero value of each field
// selects its default: a 100 by 100 unit canvas rendered at 10 pixels
// per unit, theme background, no grid overlay.
type Config struct {
	Width  float64 // canvas units
	Height float64
	// PixelScale is the number of pixels per canvas unit for raster
	// output. PDF output always maps one unit to one point.
	PixelScale float64
	// Background overrides the theme background when set.
	Background *style.Color
	// Grid requests a second `name_grid.ext` output file on every
	// save, annotated with grid lines and coordinate labels.
	Grid     bool
	GridStep float64
}

func (cfg Config) withDefaults() Config {
	if cfg.Width == 0 {
		cfg.Width = 100
	}
	if cfg.Height == 0 {
		cfg.Height = 100
	}
	if cfg.PixelScale == 0 {
		cfg.PixelScale = 10
	}
	if cfg.GridStep == 0 {
		cfg.GridStep = 10
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("canvas: width %v and height %v must be positive", cfg.Width, cfg.Height)
	}
	if cfg.PixelScale <= 0 {
		return fmt.Errorf("canvas: pixel scale %v must be positive", cfg.PixelScale)
	}
	if cfg.GridStep <= 0 {
		return fmt.Errorf("canvas: grid step %v must be positive", cfg.GridStep)
	}
	if cfg.Background != nil {
		if err := cfg.Background.Validate(); err != nil {
			return fmt.Errorf("canvas: background: %w", err)
		}
	}
	return nil
}

// An artifact is one committed drawing call, already in final canvas
// coordinates, waiting to be replayed onto an output surface.
type artifact interface {
	isArtifact()
}

// pathArtifact paints a path. LineWidth and dash runs are in canvas
// units; they are scaled to the output device at replay time.
type pathArtifact struct {
	path  shape.Path
	paint render.Paint
}

type imageArtifact struct {
	img    image.Image
	center geom.Point
	w, h   float64
	angle  float64
	alpha  float64
}

func (pathArtifact) isArtifact()  {}
func (imageArtifact) isArtifact() {}

// Canvas is a single drawing surface. It is not safe for concurrent
// use; like the theme it is meant for single-script, single-goroutine
// drawing.
type Canvas struct {
	state     state
	cfg       Config
	theme     *theme.Theme
	artifacts []artifact
}

// New returns an unconfigured canvas resolving styles against the
// process-wide default theme.
func New() *Canvas {
	return NewWithTheme(theme.Default())
}

// NewWithTheme returns an unconfigured canvas resolving styles against
// the given theme.
func NewWithTheme(t *theme.Theme) *Canvas {
	return &Canvas{cfg: Config{}.withDefaults(), theme: t}
}

// Config sets the canvas parameters. It is legal only before any
// drawing call; reconfiguring a canvas that has been drawn on is a
// usage error, call Clear first.
func (c *Canvas) Config(cfg Config) error {
	if c.state == stateDrawing {
		return c.fail(errors.New("canvas: config is not allowed after drawing has started; call Clear first"))
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return c.fail(err)
	}
	c.cfg = cfg
	c.artifacts = nil
	c.state = stateConfigured
	return nil
}

// Clear discards all accumulated artifacts and the configuration,
// returning the canvas to its initial state. The theme is untouched.
func (c *Canvas) Clear() {
	c.cfg = Config{}.withDefaults()
	c.artifacts = nil
	c.state = stateUnconfigured
}

// push commits one artifact. Every drawing call funnels through here,
// so the first one flips the canvas into the Drawing state.
func (c *Canvas) push(a artifact) {
	c.state = stateDrawing
	c.artifacts = append(c.artifacts, a)
}

func (c *Canvas) pushPath(p shape.Path, paint render.Paint) {
	c.push(pathArtifact{path: p, paint: paint})
}

// background resolves the effective background color.
func (c *Canvas) background() style.Color {
	if c.cfg.Background != nil {
		return *c.cfg.Background
	}
	return c.theme.Background
}

// Save replays the accumulated artifacts in call order onto a fresh
// output surface and writes it to name; the extension selects the
// format (.png, .jpg, .jpeg, .bmp, .tiff or .pdf). When the grid
// overlay is configured a second file with a `_grid` suffix before the
// extension is written as well. The canvas keeps its configuration but
// drops the artifacts, ready for a new drawing pass.
func (c *Canvas) Save(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return c.fail(fmt.Errorf("canvas: output file %q has no extension", name))
	}
	if err := c.write(name, ext, false); err != nil {
		return c.fail(err)
	}
	if c.cfg.Grid {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		gridName := base + "_grid" + filepath.Ext(name)
		if err := c.write(gridName, ext, true); err != nil {
			return c.fail(err)
		}
	}
	c.artifacts = nil
	c.state = stateConfigured
	return nil
}

func (c *Canvas) write(name, ext string, grid bool) error {
	if ext == ".pdf" {
		doc := c.renderPDF(grid)
		if doc.Err() {
			return fmt.Errorf("canvas: %w", doc.Error())
		}
		return doc.OutputFileAndClose(name)
	}
	return imageio.Save(name, c.renderRaster(grid))
}

// replayList is the artifact list for one output pass; the grid pass
// appends the overlay artifacts so they paint on top.
func (c *Canvas) replayList(grid bool) []artifact {
	if !grid {
		return c.artifacts
	}
	arts := make([]artifact, 0, len(c.artifacts))
	arts = append(arts, c.artifacts...)
	return append(arts, c.gridArtifacts()...)
}

// renderRaster rasterizes the canvas. The surface is created fresh on
// every call and owned by nobody afterwards, so repeated saves never
// accumulate backend resources.
func (c *Canvas) renderRaster(grid bool) *image.RGBA {
	s := c.cfg.PixelScale
	pxW := int(c.cfg.Width*s + 0.5)
	pxH := int(c.cfg.Height*s + 0.5)
	rd := render.NewRaster(pxW, pxH)
	rd.FillBackground(c.background().NRGBA(1))

	// Canvas coordinates are y-up with the origin at the bottom
	// left; the device is y-down.
	device := geom.Identity.Scale(s, -s).Translate(0, -c.cfg.Height)

	for _, a := range c.replayList(grid) {
		switch a := a.(type) {
		case pathArtifact:
			render.DrawPath(rd, a.path, device, scalePaint(a.paint, s))
		case imageArtifact:
			b := a.img.Bounds()
			m := render.ImagePlacement(device, a.center, a.w, a.h, a.angle, b.Dx(), b.Dy())
			render.DrawImage(rd.Image(), a.img, m, a.alpha)
		}
	}
	return rd.Image()
}

// renderPDF replays the canvas onto a single custom-sized page, one
// point per canvas unit.
func (c *Canvas) renderPDF(grid bool) *fpdf.Fpdf {
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: c.cfg.Width, Ht: c.cfg.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	bg := c.background()
	doc.SetFillColor(bg.R, bg.G, bg.B)
	doc.Rect(0, 0, c.cfg.Width, c.cfg.Height, "F")

	device := geom.Identity.Scale(1, -1).Translate(0, -c.cfg.Height)
	drv := render.NewPDF(doc)

	for i, a := range c.replayList(grid) {
		switch a := a.(type) {
		case pathArtifact:
			render.DrawPath(drv, a.path, device, a.paint)
		case imageArtifact:
			c.pdfImage(doc, device, a, i)
		}
	}
	return doc
}

func (c *Canvas) pdfImage(doc *fpdf.Fpdf, device geom.Matrix2D, a imageArtifact, seq int) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.img); err != nil {
		doc.SetError(err)
		return
	}
	name := fmt.Sprintf("canvas-image-%d", seq)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, &buf)

	// Top-left corner of the unrotated box in page coordinates.
	tl := device.Transform(geom.Pt(a.center.X-a.w/2, a.center.Y+a.h/2))
	cp := device.Transform(a.center)
	if a.alpha < 1 {
		doc.SetAlpha(a.alpha, "Normal")
		defer doc.SetAlpha(1, "Normal")
	}
	if a.angle != 0 {
		doc.TransformBegin()
		doc.TransformRotate(a.angle, cp.X, cp.Y)
		defer doc.TransformEnd()
	}
	doc.ImageOptions(name, tl.X, tl.Y, a.w, a.h, false, opts, 0, "")
}

// scalePaint maps canvas-unit stroke metrics to device pixels.
func scalePaint(p render.Paint, s float64) render.Paint {
	p.LineWidth *= s
	if len(p.Dash.Dash) > 0 {
		dash := make([]float64, len(p.Dash.Dash))
		for i, v := range p.Dash.Dash {
			dash[i] = v * s
		}
		p.Dash.Dash = dash
		p.Dash.DashOffset *= s
	}
	return p
}
