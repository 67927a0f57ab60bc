package canvas

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuichi110/drawlib/geom"
	"github.com/yuichi110/drawlib/style"
	"github.com/yuichi110/drawlib/theme"
)

func testCanvas(t *testing.T) *Canvas {
	t.Helper()
	theme.Reset()
	c := New()
	require.NoError(t, c.Config(Config{Width: 100, Height: 100, PixelScale: 1}))
	return c
}

func noShape() style.Ref[style.Shape] { return style.Ref[style.Shape]{} }
func noLine() style.Ref[style.Line]   { return style.Ref[style.Line]{} }

func TestConfigAfterDrawingFails(t *testing.T) {
	c := testCanvas(t)
	require.NoError(t, c.Line(geom.Pt(0, 0), geom.Pt(10, 10), noLine()))

	err := c.Config(Config{Width: 200})
	assert.ErrorContains(t, err, "config is not allowed after drawing")

	// Clear resets the state machine, so configuring works again.
	c.Clear()
	assert.NoError(t, c.Config(Config{Width: 200}))
}

func TestConfigValidation(t *testing.T) {
	c := New()
	assert.Error(t, c.Config(Config{Width: -5}))
	assert.Error(t, c.Config(Config{PixelScale: -1}))
	assert.Error(t, c.Config(Config{GridStep: -1}))
	bad := style.RGB(300, 0, 0)
	assert.Error(t, c.Config(Config{Background: &bad}))
}

func TestRectangleVertices(t *testing.T) {
	c := testCanvas(t)
	require.NoError(t, c.Rectangle(geom.Pt(50, 50), 20, 10, 0, 0, noShape()))

	require.Len(t, c.artifacts, 1)
	pts := c.artifacts[0].(pathArtifact).path.Points()
	require.Len(t, pts, 4)
	want := []geom.Point{{X: 40, Y: 45}, {X: 40, Y: 55}, {X: 60, Y: 55}, {X: 60, Y: 45}}
	for i, p := range want {
		assert.True(t, geom.NearPt(p, pts[i]), "vertex %d: want %v, got %v", i, p, pts[i])
	}
}

func TestUnknownStyleName(t *testing.T) {
	c := testCanvas(t)
	err := c.Rectangle(geom.Pt(50, 50), 20, 10, 0, 0, style.ByName[style.Shape]("red nonsense"))
	assert.EqualError(t, err, `Theme style name "red nonsense" does not exist.`)
	assert.Empty(t, c.artifacts, "a failed call must not commit an artifact")
}

func TestInlineStyleOverridesThemeDefault(t *testing.T) {
	c := testCanvas(t)
	ref := style.Inline(style.Shape{
		FillColor: style.Ptr(style.RGB(255, 0, 0)),
		LineWidth: style.Ptr(0.0),
	})
	require.NoError(t, c.Rectangle(geom.Pt(50, 50), 40, 40, 0, 0, ref))

	img := c.renderRaster(false)
	px := img.RGBAAt(50, 50)
	assert.EqualValues(t, 255, px.R)
	assert.EqualValues(t, 0, px.G)
	assert.EqualValues(t, 0, px.B)
}

func TestZOrderLaterCallPaintsOnTop(t *testing.T) {
	c := testCanvas(t)
	red := style.Inline(style.Shape{FillColor: style.Ptr(style.RGB(255, 0, 0)), LineWidth: style.Ptr(0.0)})
	blue := style.Inline(style.Shape{FillColor: style.Ptr(style.RGB(0, 0, 255)), LineWidth: style.Ptr(0.0)})
	require.NoError(t, c.Rectangle(geom.Pt(50, 50), 40, 40, 0, 0, red))
	require.NoError(t, c.Rectangle(geom.Pt(50, 50), 40, 40, 0, 0, blue))

	px := c.renderRaster(false).RGBAAt(50, 50)
	assert.EqualValues(t, 0, px.R)
	assert.EqualValues(t, 255, px.B)
}

func TestSaveWithGridWritesTwoFiles(t *testing.T) {
	theme.Reset()
	c := New()
	require.NoError(t, c.Config(Config{Width: 50, Height: 50, PixelScale: 2, Grid: true}))
	require.NoError(t, c.Circle(geom.Pt(25, 25), 10, noShape()))

	dir := t.TempDir()
	name := filepath.Join(dir, "pic.png")
	require.NoError(t, c.Save(name))

	_, err := os.Stat(name)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "pic_grid.png"))
	assert.NoError(t, err)

	// Save drops the artifacts but keeps the configuration.
	assert.Empty(t, c.artifacts)
	assert.Equal(t, stateConfigured, c.state)
	require.NoError(t, c.Circle(geom.Pt(25, 25), 5, noShape()))
	assert.NoError(t, c.Save(filepath.Join(dir, "pic2.png")))
}

func TestSavePDF(t *testing.T) {
	c := testCanvas(t)
	require.NoError(t, c.Rectangle(geom.Pt(50, 50), 20, 10, 0, 0, noShape()))
	require.NoError(t, c.Text("label", geom.Pt(10, 10), 0, style.Ref[style.Text]{}))

	name := filepath.Join(t.TempDir(), "pic.pdf")
	require.NoError(t, c.Save(name))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	c := testCanvas(t)
	require.NoError(t, c.Line(geom.Pt(0, 0), geom.Pt(10, 10), noLine()))
	assert.Error(t, c.Save(filepath.Join(t.TempDir(), "pic.webp")))
	assert.Error(t, c.Save(filepath.Join(t.TempDir(), "pic")))
}

func TestTextArtifacts(t *testing.T) {
	c := testCanvas(t)
	require.NoError(t, c.Text("hello", geom.Pt(10, 10), 0, style.Ref[style.Text]{}))
	require.Len(t, c.artifacts, 1)
	run := c.artifacts[0].(pathArtifact)
	assert.NotEmpty(t, run.path)
	assert.NotNil(t, run.paint.FillColor)
	assert.Nil(t, run.paint.StrokeColor)
}

func TestTextBackgroundBoxPaintsBehindRun(t *testing.T) {
	c := testCanvas(t)
	ref := style.Inline(style.Text{
		BgColor:     style.Ptr(style.RGB(255, 255, 0)),
		BgLineColor: style.Ptr(style.RGB(0, 0, 0)),
		BgLineWidth: style.Ptr(0.5),
	})
	require.NoError(t, c.Text("boxed", geom.Pt(10, 10), 0, ref))

	require.Len(t, c.artifacts, 2)
	box := c.artifacts[0].(pathArtifact)
	assert.NotNil(t, box.paint.FillColor)
	assert.NotNil(t, box.paint.StrokeColor)
	run := c.artifacts[1].(pathArtifact)
	assert.NotNil(t, run.paint.FillColor)
}

func TestImageDataDerivesMissingExtent(t *testing.T) {
	c := testCanvas(t)
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	require.NoError(t, c.ImageData(src, geom.Pt(50, 50), 10, 0, 0, style.Ref[style.Image]{}))

	require.Len(t, c.artifacts, 1)
	art := c.artifacts[0].(imageArtifact)
	assert.InDelta(t, 10.0, art.w, 1e-9)
	assert.InDelta(t, 5.0, art.h, 1e-9)
	assert.True(t, geom.NearPt(geom.Pt(50, 50), art.center))
}

func TestImageDataErrors(t *testing.T) {
	c := testCanvas(t)
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	assert.Error(t, c.ImageData(src, geom.Pt(50, 50), 0, 0, 0, style.Ref[style.Image]{}))
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	assert.Error(t, c.ImageData(empty, geom.Pt(50, 50), 10, 10, 0, style.Ref[style.Image]{}))
}

func TestImageBorderAddsStrokeArtifact(t *testing.T) {
	c := testCanvas(t)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	ref := style.Inline(style.Image{
		BorderColor: style.Ptr(style.RGB(0, 0, 0)),
		BorderWidth: style.Ptr(1.0),
	})
	require.NoError(t, c.ImageData(src, geom.Pt(50, 50), 10, 10, 0, ref))

	require.Len(t, c.artifacts, 2)
	border := c.artifacts[1].(pathArtifact)
	assert.Nil(t, border.paint.FillColor)
	assert.NotNil(t, border.paint.StrokeColor)
}

func TestArcIsStrokeOnly(t *testing.T) {
	c := testCanvas(t)
	require.NoError(t, c.Arc(geom.Pt(50, 50), 40, 40, 0, 90, 0, noShape()))
	require.Len(t, c.artifacts, 1)
	art := c.artifacts[0].(pathArtifact)
	assert.Nil(t, art.paint.FillColor)
	assert.NotNil(t, art.paint.StrokeColor)
}

func TestShapeKindDispatch(t *testing.T) {
	c := testCanvas(t)
	// Arcs and free-form polygons need their own parameters and have
	// dedicated methods.
	needsParams := map[string]bool{"arc": true, "polygon": true}
	for _, kind := range theme.ShapeKinds {
		if needsParams[kind] {
			continue
		}
		assert.NoError(t, c.Shape(kind, geom.Pt(50, 50), 20, 10, 0, noShape()), kind)
	}
	assert.Error(t, c.Shape("blob", geom.Pt(50, 50), 20, 10, 0, noShape()))
}

func TestGridArtifacts(t *testing.T) {
	theme.Reset()
	c := New()
	require.NoError(t, c.Config(Config{Width: 100, Height: 100, GridStep: 10}))

	var lines, labels int
	for _, a := range c.gridArtifacts() {
		p := a.(pathArtifact)
		if p.paint.StrokeColor != nil {
			lines++
		} else {
			labels++
		}
	}
	assert.Equal(t, 22, lines, "11 vertical and 11 horizontal grid lines")
	assert.Equal(t, 21, labels)
}

func TestExitOnError(t *testing.T) {
	oldExit := exit
	code := -1
	exit = func(c int) { code = c }
	defer func() {
		exit = oldExit
		SetExitOnError(false)
	}()
	SetExitOnError(true)

	c := testCanvas(t)
	err := c.Rectangle(geom.Pt(0, 0), -1, 5, 0, 0, noShape())
	assert.Error(t, err)
	assert.Equal(t, 1, code)
}

func TestDefaultCanvasWrappers(t *testing.T) {
	theme.Reset()
	Clear()
	defer Clear()

	require.NoError(t, Configure(Config{Width: 50, Height: 50, PixelScale: 2}))
	require.NoError(t, Rectangle(geom.Pt(25, 25), 10, 10, 0, 0, noShape()))
	assert.Len(t, Default().artifacts, 1)
	assert.NoError(t, Save(filepath.Join(t.TempDir(), "std.png")))
}
