package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorValidate(t *testing.T) {
	assert.NoError(t, RGB(0, 128, 255).Validate())
	assert.NoError(t, RGBA(1, 2, 3, 0.5).Validate())

	err := RGB(256, 0, 0).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R")
	assert.Contains(t, err.Error(), "256")

	err = RGBA(0, 0, 0, 1.5).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha")
}

func TestRGBWidening(t *testing.T) {
	assert.Equal(t, 1.0, RGB(10, 20, 30).Alpha)
}

func TestHex(t *testing.T) {
	c, err := Hex("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 0, 128), c)

	_, err = Hex("not-a-color")
	assert.Error(t, err)
}

func TestNRGBAOpacity(t *testing.T) {
	c := RGBA(255, 0, 0, 0.5).NRGBA(0.5)
	assert.EqualValues(t, 64, c.A)
}

func TestMergeIdentity(t *testing.T) {
	s := Shape{
		LineColor: Ptr(RGB(1, 2, 3)),
		LineWidth: Ptr(2.0),
		FillColor: Ptr(RGB(4, 5, 6)),
	}
	assert.Equal(t, s, s.Merge(Shape{}))
	assert.Equal(t, s, Shape{}.Merge(s))

	l := Line{Color: Ptr(RGB(9, 9, 9)), Dash: Ptr(Dotted)}
	assert.Equal(t, l, l.Merge(Line{}))

	tx := Text{Size: Ptr(14.0), Font: Ptr(FontSansBold)}
	assert.Equal(t, tx, tx.Merge(Text{}))
}

func TestMergePriority(t *testing.T) {
	base := Shape{
		LineColor: Ptr(RGB(0, 0, 255)),
		LineWidth: Ptr(1.0),
	}
	over := Shape{
		LineColor: Ptr(RGB(255, 0, 0)),
		FillColor: Ptr(RGB(10, 10, 10)),
	}
	got := base.Merge(over)
	assert.Equal(t, RGB(255, 0, 0), *got.LineColor, "override wins")
	assert.Equal(t, 1.0, *got.LineWidth, "unset override keeps base")
	assert.Equal(t, RGB(10, 10, 10), *got.FillColor)
}

func TestMergeDisjointUnion(t *testing.T) {
	a := Line{Color: Ptr(RGB(1, 1, 1))}
	b := Line{Width: Ptr(3.0)}
	got := a.Merge(b)
	assert.Equal(t, RGB(1, 1, 1), *got.Color)
	assert.Equal(t, 3.0, *got.Width)
	assert.Nil(t, got.Dash)
	assert.Nil(t, got.Alpha)
}

func TestMergeChainAssociativity(t *testing.T) {
	x := Shape{LineColor: Ptr(RGB(1, 0, 0)), LineWidth: Ptr(1.0), Alpha: Ptr(0.25)}
	a := Shape{LineColor: Ptr(RGB(0, 1, 0)), FillColor: Ptr(RGB(7, 7, 7))}
	b := Shape{LineColor: Ptr(RGB(0, 0, 1)), HAlign: Ptr(Right)}

	chained := x.Merge(a).Merge(b)
	collapsed := x.Merge(a.Merge(b))
	assert.Equal(t, chained, collapsed)
}

func TestMergeDoesNotMutateOrAlias(t *testing.T) {
	base := Shape{LineWidth: Ptr(1.0)}
	over := Shape{LineWidth: Ptr(2.0)}
	got := base.Merge(over)

	*over.LineWidth = 99
	assert.Equal(t, 2.0, *got.LineWidth, "result must not alias the override")
	assert.Equal(t, 1.0, *base.LineWidth, "base must not be mutated")
}

func TestCloneIndependence(t *testing.T) {
	s := Text{Color: Ptr(RGB(1, 2, 3)), Size: Ptr(12.0)}
	c := s.Clone()
	assert.Equal(t, s, c)

	*c.Size = 99
	assert.Equal(t, 12.0, *s.Size)

	i := Icon{Color: Ptr(RGB(5, 5, 5))}
	ic := i.Clone()
	ic.Color.R = 200
	assert.Equal(t, 5, i.Color.R)
}

func TestValidateNamesFieldAndValue(t *testing.T) {
	err := Shape{LineWidth: Ptr(-1.0)}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LineWidth")
	assert.Contains(t, err.Error(), "-1")

	err = Shape{FillColor: Ptr(Color{R: -3, Alpha: 1})}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FillColor")

	err = Text{Alpha: Ptr(2.0)}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alpha")

	err = Image{HAlign: Ptr(HAlign(9))}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HAlign")
}

func TestDashPattern(t *testing.T) {
	assert.Nil(t, Solid.Pattern(2))
	assert.Equal(t, []float64{6, 6}, Dashed.Pattern(2))
	assert.Equal(t, []float64{2, 4}, Dotted.Pattern(2))
	assert.Len(t, DashDot.Pattern(2), 4)
}

func TestRef(t *testing.T) {
	var def Ref[Shape]
	assert.True(t, def.IsDefault())

	named := ByName[Shape]("red")
	name, ok := named.Name()
	assert.True(t, ok)
	assert.Equal(t, "red", name)
	assert.False(t, named.IsDefault())

	inline := Inline(Shape{LineWidth: Ptr(4.0)})
	s, ok := inline.Style()
	assert.True(t, ok)
	assert.Equal(t, 4.0, *s.LineWidth)
	assert.False(t, inline.IsDefault())
}

func TestRefInlineCopies(t *testing.T) {
	src := Shape{LineWidth: Ptr(4.0)}
	ref := Inline(src)
	*src.LineWidth = 0
	s, _ := ref.Style()
	assert.Equal(t, 4.0, *s.LineWidth)
}

func TestLightenDarken(t *testing.T) {
	c := RGB(200, 30, 30)
	light := c.Lighten(0.5)
	dark := c.Darken(0.5)
	assert.Greater(t, light.G, c.G)
	assert.Less(t, dark.R, c.R)
	assert.Equal(t, c.Alpha, light.Alpha)
}
