package theme

import (
	"fmt"

	"github.com/yuichi110/drawlib/style"
)

// ShapeKinds are the per-shape registries created for every theme, each
// chained to the generic shape registry.
var ShapeKinds = []string{
	"rectangle", "circle", "ellipse", "arc",
	"polygon", "regular polygon", "star",
	"arrow", "triangle", "parallelogram", "trapezoid", "chevron",
}

// Theme is the full set of style registries for one process. It is
// mutable shared state: drawing calls read it, Apply replaces its
// contents wholesale, and nothing resets it implicitly.
type Theme struct {
	Line      *Registry[style.Line]
	Shape     *Registry[style.Shape]
	ShapeText *Registry[style.ShapeText]
	Text      *Registry[style.Text]
	Image     *Registry[style.Image]
	Icon      *Registry[style.Icon]

	shapeKinds map[string]*Registry[style.Shape]
	kindOrder  []string

	Background style.Color
	name       string
}

// New returns an empty theme with all registries created and the
// per-shape registries chained to the generic shape registry.
func New() *Theme {
	t := &Theme{
		Line:       NewRegistry[style.Line]("line", nil),
		Shape:      NewRegistry[style.Shape]("shape", nil),
		ShapeText:  NewRegistry[style.ShapeText]("shape text", nil),
		Text:       NewRegistry[style.Text]("text", nil),
		Image:      NewRegistry[style.Image]("image", nil),
		Icon:       NewRegistry[style.Icon]("icon", nil),
		shapeKinds: make(map[string]*Registry[style.Shape]),
		Background: style.RGB(255, 255, 255),
	}
	for _, kind := range ShapeKinds {
		t.shapeKinds[kind] = NewRegistry[style.Shape](kind, t.Shape)
		t.kindOrder = append(t.kindOrder, kind)
	}
	return t
}

// Name returns the name of the last applied bundle.
func (t *Theme) Name() string { return t.name }

// ShapeKind returns the registry for a specific shape kind, creating a
// new chained registry for kinds not in ShapeKinds.
func (t *Theme) ShapeKind(kind string) *Registry[style.Shape] {
	if r, ok := t.shapeKinds[kind]; ok {
		return r
	}
	r := NewRegistry[style.Shape](kind, t.Shape)
	t.shapeKinds[kind] = r
	t.kindOrder = append(t.kindOrder, kind)
	return r
}

// AllNames returns the union of style names across every registry, in
// first-seen order. It is re-derived on each call; individual
// registries mutate independently so a cached view would go stale.
func (t *Theme) AllNames() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	add(t.Line.List())
	add(t.Shape.List())
	for _, kind := range t.kindOrder {
		add(t.shapeKinds[kind].List())
	}
	add(t.ShapeText.List())
	add(t.Text.List())
	add(t.Image.List())
	add(t.Icon.List())
	return out
}

// StyleSet bundles one optional record of every style kind; it is the
// unit a theme installs under a single name.
type StyleSet struct {
	Line      *style.Line
	Shape     *style.Shape
	ShapeText *style.ShapeText
	Text      *style.Text
	Image     *style.Image
	Icon      *style.Icon
}

func (s StyleSet) validate(ctx string) error {
	if s.Line != nil {
		if err := s.Line.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ctx, err)
		}
	}
	if s.Shape != nil {
		if err := s.Shape.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ctx, err)
		}
	}
	if s.ShapeText != nil {
		if err := s.ShapeText.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ctx, err)
		}
	}
	if s.Text != nil {
		if err := s.Text.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ctx, err)
		}
	}
	if s.Image != nil {
		if err := s.Image.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ctx, err)
		}
	}
	if s.Icon != nil {
		if err := s.Icon.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ctx, err)
		}
	}
	return nil
}

// NamedSet is a StyleSet installed under a style name.
type NamedSet struct {
	Name string
	Set  StyleSet
}

// NamedColor derives a family of styles (base, "-light", "-dark") from
// a single color.
type NamedColor struct {
	Name  string
	Color style.Color
}

// Bundle is an atomically-installable theme: defaults for every kind,
// named style sets, and named colors.
type Bundle struct {
	Name       string
	Background style.Color
	Default    StyleSet
	Named      []NamedSet
	Colors     []NamedColor
}

func (b Bundle) validate() error {
	if err := b.Background.Validate(); err != nil {
		return fmt.Errorf("theme %q: background: %w", b.Name, err)
	}
	if err := b.Default.validate(fmt.Sprintf("theme %q: default set", b.Name)); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, ns := range b.Named {
		if ns.Name == "" {
			return fmt.Errorf("theme %q: named set with empty name", b.Name)
		}
		if seen[ns.Name] {
			return fmt.Errorf("theme %q: duplicate style name %q", b.Name, ns.Name)
		}
		seen[ns.Name] = true
		if err := ns.Set.validate(fmt.Sprintf("theme %q: set %q", b.Name, ns.Name)); err != nil {
			return err
		}
	}
	for _, nc := range b.Colors {
		if nc.Name == "" {
			return fmt.Errorf("theme %q: named color with empty name", b.Name)
		}
		if seen[nc.Name] {
			return fmt.Errorf("theme %q: duplicate style name %q", b.Name, nc.Name)
		}
		seen[nc.Name] = true
		if err := nc.Color.Validate(); err != nil {
			return fmt.Errorf("theme %q: color %q: %w", b.Name, nc.Name, err)
		}
	}
	return nil
}

// colorSet derives the style records installed for a named color.
func colorSet(c style.Color) StyleSet {
	line := c.Darken(0.2)
	return StyleSet{
		Line:      &style.Line{Color: style.Ptr(line)},
		Shape:     &style.Shape{LineColor: style.Ptr(line), FillColor: style.Ptr(c)},
		ShapeText: &style.ShapeText{Color: style.Ptr(line)},
		Text:      &style.Text{Color: style.Ptr(line)},
		Icon:      &style.Icon{Color: style.Ptr(c)},
	}
}

// Apply installs the bundle. The whole bundle is validated before any
// registry is touched, so a malformed bundle never leaves the theme
// half-replaced. On success every registry's previous contents are
// gone: Apply replaces, it does not patch.
func (t *Theme) Apply(b Bundle) error {
	if err := b.validate(); err != nil {
		return err
	}

	t.Line.clear()
	t.Shape.clear()
	t.ShapeText.clear()
	t.Text.clear()
	t.Image.clear()
	t.Icon.clear()
	for _, kind := range t.kindOrder {
		t.shapeKinds[kind].clear()
	}

	t.name = b.Name
	t.Background = b.Background

	install := func(name string, s StyleSet) {
		// The bundle is validated above; Set cannot fail here.
		if s.Line != nil {
			t.Line.Set(*s.Line, name)
		}
		if s.Shape != nil {
			t.Shape.Set(*s.Shape, name)
		}
		if s.ShapeText != nil {
			t.ShapeText.Set(*s.ShapeText, name)
		}
		if s.Text != nil {
			t.Text.Set(*s.Text, name)
		}
		if s.Image != nil {
			t.Image.Set(*s.Image, name)
		}
		if s.Icon != nil {
			t.Icon.Set(*s.Icon, name)
		}
	}

	install("", b.Default)
	for _, ns := range b.Named {
		install(ns.Name, ns.Set)
	}
	for _, nc := range b.Colors {
		install(nc.Name, colorSet(nc.Color))
		install(nc.Name+"-light", colorSet(nc.Color.Lighten(0.5)))
		install(nc.Name+"-dark", colorSet(nc.Color.Darken(0.35)))
	}
	return nil
}

// CopyStyle copies every record stored under src, in every registry, to
// dst. Registries without src are skipped.
func (t *Theme) CopyStyle(src, dst string) error {
	if src == dst {
		return fmt.Errorf("theme: copy style: source and destination are both %q", src)
	}
	found := false
	if t.Line.Has(src) {
		s, _ := t.Line.GetLocal(src)
		if err := t.Line.Set(s, dst); err != nil {
			return err
		}
		found = true
	}
	copyShape := func(r *Registry[style.Shape]) error {
		if !r.Has(src) {
			return nil
		}
		s, _ := r.GetLocal(src)
		found = true
		return r.Set(s, dst)
	}
	if err := copyShape(t.Shape); err != nil {
		return err
	}
	for _, kind := range t.kindOrder {
		if err := copyShape(t.shapeKinds[kind]); err != nil {
			return err
		}
	}
	if t.ShapeText.Has(src) {
		s, _ := t.ShapeText.GetLocal(src)
		if err := t.ShapeText.Set(s, dst); err != nil {
			return err
		}
		found = true
	}
	if t.Text.Has(src) {
		s, _ := t.Text.GetLocal(src)
		if err := t.Text.Set(s, dst); err != nil {
			return err
		}
		found = true
	}
	if t.Image.Has(src) {
		s, _ := t.Image.GetLocal(src)
		if err := t.Image.Set(s, dst); err != nil {
			return err
		}
		found = true
	}
	if t.Icon.Has(src) {
		s, _ := t.Icon.GetLocal(src)
		if err := t.Icon.Set(s, dst); err != nil {
			return err
		}
		found = true
	}
	if !found {
		return ErrUnknownStyle(src)
	}
	return nil
}

// RenameStyle renames a style across every registry holding it.
func (t *Theme) RenameStyle(from, to string) error {
	found := false
	rename := func(has bool, f func() error) error {
		if !has {
			return nil
		}
		found = true
		return f()
	}
	if err := rename(t.Line.Has(from), func() error { return t.Line.Rename(from, to) }); err != nil {
		return err
	}
	if err := rename(t.Shape.Has(from), func() error { return t.Shape.Rename(from, to) }); err != nil {
		return err
	}
	for _, kind := range t.kindOrder {
		r := t.shapeKinds[kind]
		if err := rename(r.Has(from), func() error { return r.Rename(from, to) }); err != nil {
			return err
		}
	}
	if err := rename(t.ShapeText.Has(from), func() error { return t.ShapeText.Rename(from, to) }); err != nil {
		return err
	}
	if err := rename(t.Text.Has(from), func() error { return t.Text.Rename(from, to) }); err != nil {
		return err
	}
	if err := rename(t.Image.Has(from), func() error { return t.Image.Rename(from, to) }); err != nil {
		return err
	}
	if err := rename(t.Icon.Has(from), func() error { return t.Icon.Rename(from, to) }); err != nil {
		return err
	}
	if !found {
		return ErrUnknownStyle(from)
	}
	return nil
}

// DeleteStyle removes a style from every registry holding it.
func (t *Theme) DeleteStyle(name string) error {
	found := false
	del := func(has bool, f func() error) error {
		if !has {
			return nil
		}
		found = true
		return f()
	}
	if err := del(t.Line.Has(name), func() error { return t.Line.Delete(name) }); err != nil {
		return err
	}
	if err := del(t.Shape.Has(name), func() error { return t.Shape.Delete(name) }); err != nil {
		return err
	}
	for _, kind := range t.kindOrder {
		r := t.shapeKinds[kind]
		if err := del(r.Has(name), func() error { return r.Delete(name) }); err != nil {
			return err
		}
	}
	if err := del(t.ShapeText.Has(name), func() error { return t.ShapeText.Delete(name) }); err != nil {
		return err
	}
	if err := del(t.Text.Has(name), func() error { return t.Text.Delete(name) }); err != nil {
		return err
	}
	if err := del(t.Image.Has(name), func() error { return t.Image.Delete(name) }); err != nil {
		return err
	}
	if err := del(t.Icon.Has(name), func() error { return t.Icon.Delete(name) }); err != nil {
		return err
	}
	if !found {
		return ErrUnknownStyle(name)
	}
	return nil
}

// MergeAll overlays the set's records onto the targets in every
// registry, with Registry.Merge's skip-absent semantics. A nil target
// list means every name.
func (t *Theme) MergeAll(s StyleSet, targets []string) error {
	if s.Line != nil {
		if err := t.Line.Merge(*s.Line, targets); err != nil {
			return err
		}
	}
	if s.Shape != nil {
		if err := t.Shape.Merge(*s.Shape, targets); err != nil {
			return err
		}
		for _, kind := range t.kindOrder {
			if err := t.shapeKinds[kind].Merge(*s.Shape, targets); err != nil {
				return err
			}
		}
	}
	if s.ShapeText != nil {
		if err := t.ShapeText.Merge(*s.ShapeText, targets); err != nil {
			return err
		}
	}
	if s.Text != nil {
		if err := t.Text.Merge(*s.Text, targets); err != nil {
			return err
		}
	}
	if s.Image != nil {
		if err := t.Image.Merge(*s.Image, targets); err != nil {
			return err
		}
	}
	if s.Icon != nil {
		if err := t.Icon.Merge(*s.Icon, targets); err != nil {
			return err
		}
	}
	return nil
}

// std is the process-wide theme, seeded with the "default" builtin at
// load time. It is intended for single-threaded script use and is only
// replaced wholesale by Apply*; canvas state never touches it.
var std = func() *Theme {
	t := New()
	if err := t.Apply(Builtin("default")); err != nil {
		panic(err) // builtin bundles are known valid
	}
	return t
}()

// Default returns the process-wide theme.
func Default() *Theme { return std }

// Reset restores the process-wide theme to the "default" builtin.
// Tests mutating theme state call this between cases.
func Reset() {
	if err := std.Apply(Builtin("default")); err != nil {
		panic(err)
	}
}

// ApplyNamed installs a builtin bundle on the process-wide theme.
func ApplyNamed(name string) error {
	b, err := builtin(name)
	if err != nil {
		return err
	}
	return std.Apply(b)
}

// ApplyCustom installs a caller-built bundle on the process-wide theme.
func ApplyCustom(b Bundle) error { return std.Apply(b) }
