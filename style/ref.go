package style

// Styler is the contract every style record satisfies. The theme
// registries and the canvas resolution helpers are generic over it.
type Styler[S any] interface {
	Merge(other S) S
	Clone() S
	Validate() error
}

// Ref names the style a drawing call wants: a theme style by name, an
// inline record, or the zero Ref meaning "resolve from the theme
// default". It replaces per-call-site type switching on the style
// argument with a single resolution point.
type Ref[S Styler[S]] struct {
	name   string
	named  bool
	inline *S
}

// ByName references a named theme style.
func ByName[S Styler[S]](name string) Ref[S] {
	return Ref[S]{name: name, named: true}
}

// Inline wraps an explicit style record.
func Inline[S Styler[S]](s S) Ref[S] {
	c := s.Clone()
	return Ref[S]{inline: &c}
}

// IsDefault reports whether the reference is the theme default.
func (r Ref[S]) IsDefault() bool { return !r.named && r.inline == nil }

// Name returns the referenced style name, if any.
func (r Ref[S]) Name() (string, bool) { return r.name, r.named }

// Style returns the inline record, if any.
func (r Ref[S]) Style() (S, bool) {
	if r.inline == nil {
		var zero S
		return zero, false
	}
	return (*r.inline).Clone(), true
}
