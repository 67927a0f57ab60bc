// Package theme holds the process-wide named style registries and the
// atomically-installable theme bundles that seed them.
//
// One generic Registry replaces the per-shape-kind cache classes of the
// original design: a registry maps style names to records of one style
// kind, and may chain to a fallback registry consulted when a name is
// absent locally (e.g. "rectangle" styles fall back to the generic
// shape styles).
package theme

import (
	"fmt"

	"github.com/yuichi110/drawlib/style"
)

// Registry stores named styles of a single kind in insertion order.
// Styles are copied on Set and Get so stored records never alias a
// caller's working copy.
type Registry[S style.Styler[S]] struct {
	kind   string
	names  []string
	styles map[string]S
	parent *Registry[S]
}

// NewRegistry returns an empty registry. parent may be nil; when it is
// not, Get falls back to it for names absent locally.
func NewRegistry[S style.Styler[S]](kind string, parent *Registry[S]) *Registry[S] {
	return &Registry[S]{
		kind:   kind,
		styles: make(map[string]S),
		parent: parent,
	}
}

// Kind returns the drawable kind this registry serves, e.g. "rectangle".
func (r *Registry[S]) Kind() string { return r.kind }

// Has reports whether name is present in this registry (not the chain).
func (r *Registry[S]) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// ErrUnknownStyle formats the lookup failure for a missing style name.
func ErrUnknownStyle(name string) error {
	return fmt.Errorf("Theme style name %q does not exist.", name)
}

// Get returns a copy of the named style. Fallback order: this registry,
// then the parent chain. The empty name never fails: if it is set
// nowhere in the chain, the all-unset record is returned.
func (r *Registry[S]) Get(name string) (S, error) {
	if s, ok := r.styles[name]; ok {
		return s.Clone(), nil
	}
	if r.parent != nil {
		return r.parent.Get(name)
	}
	if name == "" {
		var zero S
		return zero, nil
	}
	var zero S
	return zero, ErrUnknownStyle(name)
}

// GetLocal is Get with fallback disabled: only this registry is
// consulted, and only the empty name has an implicit default.
func (r *Registry[S]) GetLocal(name string) (S, error) {
	if s, ok := r.styles[name]; ok {
		return s.Clone(), nil
	}
	if name == "" {
		var zero S
		return zero, nil
	}
	var zero S
	return zero, ErrUnknownStyle(name)
}

// List returns the style names in insertion order.
func (r *Registry[S]) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Set validates s and stores a copy under name. The empty name is the
// registry default. Re-setting an existing name keeps its position.
func (r *Registry[S]) Set(s S, name string) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s style registry: set %q: %w", r.kind, name, err)
	}
	if !r.Has(name) {
		r.names = append(r.names, name)
	}
	r.styles[name] = s.Clone()
	return nil
}

// Delete removes the named style. Deleting an absent name is an error.
func (r *Registry[S]) Delete(name string) error {
	if !r.Has(name) {
		return ErrUnknownStyle(name)
	}
	delete(r.styles, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	return nil
}

// Merge overlays s onto each target style in place of the stored
// record. A nil target list means every style in the registry. Targets
// absent from the registry are skipped silently, so partial target
// lists are tolerated.
func (r *Registry[S]) Merge(s S, targets []string) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s style registry: merge: %w", r.kind, err)
	}
	if targets == nil {
		targets = r.List()
	}
	for _, name := range targets {
		cur, ok := r.styles[name]
		if !ok {
			continue
		}
		r.styles[name] = cur.Merge(s)
	}
	return nil
}

// Rename moves the style stored under from to the name to, keeping the
// insertion position of from.
func (r *Registry[S]) Rename(from, to string) error {
	s, ok := r.styles[from]
	if !ok {
		return ErrUnknownStyle(from)
	}
	if r.Has(to) {
		return fmt.Errorf("%s style registry: name %q already exists", r.kind, to)
	}
	delete(r.styles, from)
	r.styles[to] = s
	for i, n := range r.names {
		if n == from {
			r.names[i] = to
			break
		}
	}
	return nil
}

// clear removes every style. Used by atomic theme application.
func (r *Registry[S]) clear() {
	r.names = r.names[:0]
	r.styles = make(map[string]S)
}
