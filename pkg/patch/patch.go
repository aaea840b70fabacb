// Package patch provides the optional-field primitive used by the
// find-create-update repositories. A zero Field means "no new value known"
// and never erases a stored value; Set marks a value as present.
package patch

// Field holds either no value (unchanged) or an explicit new value.
type Field[T comparable] struct {
	value T
	set   bool
}

// Set returns a Field carrying v.
func Set[T comparable](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// IsSet reports whether the field carries a value.
func (f Field[T]) IsSet() bool { return f.set }

// Get returns the carried value and whether one is present.
func (f Field[T]) Get() (T, bool) { return f.value, f.set }

// Apply overwrites *dst when the field carries a value that differs from the
// stored one. It reports whether *dst changed.
func (f Field[T]) Apply(dst *T) bool {
	if !f.set || *dst == f.value {
		return false
	}
	*dst = f.value
	return true
}

// ApplyPtr is Apply for nullable columns. A set field pointing at a nil
// destination allocates it.
func (f Field[T]) ApplyPtr(dst **T) bool {
	if !f.set {
		return false
	}
	if *dst != nil && **dst == f.value {
		return false
	}
	v := f.value
	*dst = &v
	return true
}
