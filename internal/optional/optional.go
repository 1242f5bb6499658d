// Package optional provides a minimal present-or-absent value used by the
// fallback chains that compute effective attributes.
package optional

// Value holds a T that may be absent.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty treats the empty string as absent.
func NonEmpty(s string) Value[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// FromPtr treats a nil pointer as absent.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present
}

// Present reports whether the value is set.
func (v Value[T]) Present() bool {
	return v.present
}

// OrElse returns the value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if v.present {
		return v.value
	}
	return fallback
}

// FirstPresent returns the first present candidate, or None.
func FirstPresent[T any](candidates ...Value[T]) Value[T] {
	for _, c := range candidates {
		if c.present {
			return c
		}
	}
	return None[T]()
}

// FirstPresentFunc evaluates sources in order and stops at the first present
// result, so later sources are never computed once one is found.
func FirstPresentFunc[T any](sources ...func() Value[T]) Value[T] {
	for _, source := range sources {
		if v := source(); v.present {
			return v
		}
	}
	return None[T]()
}
