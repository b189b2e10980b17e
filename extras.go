package chart

// Extras is a per-frame key-value store that lets renderers share
// ephemeral values during one draw pass. The zero value is ready to use.
type Extras struct {
	values map[any]any
}

// PutExtra stores value under key.
func (e *Extras) PutExtra(key, value any) {
	if e.values == nil {
		e.values = make(map[any]any)
	}
	e.values[key] = value
}

// Extra returns the value stored under key.
func (e *Extras) Extra(key any) (any, bool) {
	v, ok := e.values[key]
	return v, ok
}

// HasExtra reports whether a value is stored under key.
func (e *Extras) HasExtra(key any) bool {
	_, ok := e.values[key]
	return ok
}

// RemoveExtra deletes the value stored under key.
func (e *Extras) RemoveExtra(key any) {
	delete(e.values, key)
}

// ClearExtras removes every stored value.
func (e *Extras) ClearExtras() {
	clear(e.values)
}

// ExtraAs returns the value stored under key if it has type T.
func ExtraAs[T any](e *Extras, key any) (T, bool) {
	v, ok := e.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
