package mission

// Equal reports whether a and b hold identical values in all fourteen fields.
// Floats are compared exactly: items rebuilt from the same inputs are equal,
// items differing by a single ulp are not. Both arguments must be non-nil.
func Equal(a, b *Item) bool {
	return *a == *b
}

// Copy copies every field of src into dst. It fails with ErrBadParameter and
// writes nothing when either pointer is nil; dst may alias src.
func Copy(dst, src *Item) error {
	if dst == nil || src == nil {
		return ErrBadParameter
	}
	*dst = *src
	return nil
}
