package checked

// Domain describes the inclusive bounds a checked value may hold.
// A Domain is immutable after construction; values reference it, they never
// mutate it, so a single Domain can back any number of values.
type Domain[T Number] struct {
	Min T
	Max T
}

// Natural returns the domain spanning every value representable by T.
func Natural[T Number]() *Domain[T] {
	return &Domain[T]{
		Min: naturalMin[T](),
		Max: naturalMax[T](),
	}
}

// NewDomain returns the domain [min, max].
func NewDomain[T Number](min T, max T) *Domain[T] {
	return &Domain[T]{
		Min: min,
		Max: max,
	}
}

// Contains reports whether v lies inside the domain.
func (d *Domain[T]) Contains(v T) bool {
	return v >= d.Min && v <= d.Max
}
