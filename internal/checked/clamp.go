package checked

import "math"

// Clamp is a recovering policy: instead of terminating it saturates toward
// the nearest representable value and lets execution continue. It exists both
// as a usable strategy and as the proof that the hook contract supports
// recovery: every call site of Abort works unchanged with Clamp.
//
// Dom is the domain clamped against; nil means T's natural extremes.
type Clamp[T Number] struct {
	Dom *Domain[T]
}

func (p Clamp[T]) BadCast(src any) T {
	f, ok := toFloat(src)
	if !ok || math.IsNaN(f) {
		return p.domain().Min
	}
	// 在 float64 空间里选边，再夹到域边界
	// <=/>= keeps the narrowing conversion below strictly in range, even for
	// the 64-bit bounds whose float64 rendition rounds outward.
	if f <= float64(p.domain().Min) {
		return p.domain().Min
	}
	if f >= float64(p.domain().Max) {
		return p.domain().Max
	}
	return T(f)
}

func (p Clamp[T]) LowerBound(got T, bound T) T {
	return bound
}

func (p Clamp[T]) UpperBound(got T, bound T) T {
	return bound
}

func (p Clamp[T]) Equals(lhs T, rhs any, eq bool, mismatch bool) bool {
	// The sign-safe comparison already produced the mathematically correct
	// answer; a recovering policy simply accepts it.
	return eq
}

func (p Clamp[T]) Compare(lhs T, rhs any, cmp int, mismatch bool) int {
	return cmp
}

func (p Clamp[T]) Overflow(op Op, lhs T, rhs T) T {
	// Saturate in the direction the true result escaped. The sign of the
	// float64 rendition of the operation picks the side; float64 range is so
	// much wider than any integer kind that the sign is always meaningful.
	f := floatApply(op, float64(lhs), float64(rhs))
	if f < 0 {
		return p.domain().Min
	}
	return p.domain().Max
}

func (p Clamp[T]) domain() *Domain[T] {
	if p.Dom != nil {
		return p.Dom
	}
	return Natural[T]()
}

func floatApply(op Op, lhs, rhs float64) float64 {
	switch op {
	case OpAdd:
		return lhs + rhs
	case OpSub:
		return lhs - rhs
	case OpMul:
		return lhs * rhs
	case OpDiv:
		return lhs / rhs
	case OpNeg:
		return -lhs
	default:
		return 0
	}
}
