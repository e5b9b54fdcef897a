package interval

import (
	"fmt"

	"github.com/vipcxj/safenum/internal/checked"
)

// Interval is the closed numeric range [start, end]. The invariant
// start <= end holds for every reachable Interval: it is validated on
// construction and after every mutating operator, and a violation is a
// contract breach in the caller, not a data condition: it panics
// unconditionally, independent of the checked-value policy.
//
// An Interval owns its two bounds by value; every scalar operation on the
// interval delegates to the checked-value layer, so overflow, precision loss
// and sign-mismatched comparisons inside interval arithmetic are all subject
// to the bounds' policies.
type Interval[T checked.Number] struct {
	start checked.Value[T]
	end   checked.Value[T]
	unit  bool
}

// New builds the interval [lb, ub]. It panics if lb > ub.
//
// Whether the interval is a unit interval (both bounds inside [0,1]) is
// decided here once and memoized; it gates the specialized multiplication
// path below.
func New[T checked.Number](lb, ub checked.Value[T]) Interval[T] {
	i := Interval[T]{start: lb, end: ub}
	i.validate()
	i.unit = lb.Get() >= 0 && ub.Get() <= 1
	return i
}

// Of builds the interval [lb, ub] from raw numbers, wrapping both bounds
// with T's natural domain and the aborting policy.
func Of[T checked.Number](lb, ub T) Interval[T] {
	return New(checked.Checked(lb), checked.Checked(ub))
}

func (i Interval[T]) validate() {
	if i.start.Get() > i.end.Get() {
		panic(fmt.Sprintf("%s: start %v > end %v",
			checked.ViolationIntervalInvariant, i.start.Get(), i.end.Get()))
	}
}

// Start returns the lower bound.
func (i Interval[T]) Start() checked.Value[T] {
	return i.start
}

// End returns the upper bound.
func (i Interval[T]) End() checked.Value[T] {
	return i.end
}

// IsUnit reports whether both bounds were inside [0, 1] at construction.
func (i Interval[T]) IsUnit() bool {
	return i.unit
}

// Equal reports structural equality: both starts equal and both ends equal.
// [0,1] and [0,2] are different intervals no matter how they overlap. Each
// component comparison routes through the checked equality hook, so equality
// itself can trip the policy.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return checked.EqualValues(i.start, o.start) && checked.EqualValues(i.end, o.end)
}

// Add returns [start+k, end+k].
func (i Interval[T]) Add(k T) Interval[T] {
	return New(i.start.Add(k), i.end.Add(k))
}

// Sub returns [start-k, end-k].
func (i Interval[T]) Sub(k T) Interval[T] {
	return New(i.start.Sub(k), i.end.Sub(k))
}

// Mul returns [start*k, end*k].
//
// The operator is applied to each bound independently and the result is
// re-validated, so multiplying by a negative scalar flips the bounds and is
// fatal. The bounds are never reordered on the caller's behalf.
func (i Interval[T]) Mul(k T) Interval[T] {
	if i.unit {
		return i.mulUnit(k)
	}
	return New(i.start.Mul(k), i.end.Mul(k))
}

// mulUnit rescales a unit interval. Bounds known to lie in [0,1] are coerced
// through the wider float64 representation, scaled there, and re-enter the
// checked layer without loss. The shortcut is taken only when the scalar and
// both rescaled bounds round-trip exactly; anything else falls back to the
// general per-bound multiply, so the observable bound values and hook
// firings always match the general path's.
func (i Interval[T]) mulUnit(k T) Interval[T] {
	fk, exact := checked.ConvertExact[float64](k)
	if !exact {
		return New(i.start.Mul(k), i.end.Mul(k))
	}
	s, sok := checked.ConvertExact[T](i.start.Float() * fk)
	e, eok := checked.ConvertExact[T](i.end.Float() * fk)
	if !sok || !eok {
		return New(i.start.Mul(k), i.end.Mul(k))
	}
	return New(
		checked.New(s, i.start.Domain(), i.start.Policy()),
		checked.New(e, i.end.Domain(), i.end.Policy()),
	)
}

// Div returns [start/k, end/k]. Division by zero routes through the overflow
// hook of each bound's policy; a negative divisor flips the bounds and is
// fatal, same as Mul.
func (i Interval[T]) Div(k T) Interval[T] {
	return New(i.start.Div(k), i.end.Div(k))
}

// AddAssign shifts the interval in place by k.
func (i *Interval[T]) AddAssign(k T) {
	*i = i.Add(k)
}

// SubAssign shifts the interval in place by -k.
func (i *Interval[T]) SubAssign(k T) {
	*i = i.Sub(k)
}

// MulAssign scales the interval in place by k, using the unit fast path when
// the receiver is a unit interval.
func (i *Interval[T]) MulAssign(k T) {
	*i = i.Mul(k)
}

// DivAssign divides the interval in place by k.
func (i *Interval[T]) DivAssign(k T) {
	*i = i.Div(k)
}

// String implements fmt.Stringer, using the closed-interval notation that
// Parse accepts.
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%s,%s]", formatScalar(i.start.Get()), formatScalar(i.end.Get()))
}
