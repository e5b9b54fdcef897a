package checked

// Value wraps a single number of type T so that every arithmetic operation
// and comparison is validated before it completes. The wrapped payload always
// lies inside the configured domain; any operation that would break that
// routes through the policy before a result is produced.
//
// A Value references its Domain, it does not own it; the domain is typically
// a shared, statically known constant. Values are plain value types: operators
// return a fresh Value and never mutate the receiver.
type Value[T Number] struct {
	v   T
	dom *Domain[T]
	pol Policy[T]
}

// New wraps v with the given domain and policy. The initial payload is
// bound-checked immediately, so a Value can never start out of range.
func New[T Number](v T, dom *Domain[T], pol Policy[T]) Value[T] {
	if dom == nil {
		dom = Natural[T]()
	}
	if pol == nil {
		pol = Abort[T]{}
	}
	val := Value[T]{dom: dom, pol: pol}
	return val.rebind(v)
}

// Checked wraps v with T's natural domain and the aborting policy.
func Checked[T Number](v T) Value[T] {
	return New(v, nil, nil)
}

// Get returns the wrapped payload.
func (v Value[T]) Get() T {
	return v.v
}

// Float returns the payload coerced to float64. This is the conversion used
// by callers that want to rescale a value through a wider representation
// instead of operating on the raw payload.
func (v Value[T]) Float() float64 {
	return float64(v.v)
}

// Domain returns the domain configuration the value validates against.
func (v Value[T]) Domain() *Domain[T] {
	return v.dom
}

// Policy returns the active policy.
func (v Value[T]) Policy() Policy[T] {
	return v.pol
}

// Add returns v + rhs, validated.
func (v Value[T]) Add(rhs T) Value[T] {
	r, overflow := addChecked(v.v, rhs)
	if overflow {
		r = v.pol.Overflow(OpAdd, v.v, rhs)
	}
	return v.rebind(r)
}

// Sub returns v - rhs, validated.
func (v Value[T]) Sub(rhs T) Value[T] {
	r, overflow := subChecked(v.v, rhs)
	if overflow {
		r = v.pol.Overflow(OpSub, v.v, rhs)
	}
	return v.rebind(r)
}

// Mul returns v * rhs, validated.
func (v Value[T]) Mul(rhs T) Value[T] {
	r, overflow := mulChecked(v.v, rhs)
	if overflow {
		r = v.pol.Overflow(OpMul, v.v, rhs)
	}
	return v.rebind(r)
}

// Div returns v / rhs, validated. Division by zero and the lone
// unrepresentable quotient (most negative value divided by -1) route through
// the Overflow hook.
func (v Value[T]) Div(rhs T) Value[T] {
	r, overflow := divChecked(v.v, rhs)
	if overflow {
		r = v.pol.Overflow(OpDiv, v.v, rhs)
	}
	return v.rebind(r)
}

// Neg returns -v, validated. Negating a nonzero unsigned value is an
// overflow, as is negating the most negative signed value.
func (v Value[T]) Neg() Value[T] {
	r, overflow := negChecked(v.v)
	if overflow {
		var zero T
		r = v.pol.Overflow(OpNeg, v.v, zero)
	}
	return v.rebind(r)
}

// rebind re-validates r against the domain and wraps it. Whatever a policy
// hook substituted is bound-checked again here, so even a recovering policy
// cannot smuggle an out-of-domain payload into a Value.
func (v Value[T]) rebind(r T) Value[T] {
	if r < v.dom.Min {
		r = v.pol.LowerBound(r, v.dom.Min)
	} else if r > v.dom.Max {
		r = v.pol.UpperBound(r, v.dom.Max)
	}
	return Value[T]{v: r, dom: v.dom, pol: v.pol}
}
