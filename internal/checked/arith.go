package checked

import "math"

// The helpers below apply one operator and report whether the mathematically
// correct result is representable in T. Integer kinds are lifted into 64-bit
// canonical space first: for widths below 64 bits a single 64-bit operation
// can never wrap, so a plain range check against T's natural extremes is
// enough; the full-width kinds additionally need the classic wrap checks.
// Float kinds are checked by watching a finite operation produce Inf or NaN.
//
// On overflow the returned value is unspecified; the caller is expected to
// discard it and route through the policy's Overflow hook.

func addChecked[T Number](a, b T) (T, bool) {
	switch kindOf[T]() {
	case kindFloat:
		r := a + b
		return r, floatBlewUp(float64(a), float64(b), float64(r))
	case kindUnsigned:
		ua, ub := uint64(a), uint64(b)
		r := ua + ub
		if r < ua || r > uint64(naturalMax[T]()) {
			return 0, true
		}
		return T(r), false
	default:
		ia, ib := int64(a), int64(b)
		r := ia + ib
		if (ib > 0 && r < ia) || (ib < 0 && r > ia) {
			return 0, true
		}
		if r < int64(naturalMin[T]()) || r > int64(naturalMax[T]()) {
			return 0, true
		}
		return T(r), false
	}
}

func subChecked[T Number](a, b T) (T, bool) {
	switch kindOf[T]() {
	case kindFloat:
		r := a - b
		return r, floatBlewUp(float64(a), float64(b), float64(r))
	case kindUnsigned:
		ua, ub := uint64(a), uint64(b)
		if ub > ua {
			// 负结果无法用无符号表示
			return 0, true
		}
		return T(ua - ub), false
	default:
		ia, ib := int64(a), int64(b)
		r := ia - ib
		if (ib > 0 && r > ia) || (ib < 0 && r < ia) {
			return 0, true
		}
		if r < int64(naturalMin[T]()) || r > int64(naturalMax[T]()) {
			return 0, true
		}
		return T(r), false
	}
}

func mulChecked[T Number](a, b T) (T, bool) {
	switch kindOf[T]() {
	case kindFloat:
		r := a * b
		return r, floatBlewUp(float64(a), float64(b), float64(r))
	case kindUnsigned:
		ua, ub := uint64(a), uint64(b)
		if ua == 0 || ub == 0 {
			return 0, false
		}
		r := ua * ub
		if r/ub != ua || r > uint64(naturalMax[T]()) {
			return 0, true
		}
		return T(r), false
	default:
		ia, ib := int64(a), int64(b)
		if ia == 0 || ib == 0 {
			return 0, false
		}
		if (ia == math.MinInt64 && ib == -1) || (ib == math.MinInt64 && ia == -1) {
			return 0, true
		}
		r := ia * ib
		if r/ib != ia {
			return 0, true
		}
		if r < int64(naturalMin[T]()) || r > int64(naturalMax[T]()) {
			return 0, true
		}
		return T(r), false
	}
}

func divChecked[T Number](a, b T) (T, bool) {
	switch kindOf[T]() {
	case kindFloat:
		r := a / b
		return r, floatBlewUp(float64(a), float64(b), float64(r))
	case kindUnsigned:
		ua, ub := uint64(a), uint64(b)
		if ub == 0 {
			return 0, true
		}
		return T(ua / ub), false
	default:
		ia, ib := int64(a), int64(b)
		if ib == 0 {
			return 0, true
		}
		if ia == math.MinInt64 && ib == -1 {
			return 0, true
		}
		r := ia / ib
		if r < int64(naturalMin[T]()) || r > int64(naturalMax[T]()) {
			// 例如 int8: -128 / -1 == 128
			return 0, true
		}
		return T(r), false
	}
}

func negChecked[T Number](a T) (T, bool) {
	switch kindOf[T]() {
	case kindFloat:
		return -a, false
	case kindUnsigned:
		if uint64(a) != 0 {
			return 0, true
		}
		return 0, false
	default:
		ia := int64(a)
		if ia == math.MinInt64 {
			return 0, true
		}
		r := -ia
		if r > int64(naturalMax[T]()) {
			return 0, true
		}
		return T(r), false
	}
}

// floatBlewUp reports whether a finite binary operation escaped the
// representable float range (Inf) or became undefined (NaN, e.g. 0/0).
func floatBlewUp(a, b, r float64) bool {
	if math.IsInf(r, 0) {
		return !math.IsInf(a, 0) && !math.IsInf(b, 0)
	}
	if math.IsNaN(r) {
		return !math.IsNaN(a) && !math.IsNaN(b)
	}
	return false
}
