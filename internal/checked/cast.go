package checked

import "math"

// Exact float64 values of 2^63 and 2^64. A float inside [-2^63, 2^63) can be
// converted to int64 without leaving defined behavior, likewise [0, 2^64) for
// uint64; everything at or past the upper bound must be rejected before the
// conversion runs.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = float64(1 << 64)
)

// Cast converts the raw number src into a checked value of type Dst.
// A conversion that would lose information routes through the policy's
// BadCast hook first: out-of-range values, negative values cast to an
// unsigned kind, floats with a fractional part cast to an integer kind, and
// integers too wide for a float mantissa are all bad casts.
func Cast[Dst, Src Number](src Src, dom *Domain[Dst], pol Policy[Dst]) Value[Dst] {
	if dom == nil {
		dom = Natural[Dst]()
	}
	if pol == nil {
		pol = Abort[Dst]{}
	}
	d, exact := convert[Dst](src)
	if !exact {
		d = pol.BadCast(src)
	}
	val := Value[Dst]{dom: dom, pol: pol}
	return val.rebind(d)
}

// Convert re-wraps the checked value v as a checked value of type Dst.
// The destination domain and policy govern the result.
func Convert[Dst, Src Number](v Value[Src], dom *Domain[Dst], pol Policy[Dst]) Value[Dst] {
	return Cast(v.v, dom, pol)
}

// ConvertExact converts the raw number src to Dst and reports whether the
// conversion kept the exact value. No policy is consulted and no hook fires;
// callers that need loss handling use Cast instead.
func ConvertExact[Dst, Src Number](src Src) (Dst, bool) {
	return convert[Dst](src)
}

// convert returns src as a Dst and reports whether the conversion was exact.
// Ranges are validated with the sign-safe comparison before any narrowing
// conversion runs, so the conversion itself never hits undefined territory.
func convert[Dst, Src Number](src Src) (Dst, bool) {
	ks, kd := kindOf[Src](), kindOf[Dst]()
	switch {
	case ks == kindFloat && kd == kindFloat:
		if math.IsNaN(float64(src)) {
			return Dst(src), true
		}
		d := Dst(src)
		if math.IsInf(float64(d), 0) && !math.IsInf(float64(src), 0) {
			// 有限的 float64 缩成 float32 溢出了
			return d, false
		}
		return d, float64(Src(d)) == float64(src)

	case ks == kindFloat:
		// float → integer
		f := float64(src)
		if math.IsNaN(f) || f != math.Trunc(f) {
			return 0, false
		}
		if kd == kindUnsigned {
			if f < 0 || f >= twoTo64 {
				return 0, false
			}
			u := uint64(f)
			if c, _ := compareNumbers(u, naturalMax[Dst]()); c > 0 {
				return 0, false
			}
			return Dst(u), true
		}
		if f < -twoTo63 || f >= twoTo63 {
			return 0, false
		}
		i := int64(f)
		if c, _ := compareNumbers(i, naturalMin[Dst]()); c < 0 {
			return 0, false
		}
		if c, _ := compareNumbers(i, naturalMax[Dst]()); c > 0 {
			return 0, false
		}
		return Dst(i), true

	case kd == kindFloat:
		// integer → float: the conversion is always defined, exactness is not.
		d := Dst(src)
		return d, intFloatExact(float64(d), src)

	default:
		// integer → integer: in-range conversions are exact.
		if c, _ := compareNumbers(src, naturalMin[Dst]()); c < 0 {
			return 0, false
		}
		if c, _ := compareNumbers(src, naturalMax[Dst]()); c > 0 {
			return 0, false
		}
		return Dst(src), true
	}
}

// intFloatExact reports whether the float f, produced by converting the
// integer src, still holds src's exact value.
func intFloatExact[Src Number](f float64, src Src) bool {
	if kindOf[Src]() == kindUnsigned {
		if f < 0 || f >= twoTo64 {
			return false
		}
		return uint64(f) == uint64(src)
	}
	if f < -twoTo63 || f >= twoTo63 {
		return false
	}
	return int64(f) == int64(src)
}
