package checked

import "math"

// Signed 限定为有符号整型。
// 不用 ~ 前缀：该库只支持语言内建的数值类型，自定义底层类型不在范围内。
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned 限定为无符号整型。
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integer is an alias for all signed and unsigned integer kinds.
type Integer interface {
	Signed | Unsigned
}

// Float is an alias for the float32 and float64 kinds.
type Float interface {
	float32 | float64
}

// Number is an alias for every numeric kind a Value may wrap.
type Number interface {
	Integer | Float
}

type kind int

const (
	kindSigned kind = iota
	kindUnsigned
	kindFloat
)

// kindOf reports the signedness class of T. Every operation branches on this
// so the 64-bit canonical checks below always run in the right integer space.
func kindOf[T Number]() kind {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return kindFloat
	case uint, uint8, uint16, uint32, uint64:
		return kindUnsigned
	default:
		return kindSigned
	}
}

// naturalMin returns the smallest value representable by T.
func naturalMin[T Number]() T {
	var zero T
	switch any(zero).(type) {
	case int:
		v := int64(math.MinInt)
		return T(v)
	case int8:
		v := int64(math.MinInt8)
		return T(v)
	case int16:
		v := int64(math.MinInt16)
		return T(v)
	case int32:
		v := int64(math.MinInt32)
		return T(v)
	case int64:
		v := int64(math.MinInt64)
		return T(v)
	case float32:
		v := float64(-math.MaxFloat32)
		return T(v)
	case float64:
		v := -math.MaxFloat64
		return T(v)
	default:
		// 所有无符号类型的最小值都是 0
		return zero
	}
}

// naturalMax returns the largest value representable by T.
func naturalMax[T Number]() T {
	var zero T
	switch any(zero).(type) {
	case int:
		v := int64(math.MaxInt)
		return T(v)
	case int8:
		v := int64(math.MaxInt8)
		return T(v)
	case int16:
		v := int64(math.MaxInt16)
		return T(v)
	case int32:
		v := int64(math.MaxInt32)
		return T(v)
	case int64:
		v := int64(math.MaxInt64)
		return T(v)
	case uint:
		v := uint64(math.MaxUint)
		return T(v)
	case uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	case uint64:
		v := uint64(math.MaxUint64)
		return T(v)
	case float32:
		v := float64(math.MaxFloat32)
		return T(v)
	default:
		v := math.MaxFloat64
		return T(v)
	}
}

// toFloat converts any supported numeric value to float64.
// Returns false if src is not one of the builtin numeric kinds.
func toFloat(src any) (float64, bool) {
	switch s := src.(type) {
	case int:
		return float64(s), true
	case int8:
		return float64(s), true
	case int16:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint8:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint64:
		return float64(s), true
	case float32:
		return float64(s), true
	case float64:
		return s, true
	default:
		return 0, false
	}
}
