//go:generate go run github.com/dmarkham/enumer -type=Op -trimprefix=Op -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Violation -trimprefix=Violation -transform=kebab
package checked

// Op identifies the operator a hook was invoked for.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpConv
	OpEq
	OpCmp
)

// Violation categorizes the unsafe conditions the checked layer can detect.
type Violation int

const (
	ViolationBadCast Violation = iota
	ViolationLowerBound
	ViolationUpperBound
	ViolationSignMismatch
	ViolationOverflow
	ViolationIntervalInvariant
)

// Policy decides the outcome of every numerically unsafe situation the
// arithmetic layer can produce: recover with a substitute value, or divert
// control and never return. The checked layer performs the detection itself
// (sign-safe comparison, overflow and bound checks) and hands the hook the
// operands plus the computed result, so a policy only has to decide.
//
// Rules:
//   - BadCast fires when a conversion into T would lose precision or
//     reinterpret a negative value as unsigned. The return value substitutes
//     the conversion result.
//   - LowerBound / UpperBound fire when a result falls outside the configured
//     domain. The return value substitutes the out-of-range result.
//   - Equals / Compare fire for every comparison. eq/cmp hold the result of
//     the sign-safe comparison algorithm; mismatch is set when the operands
//     mixed signed and unsigned integers. The hook returns the comparison
//     result the caller will observe.
//   - Overflow fires when the mathematically correct result of op is not
//     representable in T. For unary ops rhs is the zero value.
type Policy[T Number] interface {
	BadCast(src any) T
	LowerBound(got T, bound T) T
	UpperBound(got T, bound T) T
	Equals(lhs T, rhs any, eq bool, mismatch bool) bool
	Compare(lhs T, rhs any, cmp int, mismatch bool) int
	Overflow(op Op, lhs T, rhs T) T
}
