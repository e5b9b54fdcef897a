package checked

import (
	"log/slog"
	"os"
)

// AbortExitCode is the process exit code used by the aborting policy.
const AbortExitCode = 2

// Abort is the terminating policy: every hook reports the violated operation
// and its operands to the diagnostic sink, then ends the process. Nothing is
// recovered, no error value travels back to the caller.
//
// Log and Exit exist so tests (and embedders with their own lifecycle) can
// observe the termination; left nil they fall back to slog.Default and
// os.Exit. The mixed-sign comparison hooks are terminal only when the
// sign-safe comparison flagged the pairing; a comparison between operands of
// like signedness passes its result through untouched.
type Abort[T Number] struct {
	Log  *slog.Logger
	Exit func(code int)
}

func (p Abort[T]) BadCast(src any) T {
	p.logger().Error("checked arithmetic violation",
		"kind", ViolationBadCast.String(),
		"op", OpConv.String(),
		"src", src)
	p.exit()
	var zero T
	return zero
}

func (p Abort[T]) LowerBound(got T, bound T) T {
	p.logger().Error("checked arithmetic violation",
		"kind", ViolationLowerBound.String(),
		"got", got,
		"bound", bound)
	p.exit()
	var zero T
	return zero
}

func (p Abort[T]) UpperBound(got T, bound T) T {
	p.logger().Error("checked arithmetic violation",
		"kind", ViolationUpperBound.String(),
		"got", got,
		"bound", bound)
	p.exit()
	var zero T
	return zero
}

func (p Abort[T]) Equals(lhs T, rhs any, eq bool, mismatch bool) bool {
	if mismatch {
		p.logger().Error("checked arithmetic violation",
			"kind", ViolationSignMismatch.String(),
			"op", OpEq.String(),
			"lhs", lhs,
			"rhs", rhs)
		p.exit()
	}
	return eq
}

func (p Abort[T]) Compare(lhs T, rhs any, cmp int, mismatch bool) int {
	if mismatch {
		p.logger().Error("checked arithmetic violation",
			"kind", ViolationSignMismatch.String(),
			"op", OpCmp.String(),
			"lhs", lhs,
			"rhs", rhs)
		p.exit()
	}
	return cmp
}

func (p Abort[T]) Overflow(op Op, lhs T, rhs T) T {
	p.logger().Error("checked arithmetic violation",
		"kind", ViolationOverflow.String(),
		"op", op.String(),
		"lhs", lhs,
		"rhs", rhs)
	p.exit()
	var zero T
	return zero
}

func (p Abort[T]) logger() *slog.Logger {
	if p.Log != nil {
		return p.Log
	}
	return slog.Default()
}

func (p Abort[T]) exit() {
	if p.Exit != nil {
		p.Exit(AbortExitCode)
		return
	}
	os.Exit(AbortExitCode)
}
