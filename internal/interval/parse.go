package interval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vipcxj/safenum/internal/checked"
)

// Parse parses a closed-interval literal and returns the Interval.
//
// Supported format:
//   - [min,max]
//
// Spaces around the brackets, the comma and the numbers are ignored. Only the
// closed form exists; open or half-open brackets are a syntax error. A
// literal with min > max is rejected here as a parse error, before any
// Interval is constructed; user input is a data condition, not a contract
// breach.
//
// The parsed bounds are wrapped with dom and pol (nil means T's natural
// domain and the aborting policy).
func Parse[T checked.Number](s string, dom *checked.Domain[T], pol checked.Policy[T]) (Interval[T], error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Interval[T]{}, fmt.Errorf("empty interval")
	}
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return Interval[T]{}, fmt.Errorf("invalid interval syntax: %s", s)
	}
	inner := strings.TrimSpace(t[1 : len(t)-1])
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return Interval[T]{}, fmt.Errorf("invalid interval syntax: %s", s)
	}
	lb, err := ParseScalar[T](parts[0])
	if err != nil {
		return Interval[T]{}, fmt.Errorf("invalid left bound: %w", err)
	}
	ub, err := ParseScalar[T](parts[1])
	if err != nil {
		return Interval[T]{}, fmt.Errorf("invalid right bound: %w", err)
	}
	if lb > ub {
		return Interval[T]{}, fmt.Errorf("empty interval: min > max")
	}
	return New(checked.New(lb, dom, pol), checked.New(ub, dom, pol)), nil
}

// ParseScalar parses tok as a number of kind T, with T's own bit width.
func ParseScalar[T checked.Number](tok string) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty number")
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		f, err := strconv.ParseFloat(tok, 32)
		return T(f), err
	case float64:
		f, err := strconv.ParseFloat(tok, 64)
		return T(f), err
	case uint:
		u, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		return T(u), err
	case uint8:
		u, err := strconv.ParseUint(tok, 10, 8)
		return T(u), err
	case uint16:
		u, err := strconv.ParseUint(tok, 10, 16)
		return T(u), err
	case uint32:
		u, err := strconv.ParseUint(tok, 10, 32)
		return T(u), err
	case uint64:
		u, err := strconv.ParseUint(tok, 10, 64)
		return T(u), err
	case int8:
		n, err := strconv.ParseInt(tok, 10, 8)
		return T(n), err
	case int16:
		n, err := strconv.ParseInt(tok, 10, 16)
		return T(n), err
	case int32:
		n, err := strconv.ParseInt(tok, 10, 32)
		return T(n), err
	case int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		return T(n), err
	default:
		n, err := strconv.ParseInt(tok, 10, strconv.IntSize)
		return T(n), err
	}
}

// formatScalar renders v the way ParseScalar reads it back.
func formatScalar[T checked.Number](v T) string {
	switch n := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}
