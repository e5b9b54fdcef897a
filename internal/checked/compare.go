package checked

// compareNumbers performs the sign-safe three-way comparison between two
// numbers of possibly different kinds. It never converts a signed operand's
// sign away: a negative signed integer compares below every unsigned integer,
// whatever the raw bit patterns look like.
//
// mismatch is set whenever one operand is a signed integer and the other is
// unsigned. The comparison result is still mathematically correct in that
// case; whether mixing signedness is acceptable at all is left to the policy.
func compareNumbers[A, B Number](a A, b B) (c int, mismatch bool) {
	ka, kb := kindOf[A](), kindOf[B]()

	if ka == kindFloat || kb == kindFloat {
		return cmpOrdered(float64(a), float64(b)), false
	}

	switch {
	case ka == kindSigned && kb == kindSigned:
		return cmpOrdered(int64(a), int64(b)), false
	case ka == kindUnsigned && kb == kindUnsigned:
		return cmpOrdered(uint64(a), uint64(b)), false
	case ka == kindSigned:
		// signed vs unsigned
		ia := int64(a)
		if ia < 0 {
			return -1, true
		}
		return cmpOrdered(uint64(ia), uint64(b)), true
	default:
		// unsigned vs signed
		ib := int64(b)
		if ib < 0 {
			return 1, true
		}
		return cmpOrdered(uint64(a), uint64(ib)), true
	}
}

func cmpOrdered[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether the checked value a equals the raw operand rhs.
// The result routes through a's policy, so a mixed signed/unsigned pairing is
// subject to whatever the policy decides (fatal under Abort).
func Equal[A, B Number](a Value[A], rhs B) bool {
	c, mismatch := compareNumbers(a.v, rhs)
	return a.pol.Equals(a.v, rhs, c == 0, mismatch)
}

// Compare three-way compares the checked value a against the raw operand rhs:
// negative when a < rhs, zero when equal, positive when a > rhs. Routed
// through a's policy like Equal.
func Compare[A, B Number](a Value[A], rhs B) int {
	c, mismatch := compareNumbers(a.v, rhs)
	return a.pol.Compare(a.v, rhs, c, mismatch)
}

// EqualValues reports whether two checked values hold equal numbers.
// The left operand's policy arbitrates.
func EqualValues[A, B Number](a Value[A], b Value[B]) bool {
	return Equal(a, b.v)
}

// CompareValues three-way compares two checked values.
// The left operand's policy arbitrates.
func CompareValues[A, B Number](a Value[A], b Value[B]) int {
	return Compare(a, b.v)
}
