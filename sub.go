package bigint

// subWordBorrow subtracts y and an incoming 0/1 borrow from x, returning
// the wraparound difference and the outgoing 0/1 borrow.
// Grounded on the word-level step implied by autobahn_subtraction.c's
// ripple loop (the mirror image of word_addition_with_carry).
func subWordBorrow(x, y, borrowIn Word) (diff, borrowOut Word) {
	diff = x - y
	var b1 Word
	if x < y {
		b1 = 1
	}
	var b2 Word
	if diff < borrowIn {
		b2 = 1
	}
	diff -= borrowIn
	return diff, b1 + b2
}

// subMagnitude ripple-subtracts y from x (|x| >= |y| required by the
// caller), treating missing high digits of y as zero. The trailing
// borrow is never surfaced — it is an invariant violation, not a
// reportable condition, if the precondition holds.
func subMagnitude(x, y []Word) []Word {
	out := make([]Word, len(x))
	var borrow Word
	for i := range x {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		out[i], borrow = subWordBorrow(x[i], yi, borrow)
	}
	return out
}

// Sub sets z = x - y and returns z. Aliasing is safe for the same reason
// as Add: the result is built in a local temporary first.
//
// Grounded on autobahn_subtraction.c's bigint_subtraction.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	if x.sign != y.sign {
		flippedY := New(1).Set(y)
		flippedY.sign = flippedY.sign.flip()
		result := New(1).Add(x, flippedY)
		z.digits = result.digits
		z.sign = result.sign
		return z
	}

	switch x.CmpAbs(y) {
	case 0:
		z.digits = []Word{0}
		z.sign = Positive
		return z
	case 1:
		z.digits = subMagnitude(x.digits, y.digits)
		z.sign = x.sign
		return z.Refine()
	default: // |x| < |y|
		z.digits = subMagnitude(y.digits, x.digits)
		z.sign = x.sign.flip()
		return z.Refine()
	}
}
