package bigint

// addWordCarry adds two Words plus an incoming 0/1 carry, returning the
// wraparound sum and the outgoing 0/1/2-collapsed-to-0/1 carry.
// Grounded on autobahn_addition.c's word_addition_with_carry.
func addWordCarry(x, y, carryIn Word) (sum, carryOut Word) {
	sum = x + y
	var c1 Word
	if sum < x {
		c1 = 1
	}
	sum += carryIn
	var c2 Word
	if sum < carryIn {
		c2 = 1
	}
	return sum, c1 + c2
}

// addMagnitude ripple-adds two digit vectors of possibly different
// lengths, treating missing high digits as zero rather than mutating
// either input (spec.md §9's guidance against resizing a nominally
// read-only operand). The result has length max(len(x), len(y))+1, one
// word wider than the original's "digit_count(x)+1" since it does not
// require the caller to pre-sort operands by length.
func addMagnitude(x, y []Word) []Word {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	out := make([]Word, n+1)
	var carry Word
	for i := 0; i < n; i++ {
		var xi, yi Word
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		out[i], carry = addWordCarry(xi, yi, carry)
	}
	out[n] = carry
	return out
}

// Add sets z = x + y and returns z. Aliasing (z == x, z == y, or x == y)
// is always safe: the result is fully computed in a local temporary
// before being stored into z, the same "compute then copy" shape the
// original source uses throughout (tmp_result, then bigint_copy).
//
// Grounded on autobahn_addition.c's bigint_addition / bigint_addition_unsigned.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	if x.sign != y.sign {
		if x.sign == Positive {
			negY := New(1).Set(y)
			negY.sign = Positive
			return z.Sub(x, negY)
		}
		negX := New(1).Set(x)
		negX.sign = Positive
		return z.Sub(y, negX)
	}

	out := addMagnitude(x.digits, y.digits)
	sign := x.sign
	z.digits = out
	z.sign = sign
	return z.Refine()
}
