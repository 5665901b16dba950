package bigint

import "github.com/golang/glog"

// divPreconditions implements the fast-path checks shared by every
// division variant (spec.md §4.4): zero divisor or a negative operand
// fails with ErrDivisionDomain; a dividend smaller than the divisor or a
// divisor of exactly one short-circuits to the trivial answer. handled
// is false when the caller must run the full algorithm.
func divPreconditions(dividend, divisor *BigInt) (quotient, remainder *BigInt, handled bool, err error) {
	if divisor.IsZero() {
		return Zero(), Zero(), true, ErrDivisionDomain
	}
	if divisor.sign == Negative || dividend.sign == Negative {
		return Zero(), Zero(), true, ErrDivisionDomain
	}
	if dividend.CmpAbs(divisor) < 0 {
		return Zero(), New(1).Set(dividend), true, nil
	}
	if divisor.IsOne() {
		return New(1).Set(dividend), Zero(), true, nil
	}
	return nil, nil, false, nil
}

// DivBinaryLong divides dividend by divisor one bit at a time, from the
// most significant bit down: R <- 2R, inject the dividend's current bit
// into R's low bit, and if R >= divisor subtract divisor and set the
// matching quotient bit. Complexity is O(BitLen(dividend)*DigitCount(divisor)).
//
// Grounded on autobahn_division.c's bigint_division_binary_long, with the
// quotient built by shifting and OR-ing the new bit in (equivalent to,
// but far simpler than, the original's per-bit 2^i BigInt construction).
func DivBinaryLong(dividend, divisor *BigInt) (quotient, remainder *BigInt, err error) {
	if q, r, handled, err := divPreconditions(dividend, divisor); handled {
		return q, r, err
	}

	quotient = Zero()
	remainder = Zero()
	totalBits := dividend.DigitCount() * wordBits
	for bitPos := totalBits - 1; bitPos >= 0; bitPos-- {
		remainder = New(1).ExpandBit(remainder)
		remainder.digits[0] |= Word(dividend.Bit(bitPos))

		quotient = New(1).ExpandBit(quotient)
		if remainder.CmpAbs(divisor) >= 0 {
			quotient.digits[0] |= 1
			remainder = New(1).Sub(remainder, divisor)
		}
	}
	return quotient, remainder, nil
}

// naiveDivisionWarnDigits is the digit count beyond which DivNaive logs a
// warning: it is a test oracle for small operands only (spec.md §4.4),
// never a production path.
const naiveDivisionWarnDigits = 8

// DivNaive computes dividend/divisor by repeated subtraction. It exists
// only as a cross-check oracle for small operands; do not call it on
// production-size (cryptographic) operands.
//
// Grounded on autobahn_division.c's bigint_division_naive.
func DivNaive(dividend, divisor *BigInt) (quotient, remainder *BigInt, err error) {
	if q, r, handled, err := divPreconditions(dividend, divisor); handled {
		return q, r, err
	}
	if dividend.DigitCount() > naiveDivisionWarnDigits {
		glog.Warningf("bigint: DivNaive invoked on a %d-digit dividend; this is a test oracle, not a production path", dividend.DigitCount())
	}

	one := One()
	quotient = Zero()
	remainder = New(1).Set(dividend)
	for remainder.CmpAbs(divisor) >= 0 {
		quotient = New(1).Add(quotient, one)
		remainder = New(1).Sub(remainder, divisor)
	}
	return quotient, remainder, nil
}

// divTwoWordOneWord computes floor((dHigh*B + dLow) / v) for a single
// Word v with its most-significant bit set (normalized). It is exact and
// never overflows under that normalization invariant.
//
// Grounded on autobahn_division.c's get_quotient_of_division_two_word.
func divTwoWordOneWord(dHigh, dLow, v Word) Word {
	var quotient, remainder Word
	remainder = dHigh
	for bitIdx := wordBits - 1; bitIdx >= 0; bitIdx-- {
		bit := (dLow >> uint(bitIdx)) & 1
		bitMask := Word(1) << uint(bitIdx)
		if remainder>>(wordBits-1) == 1 {
			quotient += bitMask
			remainder = remainder*2 + bit - v
		} else {
			remainder = remainder*2 + bit
			if remainder >= v {
				quotient += bitMask
				remainder -= v
			}
		}
	}
	return quotient
}

// divExpandedTwoDigit produces an initial quotient-word guess for
// paddedDividend / divisor, where paddedDividend has exactly
// len(divisor)+1 words (its top word is zero when the true dividend has
// the same digit count as the divisor). divisor's top word must have its
// MSB set.
//
// Grounded on autobahn_division.c's division_expanded_two_word.
func divExpandedTwoDigit(paddedDividend, divisor []Word) Word {
	n := len(divisor)
	dTop := paddedDividend[n]
	dNext := paddedDividend[n-1]
	v := divisor[n-1]
	switch {
	case dTop == 0:
		return dNext / v
	case dTop == v:
		return ^Word(0) // B-1: all bits set
	default:
		return divTwoWordOneWord(dTop, dNext, v)
	}
}

// quotientAndRemainderStep turns the divExpandedTwoDigit guess into an
// exact (quotient word, remainder) pair by subtracting q*divisor and
// correcting at most twice (spec.md §4.4's normalization invariant bounds
// the correction loop to two iterations).
func quotientAndRemainderStep(paddedDividend, divisor *BigInt) (Word, *BigInt) {
	q := divExpandedTwoDigit(paddedDividend.digits, divisor.digits)
	qWord := New(1).SetWords([]Word{q}, Positive)
	product := New(1).Mul(qWord, divisor)
	remainder := New(1).Sub(paddedDividend, product)
	for remainder.sign == Negative {
		q--
		remainder = New(1).Add(remainder, divisor)
	}
	return q, remainder
}

func shiftLeftBits(x *BigInt, bits int) *BigInt {
	result := New(1).Set(x)
	for i := 0; i < bits; i++ {
		result = New(1).ExpandBit(result)
	}
	return result
}

func shiftRightBits(x *BigInt, bits int) *BigInt {
	result := New(1).Set(x)
	for i := 0; i < bits; i++ {
		result = New(1).CompressBit(result)
	}
	return result
}

// DivWordLong is the production division path: it normalizes divisor so
// its top word's MSB is set (recording the shift count), then reduces
// each dividend digit to a two-digit/one-digit subproblem via
// divExpandedTwoDigit, finally undoing the normalization on the
// remainder only (the quotient is unaffected by normalization).
//
// Grounded on autobahn_division.c's bigint_division_word_long plus
// division_two_word, restated with the normalization computed once up
// front (spec.md §4.4) rather than re-derived on every digit.
func DivWordLong(dividend, divisor *BigInt) (quotient, remainder *BigInt, err error) {
	if q, r, handled, err := divPreconditions(dividend, divisor); handled {
		return q, r, err
	}

	shift := nlz(divisor.digits[divisor.DigitCount()-1])
	normDividend := shiftLeftBits(dividend, shift)
	normDivisor := shiftLeftBits(divisor, shift)
	n := normDivisor.DigitCount()

	quotient = Zero()
	remainder = Zero()
	for idx := normDividend.DigitCount() - 1; idx >= 0; idx-- {
		t := New(1).Expand(remainder, 1)
		t.digits[0] = normDividend.digits[idx]
		paddedT := padTo(t, n+1)

		qi, newRemainder := quotientAndRemainderStep(paddedT, normDivisor)
		quotient = New(1).Expand(quotient, 1)
		quotient.digits[0] = qi
		remainder = newRemainder
	}

	remainder = shiftRightBits(remainder, shift)
	return quotient.Refine(), remainder.Refine(), nil
}

// Div is the recommended general-purpose division entry point: the
// word-long algorithm, production-fast per spec.md §4.4.
func Div(dividend, divisor *BigInt) (quotient, remainder *BigInt, err error) {
	return DivWordLong(dividend, divisor)
}
