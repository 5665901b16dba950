package bigint

import "github.com/golang/glog"

// karatsubaCutoff is the largest shared digit count that is still
// multiplied by schoolbook: operands whose smaller digit count is at most
// karatsubaCutoff go to schoolbook, and Karatsuba recursion runs only
// above it. Fixed at 4; it may be tuned upward but never lowered.
const karatsubaCutoff = 4

// mulWordWord returns the full two-word product of x and y, computed via
// half-word splitting rather than a double-width native multiply — the
// technique is width-agnostic (it only depends on wordBits being even),
// which matters here because Word's width is itself a build-time choice.
//
// Grounded on autobahn_multiplication.c's word_multiplication.
func mulWordWord(x, y Word) (hi, lo Word) {
	const half = wordBits / 2
	const mask = Word(1)<<half - 1

	xHi, xLo := x>>half, x&mask
	yHi, yLo := y>>half, y&mask

	lo = xLo * yLo
	hi = xHi * yHi

	mid := xHi*yLo + xLo*yHi
	var midCarry Word
	if mid < xHi*yLo {
		midCarry = 1
	}
	midLo := mid << half
	midHi := (mid >> half) + (midCarry << half)

	newLo := lo + midLo
	var loCarry Word
	if newLo < midLo {
		loCarry = 1
	}
	return hi + midHi + loCarry, newLo
}

// mulMagnitudeSchoolbook multiplies two magnitude digit vectors and
// returns a result of length len(x)+len(y) (not yet refined). Each
// word×word partial product is accumulated directly into the result
// vector at its (i+j) position with carry propagation, the efficient
// restatement of spec.md §4.3's "produce w_ij, shift left by (i+j)
// words, and accumulate" — equivalent to, but far cheaper than,
// performing that accumulation as a sequence of full BigInt shifts and
// adds the way the original C source does it pair by pair.
func mulMagnitudeSchoolbook(x, y []Word) []Word {
	out := make([]Word, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry Word
		for j, yj := range y {
			hi, lo := mulWordWord(xi, yj)
			sum, c1 := addWordCarry(out[i+j], lo, 0)
			sum, c2 := addWordCarry(sum, carry, 0)
			out[i+j] = sum
			carry = hi + c1 + c2
		}
		for k := i + len(y); carry != 0; k++ {
			sum, c := addWordCarry(out[k], carry, 0)
			out[k] = sum
			carry = c
		}
	}
	return out
}

func absOf(x *BigInt) *BigInt {
	c := New(1).Set(x)
	c.sign = Positive
	return c
}

func signOfProduct(x, y Sign) Sign {
	if x == y {
		return Positive
	}
	return Negative
}

// MulSchoolbook sets z = x * y using the grade-school O(n*m) algorithm
// and returns z. Grounded on autobahn_multiplication.c's
// bigint_multiplication_textbook.
func (z *BigInt) MulSchoolbook(x, y *BigInt) *BigInt {
	if x.IsZero() || y.IsZero() {
		z.digits = []Word{0}
		z.sign = Positive
		return z
	}
	z.digits = mulMagnitudeSchoolbook(x.digits, y.digits)
	z.sign = signOfProduct(x.sign, y.sign)
	return z.Refine()
}

func padTo(x *BigInt, width int) *BigInt {
	d := make([]Word, width)
	copy(d, x.digits)
	return &BigInt{sign: Positive, digits: d}
}

func splitLowHigh(x *BigInt, h int) (lo, hi *BigInt) {
	loD := make([]Word, h)
	copy(loD, x.digits[:h])
	hiD := make([]Word, len(x.digits)-h)
	copy(hiD, x.digits[h:])
	return &BigInt{sign: Positive, digits: loD}, &BigInt{sign: Positive, digits: hiD}
}

// karatsubaMagnitude multiplies two non-negative BigInts (sign ignored
// on entry, always Positive on return) using the Karatsuba recursion
// above the cutoff in digit length, delegating to schoolbook at or below it.
//
// Grounded on autobahn_multiplication.c's bigint_multiplication_karatsuba.
func karatsubaMagnitude(x, y *BigInt) *BigInt {
	m := len(x.digits)
	if len(y.digits) > m {
		m = len(y.digits)
	}
	n := len(x.digits)
	if len(y.digits) < n {
		n = len(y.digits)
	}
	if n <= karatsubaCutoff {
		return New(1).MulSchoolbook(x, y)
	}

	h := (m + 1) >> 1
	xPad := padTo(x, 2*h)
	yPad := padTo(y, 2*h)
	xLo, xHi := splitLowHigh(xPad, h)
	yLo, yHi := splitLowHigh(yPad, h)

	z2 := karatsubaMagnitude(xHi, yHi) // x1*y1
	z0 := karatsubaMagnitude(xLo, yLo) // x0*y0

	// xd = x1-x0, yd = y0-y1 (may be negative; Sub is sign-aware).
	xd := New(1).Sub(xHi, xLo)
	yd := New(1).Sub(yLo, yHi)
	mid := karatsubaMagnitude(absOf(xd), absOf(yd))
	mid.sign = signOfProduct(xd.sign, yd.sign)

	// z1 = xd*yd + z2 + z0 == x1*y0 + x0*y1 (always non-negative).
	z1 := New(1).Add(mid, z2)
	z1 = New(1).Add(z1, z0)

	result := New(1).Expand(z2, 2*h)
	result = New(1).Add(result, z0)
	result = New(1).Add(result, New(1).Expand(z1, h))
	return result
}

// MulKaratsuba sets z = x * y using the Karatsuba recursion (falling
// back to schoolbook below the cutoff) and returns z.
func (z *BigInt) MulKaratsuba(x, y *BigInt) *BigInt {
	if x.IsZero() || y.IsZero() {
		z.digits = []Word{0}
		z.sign = Positive
		return z
	}
	mag := karatsubaMagnitude(absOf(x), absOf(y))
	z.digits = mag.digits
	z.sign = signOfProduct(x.sign, y.sign)
	return z.Refine()
}

// Mul sets z = x * y, dispatching to Karatsuba or schoolbook by the
// shared operand digit count against karatsubaCutoff. This is the
// recommended general-purpose entry point.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	if x == y {
		// Equal operands: squaring exploits the diagonal/off-diagonal
		// symmetry schoolbook multiplication cannot (spec.md §4.3).
		return z.Square(x)
	}
	n := x.DigitCount()
	if y.DigitCount() < n {
		n = y.DigitCount()
	}
	if n <= karatsubaCutoff {
		glog.V(2).Infof("bigint: mul dispatch schoolbook (shared digits=%d)", n)
		return z.MulSchoolbook(x, y)
	}
	glog.V(2).Infof("bigint: mul dispatch karatsuba (shared digits=%d)", n)
	return z.MulKaratsuba(x, y)
}
