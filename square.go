package bigint

// squareWordWord returns the full two-word square of a, computed via
// half-word splitting and exploiting a*a's symmetry: a single cross
// product a_lo*a_hi stands in for both A0*A1 and A1*A0, doubled once
// with its own shift carry tracked explicitly.
//
// Grounded on autobahn_squaring.c's word_squaring.
func squareWordWord(a Word) (hi, lo Word) {
	const half = wordBits / 2
	const mask = Word(1)<<half - 1

	aHi, aLo := a>>half, a&mask
	lo = aLo * aLo
	hi = aHi * aHi

	mid := aLo * aHi // fits exactly in one Word: each factor is half-width
	midLo := mid << half
	midHi := mid >> half

	// double (2 * a_lo * a_hi), tracking the shift-out bit as carry.
	carry := (midLo >> (wordBits - 1)) & 1
	midLo <<= 1
	midHi = (midHi << 1) + carry

	sum, c := addWordCarry(lo, midLo, 0)
	return hi + midHi + c, sum
}

// addWordsAt accumulates words into dst starting at offset, propagating
// carry beyond the last supplied word. dst must have enough trailing
// capacity to absorb that carry.
func addWordsAt(dst []Word, offset int, words ...Word) {
	var carry Word
	for i, w := range words {
		sum, c1 := addWordCarry(dst[offset+i], w, 0)
		sum, c2 := addWordCarry(sum, carry, 0)
		dst[offset+i] = sum
		carry = c1 + c2
	}
	for k := offset + len(words); carry != 0; k++ {
		var c Word
		dst[k], c = addWordCarry(dst[k], carry, 0)
		carry = c
	}
}

func shiftLeftOneBitRaw(words []Word) []Word {
	out := make([]Word, len(words))
	var carry Word
	for i, w := range words {
		out[i] = (w << 1) | carry
		carry = w >> (wordBits - 1)
	}
	return out
}

func addRaw(a, b []Word) []Word {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]Word, n+1)
	var carry Word
	for i := 0; i < n; i++ {
		var ai, bi Word
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i], carry = addWordCarry(ai, bi, carry)
	}
	out[n] = carry
	return out
}

// squareMagnitudeSchoolbook computes x*x via the diagonal/off-diagonal
// decomposition: sum(x[i]^2 << 2i) plus twice the strict upper triangle
// sum(x[i]*x[j] << (i+j), i<j). The doubling is a single 1-bit left
// shift applied to the accumulated off-diagonal sum, not to each term
// (spec.md §4.3).
//
// Grounded on autobahn_squaring.c's bigint_squaring_textbook.
func squareMagnitudeSchoolbook(x []Word) []Word {
	n := len(x)
	size := 2*n + 2
	diagonal := make([]Word, size)
	offdiag := make([]Word, size)

	for i := 0; i < n; i++ {
		hi, lo := squareWordWord(x[i])
		addWordsAt(diagonal, 2*i, lo, hi)
		for j := i + 1; j < n; j++ {
			hi2, lo2 := mulWordWord(x[i], x[j])
			addWordsAt(offdiag, i+j, lo2, hi2)
		}
	}

	doubled := shiftLeftOneBitRaw(offdiag)
	result := addRaw(diagonal, doubled)
	return result[:2*n]
}

// SquareSchoolbook sets z = x*x using the diagonal/off-diagonal
// decomposition and returns z.
func (z *BigInt) SquareSchoolbook(x *BigInt) *BigInt {
	if x.IsZero() {
		z.digits = []Word{0}
		z.sign = Positive
		return z
	}
	z.digits = squareMagnitudeSchoolbook(x.digits)
	z.sign = Positive
	return z.Refine()
}

// squareKaratsubaMagnitude squares a non-negative BigInt using the
// Karatsuba recursion: z2 = hi^2, z0 = lo^2, z1 = 2*hi*lo.
//
// Grounded on autobahn_squaring.c's bigint_squaring_karatsuba.
func squareKaratsubaMagnitude(x *BigInt) *BigInt {
	n := x.DigitCount()
	if n <= karatsubaCutoff {
		return New(1).SquareSchoolbook(x)
	}
	h := (n + 1) >> 1
	xLo, xHi := splitLowHigh(x, h)

	z2 := squareKaratsubaMagnitude(xHi)
	z0 := squareKaratsubaMagnitude(xLo)
	cross := karatsubaMagnitude(xHi, xLo)
	z1 := New(1).ExpandBit(cross) // doubling via a single 1-bit expand

	result := New(1).Expand(z2, 2*h)
	result = New(1).Add(result, z0)
	result = New(1).Add(result, New(1).Expand(z1, h))
	return result
}

// SquareKaratsuba sets z = x*x using the Karatsuba recursion (falling
// back to schoolbook below the cutoff) and returns z.
func (z *BigInt) SquareKaratsuba(x *BigInt) *BigInt {
	if x.IsZero() {
		z.digits = []Word{0}
		z.sign = Positive
		return z
	}
	mag := squareKaratsubaMagnitude(absOf(x))
	z.digits = mag.digits
	z.sign = Positive
	return z.Refine()
}

// Square sets z = x*x, dispatching to Karatsuba or schoolbook by digit
// count against karatsubaCutoff.
func (z *BigInt) Square(x *BigInt) *BigInt {
	if x.DigitCount() <= karatsubaCutoff {
		return z.SquareSchoolbook(x)
	}
	return z.SquareKaratsuba(x)
}
