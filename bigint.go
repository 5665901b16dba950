// Package bigint implements multi-precision unsigned/signed integer
// arithmetic for public-key-cryptography-style workloads: addition,
// subtraction, schoolbook and Karatsuba multiplication and squaring,
// binary and word-wise long division, Barrett modular reduction, and two
// flavors of modular exponentiation.
//
// The digit width (Word) is a compile-time choice — see word_w8.go,
// word_w32.go, and word_w64.go — selected with the "word8" or "word64"
// build tags (32-bit digits by default). All values on a given build
// agree on the width; mixing widths within one process is not supported.
package bigint

// Sign is the two-valued sign tag carried by every BigInt. The value
// zero is always Positive (invariant ZS).
type Sign int

const (
	Positive Sign = 0
	Negative Sign = 1
)

func (s Sign) flip() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// BigInt is a signed-magnitude integer: a sign tag plus a little-endian
// sequence of Words (index 0 is least significant). The digit slice is
// never empty (invariant NZ) and, once normalized, carries no
// most-significant zero word longer than one digit (invariant NL).
//
// BigInt has value semantics: every exported operation reads its inputs
// fully before writing its receiver, so z.Add(z, y) and similar aliasing
// is always safe. There is no shared ownership — copy a BigInt with Set
// or New(1).Set(x) before handing it to a caller that might mutate it.
type BigInt struct {
	sign   Sign
	digits []Word
}

// New returns a zero-valued, positive BigInt with n digits (n is clamped
// to at least 1).
func New(n int) *BigInt {
	if n < 1 {
		n = 1
	}
	return &BigInt{sign: Positive, digits: make([]Word, n)}
}

// Zero returns a new BigInt equal to 0.
func Zero() *BigInt { return New(1) }

// One returns a new BigInt equal to 1.
func One() *BigInt {
	z := New(1)
	z.digits[0] = 1
	return z
}

// SetWords initializes z from an externally supplied little-endian digit
// sequence and a sign. Trailing zero digits are retained verbatim — call
// Refine explicitly (or let the next operation normalize it) if a
// canonical form is needed. The receiver's previous contents are
// discarded.
func (z *BigInt) SetWords(words []Word, sign Sign) *BigInt {
	digits := make([]Word, len(words))
	copy(digits, words)
	if len(digits) == 0 {
		digits = []Word{0}
	}
	z.digits = digits
	z.sign = sign
	return z
}

// Set copies the value of x into z.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	digits := make([]Word, len(x.digits))
	copy(digits, x.digits)
	z.digits = digits
	z.sign = x.sign
	return z
}

// Clone returns a fresh, independent copy of x.
func (x *BigInt) Clone() *BigInt {
	return New(1).Set(x)
}

// SetRange sets z to the digit window x.digits[lo:hi] (little-endian,
// so this selects words lo through hi-1), refined. It fails with
// ErrInvalidRange when hi < lo or hi exceeds x's digit count.
func (z *BigInt) SetRange(x *BigInt, lo, hi int) (*BigInt, error) {
	if hi < lo || hi > len(x.digits) || lo < 0 {
		return nil, ErrInvalidRange
	}
	digits := make([]Word, hi-lo)
	copy(digits, x.digits[lo:hi])
	z.digits = digits
	z.sign = Positive
	z.Refine()
	return z, nil
}

// DigitCount returns the number of Words in x's digit sequence (not the
// minimal bit width — see BitLen for that).
func (x *BigInt) DigitCount() int { return len(x.digits) }

// BitLen returns DigitCount(x) * wordBits, the logical capacity of x's
// representation (spec.md's BitLength), not the minimum number of bits
// needed to hold the value.
func (x *BigInt) BitLen() int { return len(x.digits) * wordBits }

// Bit returns the i-th bit of x (0 or 1), i < BitLen(x).
func (x *BigInt) Bit(i int) uint {
	return uint((x.digits[i/wordBits] >> uint(i%wordBits)) & 1)
}

// SignBit reports whether x is negative.
func (x *BigInt) SignBit() Sign { return x.sign }

// Refine drops trailing zero digits (keeping at least one) and enforces
// that zero is always positive (invariant ZS). It mutates z in place and
// returns z for chaining.
func (z *BigInt) Refine() *BigInt {
	z.digits = refine(z.digits)
	if isZeroDigits(z.digits) {
		z.sign = Positive
	}
	return z
}

// refine trims trailing (most-significant) zero words from a raw digit
// slice, keeping at least one digit. Grounded on autobahn_common.c's
// bigint_refine and nat.norm in the teacher.
func refine(digits []Word) []Word {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

func isZeroDigits(digits []Word) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether x is numerically zero.
func (x *BigInt) IsZero() bool {
	return isZeroDigits(x.digits)
}

// IsOne reports whether x is exactly +1: a single digit equal to 1 with
// a Positive sign (a negative one reports false).
func (x *BigInt) IsOne() bool {
	return len(x.digits) == 1 && x.digits[0] == 1 && x.sign == Positive
}

// CmpAbs compares the magnitudes of x and y, ignoring sign: -1, 0, or +1.
func (x *BigInt) CmpAbs(y *BigInt) int {
	xn, yn := len(x.digits), len(y.digits)
	// Trailing zero digits may not yet be refined away; compare the
	// normalized lengths rather than raw slice lengths.
	for xn > 1 && x.digits[xn-1] == 0 {
		xn--
	}
	for yn > 1 && y.digits[yn-1] == 0 {
		yn--
	}
	if xn != yn {
		if xn < yn {
			return -1
		}
		return 1
	}
	for i := xn - 1; i >= 0; i-- {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y with full sign semantics: -1, 0, or +1. Zeros
// compare equal regardless of stored sign (invariant ZS keeps zero's
// sign canonical, but Cmp does not depend on that having been enforced).
func (x *BigInt) Cmp(y *BigInt) int {
	// Invariant ZS: a zero operand's effective sign is always Positive,
	// regardless of what its stored sign happens to be.
	xs, ys := x.sign, y.sign
	if x.IsZero() {
		xs = Positive
	}
	if y.IsZero() {
		ys = Positive
	}

	if xs != ys {
		if xs == Negative {
			return -1
		}
		return 1
	}

	abs := x.CmpAbs(y)
	if xs == Negative {
		return -abs
	}
	return abs
}

// Expand returns z set to x shifted left by k whole words (multiply by
// radix^k): k zero digits are prepended at the low end.
func (z *BigInt) Expand(x *BigInt, k int) *BigInt {
	if k < 0 {
		k = 0
	}
	digits := make([]Word, len(x.digits)+k)
	copy(digits[k:], x.digits)
	z.digits = digits
	z.sign = x.sign
	return z.Refine()
}

// Compress returns z set to x shifted right by k whole words (floor
// divide by radix^k). Compressing by k at or beyond x's digit count
// yields zero, not an error.
func (z *BigInt) Compress(x *BigInt, k int) *BigInt {
	if k <= 0 {
		return z.Set(x)
	}
	if k >= len(x.digits) {
		z.digits = []Word{0}
		z.sign = Positive
		return z
	}
	digits := make([]Word, len(x.digits)-k)
	copy(digits, x.digits[k:])
	z.digits = digits
	z.sign = x.sign
	return z.Refine()
}

// ExpandBit returns z set to x shifted left by one bit, growing the
// digit vector by one word when a new most-significant bit is produced.
func (z *BigInt) ExpandBit(x *BigInt) *BigInt {
	digits := make([]Word, len(x.digits)+1)
	var carry Word
	for i, d := range x.digits {
		digits[i] = (d << 1) | carry
		carry = d >> (wordBits - 1)
	}
	digits[len(x.digits)] = carry
	z.digits = digits
	z.sign = x.sign
	return z.Refine()
}

// CompressBit returns z set to x shifted right by one bit.
func (z *BigInt) CompressBit(x *BigInt) *BigInt {
	digits := make([]Word, len(x.digits))
	var carry Word
	for i := len(x.digits) - 1; i >= 0; i-- {
		d := x.digits[i]
		digits[i] = (d >> 1) | carry
		carry = (d & 1) << (wordBits - 1)
	}
	z.digits = digits
	z.sign = x.sign
	return z.Refine()
}

// nlz returns the number of leading zero bits in w, generically over the
// build's Word width. math/bits only exposes fixed-width
// LeadingZeros{8,32,64} variants; since Word's width is itself a build
// choice here, the count is computed with a width-agnostic loop instead
// of picking one of those functions at the call site.
func nlz(w Word) int {
	n := 0
	for i := wordBits - 1; i >= 0; i-- {
		if (w>>uint(i))&1 != 0 {
			break
		}
		n++
	}
	return n
}
