package bigint

// BarrettReducer precomputes the constant Barrett reduction needs so that
// repeated reductions modulo the same modulus (the common case in modular
// exponentiation) only pay for one division overall.
//
// Grounded on autobahn_reduction.c's bigint_reduction_barrett_precompute /
// bigint_reduction_barrett_reduce.
type BarrettReducer struct {
	modulus *BigInt
	n       int     // digit_count(modulus)
	mu      *BigInt // floor(B^(2n) / modulus)
}

// NewBarrettReducer precomputes mu = floor(radix^(2n)/modulus) for a
// positive modulus with n = DigitCount(modulus). It fails with
// ErrReductionDomain if modulus is not strictly positive.
func NewBarrettReducer(modulus *BigInt) (*BarrettReducer, error) {
	if modulus.IsZero() || modulus.sign == Negative {
		return nil, ErrReductionDomain
	}
	n := modulus.DigitCount()
	bTo2n := New(1).Expand(One(), 2*n)
	mu, _, err := DivWordLong(bTo2n, modulus)
	if err != nil {
		return nil, err
	}
	return &BarrettReducer{modulus: modulus.Clone(), n: n, mu: mu}, nil
}

// Reduce computes a mod modulus for a non-negative a with
// DigitCount(a) <= 2n, failing with ErrReductionDomain otherwise
// (spec.md §4.5's precondition on Barrett's applicable range).
//
// Q = ((a >> (n-1) words) * mu) >> (n+1) words; R = a - Q*modulus,
// corrected by at most a couple of subtractions/additions since Q is
// only ever off by a small bounded amount from the true quotient.
func (r *BarrettReducer) Reduce(a *BigInt) (*BigInt, error) {
	if a.sign == Negative {
		return nil, ErrReductionDomain
	}
	if a.DigitCount() > 2*r.n {
		return nil, ErrReductionDomain
	}

	shifted := New(1).Compress(a, r.n-1)
	q := New(1).Mul(shifted, r.mu)
	q = New(1).Compress(q, r.n+1)

	qTimesN := New(1).Mul(q, r.modulus)
	rem := New(1).Sub(a, qTimesN)

	for rem.sign == Negative {
		rem = New(1).Add(rem, r.modulus)
	}
	for rem.CmpAbs(r.modulus) >= 0 {
		rem = New(1).Sub(rem, r.modulus)
	}
	return rem, nil
}

// Modulus returns the reducer's modulus.
func (r *BarrettReducer) Modulus() *BigInt { return r.modulus }
