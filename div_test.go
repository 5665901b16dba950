package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivZeroDivisorIsDomainError(t *testing.T) {
	_, _, err := Div(mustHex(t, "10", Positive), Zero())
	require.ErrorIs(t, err, ErrDivisionDomain)
}

func TestDivNegativeOperandIsDomainError(t *testing.T) {
	_, _, err := Div(mustHex(t, "10", Negative), mustHex(t, "3", Positive))
	require.ErrorIs(t, err, ErrDivisionDomain)

	_, _, err = Div(mustHex(t, "10", Positive), mustHex(t, "3", Negative))
	require.ErrorIs(t, err, ErrDivisionDomain)
}

// TestDivScenarioS6 is the boundary scenario: div(0, y) = (0, 0).
func TestDivScenarioS6(t *testing.T) {
	y := mustHex(t, "abcd1234", Positive)
	q, r, err := Div(Zero(), y)
	require.NoError(t, err)
	require.True(t, q.IsZero())
	require.True(t, r.IsZero())
}

func TestDivDividendSmallerThanDivisor(t *testing.T) {
	x := mustHex(t, "5", Positive)
	y := mustHex(t, "abcd", Positive)
	q, r, err := Div(x, y)
	require.NoError(t, err)
	require.True(t, q.IsZero())
	require.Equal(t, 0, r.Cmp(x))
}

func TestDivByOne(t *testing.T) {
	x := mustHex(t, scenarioX, Positive)
	q, r, err := Div(x, One())
	require.NoError(t, err)
	require.Equal(t, 0, q.Cmp(x))
	require.True(t, r.IsZero())
}

// TestDivScenarioS4 checks the word-long division of the S1/S4 operands
// (spec.md §8) against the division identity and an external oracle.
func TestDivScenarioS4(t *testing.T) {
	x := mustHex(t, scenarioX, Positive)
	y := mustHex(t, scenarioY, Positive)

	q, r, err := DivWordLong(x, y)
	require.NoError(t, err)

	wantQ, wantR := new(big.Int).QuoRem(hexToBig(t, scenarioX), hexToBig(t, scenarioY), new(big.Int))
	require.Equal(t, wantQ.Text(16), q.HexString())
	require.Equal(t, wantR.Text(16), r.HexString())
	require.True(t, r.CmpAbs(y) < 0)

	check := New(1).Add(New(1).Mul(q, y), r)
	require.Equal(t, 0, check.Cmp(x))
}

func TestDivBinaryLongAndWordLongAgree(t *testing.T) {
	x := mustHex(t, scenarioX, Positive)
	y := mustHex(t, scenarioY, Positive)

	qBin, rBin, err := DivBinaryLong(x, y)
	require.NoError(t, err)
	qWord, rWord, err := DivWordLong(x, y)
	require.NoError(t, err)

	require.Equal(t, 0, qBin.Cmp(qWord))
	require.Equal(t, 0, rBin.Cmp(rWord))
}

func TestDivNaiveAgreesForSmallOperands(t *testing.T) {
	x := mustHex(t, "1a2b3c4d5e6f", Positive)
	y := mustHex(t, "9fe1", Positive)

	qNaive, rNaive, err := DivNaive(x, y)
	require.NoError(t, err)
	qWord, rWord, err := DivWordLong(x, y)
	require.NoError(t, err)

	require.Equal(t, 0, qNaive.Cmp(qWord))
	require.Equal(t, 0, rNaive.Cmp(rWord))
}

func TestDivIdentityAgainstMathBig(t *testing.T) {
	cases := []struct{ x, y string }{
		{"123456789abcdef0123456789abcdef0", "fedcba98"},
		{"ffffffffffffffffffffffffffffffffffffffff", "10001"},
		{scenarioX, scenarioY},
	}
	for _, c := range cases {
		x := mustHex(t, c.x, Positive)
		y := mustHex(t, c.y, Positive)
		q, r, err := Div(x, y)
		require.NoError(t, err)

		wantQ, wantR := new(big.Int).QuoRem(hexToBig(t, c.x), hexToBig(t, c.y), new(big.Int))
		require.Equal(t, wantQ.Text(16), q.HexString())
		require.Equal(t, wantR.Text(16), r.HexString())

		// Division identity (property 7): x = q*y + r, 0 <= r < y.
		roundTrip := New(1).Add(New(1).Mul(q, y), r)
		require.Equal(t, 0, roundTrip.Cmp(x))
		require.True(t, r.CmpAbs(y) < 0)
	}
}
