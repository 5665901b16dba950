package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModExpRejectsNegativeExponent(t *testing.T) {
	_, err := ModExp(mustHex(t, "5", Positive), mustHex(t, "1", Negative), mustHex(t, "7", Positive))
	require.ErrorIs(t, err, ErrReductionDomain)
}

func TestModExpZeroExponentIsOne(t *testing.T) {
	base := mustHex(t, "123456789abcdef", Positive)
	modulus := mustHex(t, "fedcba98", Positive)
	got, err := ModExp(base, Zero(), modulus)
	require.NoError(t, err)
	require.True(t, got.IsOne())
}

// TestModExpScenarioS5 checks property 9: both ladders agree with each
// other and with an external oracle, for the spec's S5 operands.
func TestModExpScenarioS5(t *testing.T) {
	const modulusHex = "ac077f929024783a922982b34ae144dde21d1903b68cb1dc43b296274c0b21bb"

	base := mustHex(t, scenarioX, Positive)
	exp := mustHex(t, scenarioY, Positive)
	modulus := mustHex(t, modulusHex, Positive)

	leftToRight, err := ModExpSquareMultiply(base, exp, modulus)
	require.NoError(t, err)
	ladder, err := ModExpMontgomeryLadder(base, exp, modulus)
	require.NoError(t, err)
	require.Equal(t, 0, leftToRight.Cmp(ladder))

	want := new(big.Int).Exp(hexToBig(t, scenarioX), hexToBig(t, scenarioY), hexToBig(t, modulusHex))
	require.Equal(t, want.Text(16), leftToRight.HexString())
}

func TestModExpAgainstMathBigSmallCases(t *testing.T) {
	cases := []struct{ base, exp, mod string }{
		{"2", "10", "3e8"},
		{"ff", "101", "10001"},
		{"123456789abcdef", "fedcba98", "1000000000000001"},
	}
	for _, c := range cases {
		base := mustHex(t, c.base, Positive)
		exp := mustHex(t, c.exp, Positive)
		modulus := mustHex(t, c.mod, Positive)

		got, err := ModExp(base, exp, modulus)
		require.NoError(t, err)

		want := new(big.Int).Exp(hexToBig(t, c.base), hexToBig(t, c.exp), hexToBig(t, c.mod))
		require.Equal(t, want.Text(16), got.HexString(), "base=%s exp=%s mod=%s", c.base, c.exp, c.mod)
	}
}
