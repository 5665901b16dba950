package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioX and scenarioY are the S1/S4/S5 operands (spec.md §8).
const (
	scenarioX = "c08d7139ec42a07d368e3fdfcc11a53fa2297928fef126d0ae89d501bd16022e"
	scenarioY = "d07acf4d5c297f7002fa85004dce801d40c8cdc1bbe5071e4"
)

func TestAddScenarioS1(t *testing.T) {
	x := mustHex(t, scenarioX, Positive)
	y := mustHex(t, scenarioY, Positive)
	sum := New(1).Add(x, y)
	want := new(big.Int).Add(hexToBig(t, scenarioX), hexToBig(t, scenarioY))
	require.Equal(t, want.Text(16), sum.HexString())
}

func TestSubScenarioS2(t *testing.T) {
	x := mustHex(t, scenarioX, Positive)
	y := mustHex(t, scenarioY, Positive)
	diff := New(1).Sub(x, y)
	want := new(big.Int).Sub(hexToBig(t, scenarioX), hexToBig(t, scenarioY))
	require.Equal(t, want.Text(16), diff.HexString())
}

func TestAddIdentityAndInverse(t *testing.T) {
	x := mustHex(t, "9f8e7d6c5b4a3928", Positive)
	zero := Zero()
	require.Equal(t, 0, New(1).Add(x, zero).Cmp(x))

	negX := New(1).Set(x)
	negX.sign = Negative
	require.True(t, New(1).Add(x, negX).IsZero())
	require.True(t, New(1).Sub(x, x).IsZero())
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	x := mustHex(t, "aabbccdd", Positive)
	y := mustHex(t, "1122334455", Negative)
	z := mustHex(t, "ff00ff00ff", Positive)

	require.Equal(t, 0, New(1).Add(x, y).Cmp(New(1).Add(y, x)))

	left := New(1).Add(New(1).Add(x, y), z)
	right := New(1).Add(x, New(1).Add(y, z))
	require.Equal(t, 0, left.Cmp(right))
}

func TestSubAddRoundTrip(t *testing.T) {
	x := mustHex(t, "112233445566778899aabbccddeeff0011", Positive)
	y := mustHex(t, "a1b2c3d4e5f60718", Negative)
	sum := New(1).Add(x, y)
	back := New(1).Sub(sum, y)
	require.Equal(t, 0, back.Cmp(x))
}

func TestAddAliasingSafety(t *testing.T) {
	x := mustHex(t, "deadbeefcafebabe", Positive)
	y := mustHex(t, "0102030405060708", Positive)
	expected := new(big.Int)
	expected.Add(hexToBig(t, "deadbeefcafebabe"), hexToBig(t, "0102030405060708"))

	x.Add(x, y)
	require.Equal(t, expected.Text(16), x.HexString())
}

func TestAddAgainstMathBig(t *testing.T) {
	cases := []struct{ x, y string }{
		{"0", "0"},
		{"1", "ffffffff"},
		{"123456789abcdef0123456789abcdef", "fedcba9876543210"},
		{"ffffffffffffffffffffffffffffffff", "1"},
	}
	for _, c := range cases {
		x := mustHex(t, c.x, Positive)
		y := mustHex(t, c.y, Positive)
		got := New(1).Add(x, y)
		want := new(big.Int).Add(hexToBig(t, c.x), hexToBig(t, c.y))
		require.Equal(t, want.Text(16), got.HexString())
	}
}

func hexToBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return v
}
