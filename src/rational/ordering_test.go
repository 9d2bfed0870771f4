package rational

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randNumerator spreads values across the full int64 range but lands on
// small magnitudes half the time, so the quotient tie-break paths get
// exercised as often as the wide ones.
func randNumerator(rng *rand.Rand) int64 {
	n := rng.Uint64()
	if rng.Intn(2) == 1 {
		n %= 64
	}
	v := int64(n)
	if rng.Intn(2) == 1 && v != math.MinInt64 {
		v = -v
	}
	return v
}

// Comparisons against integers must agree with exact rational arithmetic
// even when numerators sit near the int64 bounds, where forming v*D would
// overflow.
func TestOrderingAgainstIntOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	den := big.NewRat(1, 12)

	for i := 0; i < 20000; i++ {
		n := randNumerator(rng)
		v := randNumerator(rng)

		r := fromNumerator[int64, twelfths](n)
		exact := new(big.Rat).SetInt64(n)
		exact.Mul(exact, den)
		cmp := exact.Cmp(new(big.Rat).SetInt64(v))

		require.Equal(t, cmp < 0, r.LessInt(v), "%d/12 < %d", n, v)
		require.Equal(t, cmp > 0, r.GreaterInt(v), "%d/12 > %d", n, v)
		require.Equal(t, cmp <= 0, r.LessEqInt(v), "%d/12 <= %d", n, v)
		require.Equal(t, cmp >= 0, r.GreaterEqInt(v), "%d/12 >= %d", n, v)
	}
}

// Same-instantiation comparison is a total order consistent with the true
// rational values: both numerators share D, so the oracle is plain integer
// order.
func TestOrderingOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for i := 0; i < 20000; i++ {
		a := fromNumerator[int64, twelfths](randNumerator(rng))
		b := fromNumerator[int64, twelfths](randNumerator(rng))

		cmp := new(big.Rat).SetFrac64(a.Numerator(), 12).Cmp(new(big.Rat).SetFrac64(b.Numerator(), 12))
		require.Equal(t, cmp < 0, a.Less(b))
		require.Equal(t, cmp > 0, a.Greater(b))
		require.Equal(t, cmp <= 0, a.LessEq(b))
		require.Equal(t, cmp >= 0, a.GreaterEq(b))
		require.Equal(t, cmp == 0, a.Equal(b))
	}
}

// A guarded multiply is exact iff 12 divides the numerator product, and an
// exact result matches big.Rat.
func TestMulOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	twelve := big.NewInt(12)

	for i := 0; i < 20000; i++ {
		an := rng.Int63n(1<<20) - 1<<19
		bn := rng.Int63n(1<<20) - 1<<19
		a := fromNumerator[int64, twelfths](an)
		b := fromNumerator[int64, twelfths](bn)

		product := new(big.Int).Mul(big.NewInt(an), big.NewInt(bn))
		exactlyDivisible := new(big.Int).Mod(product, twelve).Sign() == 0

		got, err := a.Mul(b)
		if !exactlyDivisible {
			var inexact *InexactError[int64]
			require.ErrorAs(t, err, &inexact, "%s * %s", a, b)
			require.Greater(t, inexact.MinimumFixFactor(), int64(1))
			continue
		}
		require.NoError(t, err, "%s * %s", a, b)

		want := new(big.Rat).SetFrac(product, big.NewInt(12*12))
		require.Zero(t, want.Cmp(new(big.Rat).SetFrac64(got.Numerator(), 12)), "%s * %s", a, b)
	}
}
