package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU128AddSub(t *testing.T) {
	a := U128{Lo: ^uint64(0), Hi: 0}
	b := U128FromUint64(1)
	sum := a.Add(b)
	require.Equal(t, U128{Lo: 0, Hi: 1}, sum)
	require.Equal(t, a, sum.Sub(b))
}

func TestU128ShiftRoundTrip(t *testing.T) {
	a := U128{Lo: 0x1, Hi: 0}
	shifted := a.Lsh(70)
	require.Equal(t, U128{Lo: 0, Hi: 1 << 6}, shifted)
	require.Equal(t, a, shifted.Rsh(70))
}

func TestU128MulAndWideningMul(t *testing.T) {
	a := U128FromUint64(1_000_000_000_000)
	b := U128FromUint64(1_000_000_000_000)
	wide := a.WideningMul(b)
	require.True(t, wide.FitsU128())
	require.Equal(t, "1000000000000000000000000", wide.Lo128().String())
}

func TestU128QuoRem(t *testing.T) {
	a := U128FromUint64(1_000_000_007)
	b := U128FromUint64(97)
	q, r := a.QuoRem(b)
	require.Equal(t, a, q.Mul(b).Add(r))
	require.True(t, r.Cmp(b) < 0)
}

func TestU128QuoRemLargeDivisor(t *testing.T) {
	a := U128{Lo: 0, Hi: 1} // 2^64
	b := U128{Lo: 3, Hi: 0}
	q, r := a.QuoRem(b)
	require.Equal(t, a, q.Mul(b).Add(r))
}

func TestU128DecimalDigits(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
		{9999999999999999, 16},
	}
	for _, c := range cases {
		got := U128FromUint64(c.v).DecimalDigits()
		require.Equal(t, c.want, got, "value %d", c.v)
	}
}

func TestU256MulAndQuoRem(t *testing.T) {
	a := U256FromUint64(123456789)
	b := U256FromUint64(987654321)
	prod := a.Mul(b)
	q, r := prod.QuoRem(b)
	require.True(t, r.IsZero())
	require.Equal(t, a, q)
}

func TestU256WideningNoOverflow(t *testing.T) {
	maxP34 := U128{Lo: 0x7FFFFFFFFFFFFFFF, Hi: 0x7FFFFFFFFFFFFFFF}
	wide := maxP34.WideningMul(maxP34)
	require.False(t, wide.IsZero())
}

func TestU256ShiftRoundTrip(t *testing.T) {
	a := U256FromUint64(1)
	shifted := a.Lsh(200)
	require.Equal(t, a, shifted.Rsh(200))
}
