package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/dexd/pkg/mathutil"
)

func TestCheckedAdd(t *testing.T) {
	t.Parallel()

	sum, err := mathutil.Add(10, 32)
	require.NoError(t, err)
	require.Equal(t, uint64(42), sum)

	_, err = mathutil.Add(math.MaxUint64, 1)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestCheckedSub(t *testing.T) {
	t.Parallel()

	diff, err := mathutil.Sub(42, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(32), diff)

	_, err = mathutil.Sub(10, 42)
	require.ErrorIs(t, err, mathutil.ErrUnderflow)

	require.Equal(t, uint64(0), mathutil.SaturatingSub(10, 42))
	require.Equal(t, uint64(32), mathutil.SaturatingSub(42, 10))
}

func TestCheckedMul(t *testing.T) {
	t.Parallel()

	prod, err := mathutil.Mul(10_000_000, 10_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000_000_000), prod)

	_, err = mathutil.Mul(math.MaxUint64, 2)
	require.ErrorIs(t, err, mathutil.ErrOverflow)
}

func TestCheckedDiv(t *testing.T) {
	t.Parallel()

	quot, err := mathutil.Div(7, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), quot)

	_, err = mathutil.Div(7, 0)
	require.ErrorIs(t, err, mathutil.ErrDivisionByZero)
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       uint64
		expected uint64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{99, 9},
		{100, 10},
		{100_000_000_000_000, 10_000_000},
		{math.MaxUint64, 4294967295},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, mathutil.Sqrt(tt.in))
	}
}

func TestRatio(t *testing.T) {
	t.Parallel()

	ratio, err := mathutil.Ratio(20_000_000, 10_000_000)
	require.NoError(t, err)
	require.Equal(t, "2", ratio.String())

	_, err = mathutil.Ratio(1, 0)
	require.ErrorIs(t, err, mathutil.ErrDivisionByZero)
}
