package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/dexd/pkg/marketmaking/formula"
	"github.com/vulpemventures/dexd/pkg/mathutil"
)

const onePercent = 100 // basis points

func TestOutGivenIn(t *testing.T) {
	t.Parallel()

	cp := formula.ConstantProduct{}

	tests := []struct {
		name        string
		opts        formula.ConstantProductOpts
		amountIn    uint64
		expectedOut uint64
	}{
		{
			name: "balanced_reserves_one_percent_fee",
			opts: formula.ConstantProductOpts{
				BalanceIn:  10_000_000,
				BalanceOut: 10_000_000,
				Fee:        onePercent,
			},
			// eff = 10_000 - 100 = 9_900
			// out = floor(10_000_000 * 9_900 / 10_009_900)
			amountIn:    10_000,
			expectedOut: 9_890,
		},
		{
			name: "no_fee",
			opts: formula.ConstantProductOpts{
				BalanceIn:  10_000_000,
				BalanceOut: 10_000_000,
			},
			amountIn:    10_000,
			expectedOut: 9_990,
		},
		{
			name: "unbalanced_reserves",
			opts: formula.ConstantProductOpts{
				BalanceIn:  20_000_000,
				BalanceOut: 10_000_000,
				Fee:        onePercent,
			},
			amountIn:    10_000,
			expectedOut: 4_947,
		},
		{
			name: "dust_input_floors_to_zero",
			opts: formula.ConstantProductOpts{
				BalanceIn:  10_000_000,
				BalanceOut: 10_000_000,
				Fee:        onePercent,
			},
			amountIn:    1,
			expectedOut: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := cp.OutGivenIn(tt.opts, tt.amountIn)
			require.NoError(t, err)
			require.Equal(t, tt.expectedOut, out)
		})
	}
}

func TestInGivenOut(t *testing.T) {
	t.Parallel()

	cp := formula.ConstantProduct{}
	opts := formula.ConstantProductOpts{
		BalanceIn:  10_000_000,
		BalanceOut: 10_000_000,
		Fee:        onePercent,
	}

	// raw = floor(10_000_000 * 9_890 / 9_990_110) = 9_899
	// in  = 9_899 + floor(9_899 * 100 / 10_000) = 9_997
	in, err := cp.InGivenOut(opts, 9_890)
	require.NoError(t, err)
	require.Equal(t, uint64(9_997), in)
}

func TestInGivenOutDrainingReserveFails(t *testing.T) {
	t.Parallel()

	cp := formula.ConstantProduct{}
	opts := formula.ConstantProductOpts{
		BalanceIn:  10_000_000,
		BalanceOut: 10_000_000,
		Fee:        onePercent,
	}

	// Asking for the whole output reserve makes the denominator zero.
	_, err := cp.InGivenOut(opts, 10_000_000)
	require.ErrorIs(t, err, mathutil.ErrDivisionByZero)

	// More than the reserve underflows the subtraction.
	_, err = cp.InGivenOut(opts, 10_000_001)
	require.ErrorIs(t, err, mathutil.ErrUnderflow)
}

func TestRoundTripNeverProfits(t *testing.T) {
	t.Parallel()

	cp := formula.ConstantProduct{}
	balanceX, balanceY := uint64(10_000_000), uint64(10_000_000)
	amount := uint64(10_000)

	for i := 0; i < 10; i++ {
		forward, err := cp.OutGivenIn(formula.ConstantProductOpts{
			BalanceIn:  balanceX,
			BalanceOut: balanceY,
			Fee:        onePercent,
		}, amount)
		require.NoError(t, err)

		balanceX += amount
		balanceY -= forward

		backward, err := cp.OutGivenIn(formula.ConstantProductOpts{
			BalanceIn:  balanceY,
			BalanceOut: balanceX,
			Fee:        onePercent,
		}, forward)
		require.NoError(t, err)

		balanceY += forward
		balanceX -= backward

		// The fee makes any round trip strictly lossy.
		require.Less(t, backward, amount)
		amount = backward
	}
}

func TestSpotPrice(t *testing.T) {
	t.Parallel()

	cp := formula.ConstantProduct{}

	price, err := cp.SpotPrice(formula.ConstantProductOpts{
		BalanceIn:  20_000_000,
		BalanceOut: 10_000_000,
	})
	require.NoError(t, err)
	require.Equal(t, "2", price.String())

	_, err = cp.SpotPrice(formula.ConstantProductOpts{
		BalanceIn:  20_000_000,
		BalanceOut: 0,
	})
	require.ErrorIs(t, err, formula.ErrBalanceTooLow)
}
