// Package formula implements the constant-product swap formulas on checked
// integer arithmetic. Amounts are floored at every division so rounding dust
// always stays in the pool.
package formula

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vulpemventures/dexd/pkg/mathutil"
)

// FeeDivisor is the divisor of the fee expressed in basis points,
// ie. 100 bps = 1%.
const FeeDivisor = 10000

var (
	// ErrInvalidFee ...
	ErrInvalidFee = errors.New("fee must be lower than 10000 basis points")
	// ErrBalanceTooLow ...
	ErrBalanceTooLow = errors.New("reserve balance amount is too low")
)

// ConstantProductOpts defines the reserves and fee needed to calculate swap
// amounts and the spot price.
type ConstantProductOpts struct {
	BalanceIn  uint64
	BalanceOut uint64
	// Fee on the input amount in basis points.
	Fee uint64
}

// ConstantProduct is the x*y=k market making formula with the fee always
// charged on the input leg.
type ConstantProduct struct{}

// OutGivenIn returns the output amount released for the given input amount:
//
//	eff = in - floor(in * fee / 10000)
//	out = floor(balanceOut * eff / (balanceIn + eff))
func (ConstantProduct) OutGivenIn(
	opts ConstantProductOpts, amountIn uint64,
) (uint64, error) {
	amountInEff, err := deductFee(amountIn, opts.Fee)
	if err != nil {
		return 0, err
	}

	numerator, err := mathutil.Mul(opts.BalanceOut, amountInEff)
	if err != nil {
		return 0, err
	}
	denominator, err := mathutil.Add(opts.BalanceIn, amountInEff)
	if err != nil {
		return 0, err
	}
	return mathutil.Div(numerator, denominator)
}

// InGivenOut returns the input amount required for the given output amount,
// grossed up by the fee so that the fee is always paid on the input leg:
//
//	raw = floor(balanceIn * out / (balanceOut - out))
//	in  = raw + floor(raw * fee / 10000)
func (ConstantProduct) InGivenOut(
	opts ConstantProductOpts, amountOut uint64,
) (uint64, error) {
	if opts.Fee >= FeeDivisor {
		return 0, ErrInvalidFee
	}

	numerator, err := mathutil.Mul(opts.BalanceIn, amountOut)
	if err != nil {
		return 0, err
	}
	denominator, err := mathutil.Sub(opts.BalanceOut, amountOut)
	if err != nil {
		return 0, err
	}
	rawIn, err := mathutil.Div(numerator, denominator)
	if err != nil {
		return 0, err
	}

	fee, err := feeAmount(rawIn, opts.Fee)
	if err != nil {
		return 0, err
	}
	return mathutil.Add(rawIn, fee)
}

// SpotPrice returns the spot price of the input-side asset as the ratio
// balanceIn / balanceOut of the current reserves.
func (ConstantProduct) SpotPrice(
	opts ConstantProductOpts,
) (decimal.Decimal, error) {
	if opts.BalanceOut == 0 {
		return decimal.Zero, ErrBalanceTooLow
	}
	return mathutil.Ratio(opts.BalanceIn, opts.BalanceOut)
}

func feeAmount(amount, feeBps uint64) (uint64, error) {
	if feeBps >= FeeDivisor {
		return 0, ErrInvalidFee
	}
	total, err := mathutil.Mul(amount, feeBps)
	if err != nil {
		return 0, err
	}
	return mathutil.Div(total, FeeDivisor)
}

func deductFee(amount, feeBps uint64) (uint64, error) {
	fee, err := feeAmount(amount, feeBps)
	if err != nil {
		return 0, err
	}
	return mathutil.Sub(amount, fee)
}
