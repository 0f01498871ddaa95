package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vulpemventures/dexd/pkg/marketmaking"
	"github.com/vulpemventures/dexd/pkg/marketmaking/formula"
	"github.com/vulpemventures/dexd/pkg/mathutil"
)

// LiquidityPool holds the custodied reserves of one canonical asset pair
// along with the outstanding supply of its receipt (LP) token.
//
// TotalLiquidity is zero if and only if both reserves are zero: a freshly
// created pool that was never funded. Draining a pool through withdrawals
// does not delete it, an empty pool is still a valid record.
type LiquidityPool struct {
	Reserves       AssetAmountPair
	TotalLiquidity uint64
	// LpTokenID is fixed at pool creation and never changes.
	LpTokenID string
}

// NewLiquidityPool returns an empty pool for the given canonical pair.
func NewLiquidityPool(pair AssetPair, lpTokenID string) *LiquidityPool {
	return &LiquidityPool{
		Reserves:  NewEmptyAssetAmountPair(pair),
		LpTokenID: lpTokenID,
	}
}

// Pair returns the canonical asset pair of the pool.
func (p *LiquidityPool) Pair() AssetPair {
	return AssetPair{
		AssetX: p.Reserves.AmountX.Asset,
		AssetY: p.Reserves.AmountY.Asset,
	}
}

// IsFunded returns whether any receipt tokens are in circulation.
func (p *LiquidityPool) IsFunded() bool {
	return p.TotalLiquidity > 0
}

// MintableLiquidity returns the amount of receipt tokens to mint for the
// given provision. On the first deposit it is the integer square root of the
// product of the two amounts, afterwards the worse of the two exchange rates
// implied by the current reserves: any ratio mismatch is forfeited to the
// pool instead of being credited to the depositor.
func (p *LiquidityPool) MintableLiquidity(
	provision AssetAmountPair,
) (uint64, error) {
	addedX, addedY := provision.AmountX.Amount, provision.AmountY.Amount

	if !p.IsFunded() {
		product, err := mathutil.Mul(addedX, addedY)
		if err != nil {
			return 0, ErrArithmetic
		}
		return mathutil.Sqrt(product), nil
	}

	mintForX, err := mulDiv(addedX, p.TotalLiquidity, p.Reserves.AmountX.Amount)
	if err != nil {
		return 0, err
	}
	mintForY, err := mulDiv(addedY, p.TotalLiquidity, p.Reserves.AmountY.Amount)
	if err != nil {
		return 0, err
	}

	if mintForY < mintForX {
		return mintForY, nil
	}
	return mintForX, nil
}

// CheckImmediateArbitrage verifies that the provision conforms to the
// current reserve ratio via cross-multiplication, so no division rounding is
// involved. The check only applies while both reserves are non-zero.
func (p *LiquidityPool) CheckImmediateArbitrage(
	provision AssetAmountPair,
) error {
	reserveX, reserveY := p.Reserves.AmountX.Amount, p.Reserves.AmountY.Amount
	if reserveX == 0 || reserveY == 0 {
		return nil
	}

	crossX, err := mathutil.Mul(reserveX, provision.AmountX.Amount)
	if err != nil {
		return ErrArithmetic
	}
	crossY, err := mathutil.Mul(reserveY, provision.AmountY.Amount)
	if err != nil {
		return ErrArithmetic
	}
	if crossX != crossY {
		return ErrImmediateArbitrage
	}
	return nil
}

// WithdrawableAmounts returns the underlying amounts released by burning the
// given number of receipt tokens, ie. the proportional claim on both
// reserves floored at every division. Burning a dust-sized share that
// resolves to zero on either side is rejected rather than silently no-opped.
func (p *LiquidityPool) WithdrawableAmounts(
	lpTokens uint64,
) (AssetAmountPair, error) {
	amountX, err := mulDiv(lpTokens, p.Reserves.AmountX.Amount, p.TotalLiquidity)
	if err != nil {
		return AssetAmountPair{}, err
	}
	amountY, err := mulDiv(lpTokens, p.Reserves.AmountY.Amount, p.TotalLiquidity)
	if err != nil {
		return AssetAmountPair{}, err
	}

	if amountX == 0 || amountY == 0 {
		return AssetAmountPair{}, ErrInsufficientLiquidityProvided
	}

	return AssetAmountPair{
		AmountX: AssetAmount{Asset: p.Reserves.AmountX.Asset, Amount: amountX},
		AmountY: AssetAmount{Asset: p.Reserves.AmountY.Asset, Amount: amountY},
	}, nil
}

// Deposit adds the provision to the reserves and the minted tokens to the
// circulating supply.
func (p *LiquidityPool) Deposit(
	provision AssetAmountPair, lpTokens uint64,
) error {
	newReserveX, err := mathutil.Add(
		p.Reserves.AmountX.Amount, provision.AmountX.Amount,
	)
	if err != nil {
		return ErrArithmetic
	}
	newReserveY, err := mathutil.Add(
		p.Reserves.AmountY.Amount, provision.AmountY.Amount,
	)
	if err != nil {
		return ErrArithmetic
	}
	newLiquidity, err := mathutil.Add(p.TotalLiquidity, lpTokens)
	if err != nil {
		return ErrArithmetic
	}

	p.Reserves.AmountX.Amount = newReserveX
	p.Reserves.AmountY.Amount = newReserveY
	p.TotalLiquidity = newLiquidity
	return nil
}

// Withdraw removes the released amounts from the reserves and the burned
// tokens from the circulating supply, clamping at zero.
func (p *LiquidityPool) Withdraw(amounts AssetAmountPair, lpTokens uint64) {
	p.Reserves.AmountX.Amount = mathutil.SaturatingSub(
		p.Reserves.AmountX.Amount, amounts.AmountX.Amount,
	)
	p.Reserves.AmountY.Amount = mathutil.SaturatingSub(
		p.Reserves.AmountY.Amount, amounts.AmountY.Amount,
	)
	p.TotalLiquidity = mathutil.SaturatingSub(p.TotalLiquidity, lpTokens)
}

// SwapLegs returns the input-side and output-side reserves of a swap giving
// the specified asset. An asset matching neither reserve resolves to the Y
// leg as input.
func (p *LiquidityPool) SwapLegs(giveAsset string) (AssetAmount, AssetAmount) {
	if p.Reserves.AmountX.Asset == giveAsset {
		return p.Reserves.AmountX, p.Reserves.AmountY
	}
	return p.Reserves.AmountY, p.Reserves.AmountX
}

// OutGivenIn returns the output amount released for the given input amount,
// with the fee charged on the input leg.
func (p *LiquidityPool) OutGivenIn(
	give AssetAmount, feeBps uint64,
) (AssetAmount, error) {
	reserveIn, reserveOut := p.SwapLegs(give.Asset)
	amountOut, err := p.strategy().OutGivenIn(formula.ConstantProductOpts{
		BalanceIn:  reserveIn.Amount,
		BalanceOut: reserveOut.Amount,
		Fee:        feeBps,
	}, give.Amount)
	if err != nil {
		return AssetAmount{}, ErrArithmetic
	}
	return AssetAmount{Asset: reserveOut.Asset, Amount: amountOut}, nil
}

// InGivenOut returns the input amount required for the given output amount,
// grossed up by the fee on the input leg.
func (p *LiquidityPool) InGivenOut(
	take AssetAmount, feeBps uint64,
) (AssetAmount, error) {
	reserveOut, reserveIn := p.SwapLegs(take.Asset)
	amountIn, err := p.strategy().InGivenOut(formula.ConstantProductOpts{
		BalanceIn:  reserveIn.Amount,
		BalanceOut: reserveOut.Amount,
		Fee:        feeBps,
	}, take.Amount)
	if err != nil {
		return AssetAmount{}, ErrArithmetic
	}
	return AssetAmount{Asset: reserveIn.Asset, Amount: amountIn}, nil
}

// ApplySwap moves the reserves by the nominal swapped amounts: the input leg
// grows by the full given amount, fee included, so the fee accrues inside
// the pool to the benefit of liquidity providers.
func (p *LiquidityPool) ApplySwap(give, take AssetAmount) error {
	reserveIn, reserveOut := p.SwapLegs(give.Asset)

	newReserveIn, err := mathutil.Add(reserveIn.Amount, give.Amount)
	if err != nil {
		return ErrArithmetic
	}
	newReserveOut, err := mathutil.Sub(reserveOut.Amount, take.Amount)
	if err != nil {
		return ErrArithmetic
	}

	if p.Reserves.AmountX.Asset == give.Asset {
		p.Reserves.AmountX.Amount = newReserveIn
		p.Reserves.AmountY.Amount = newReserveOut
	} else {
		p.Reserves.AmountY.Amount = newReserveIn
		p.Reserves.AmountX.Amount = newReserveOut
	}
	return nil
}

// SpotPrice returns the price of the given asset as the ratio of its reserve
// over the other one, computed purely from current reserves.
func (p *LiquidityPool) SpotPrice(asset string) (decimal.Decimal, error) {
	reserveThis, reserveOther := p.SwapLegs(asset)
	price, err := p.strategy().SpotPrice(formula.ConstantProductOpts{
		BalanceIn:  reserveThis.Amount,
		BalanceOut: reserveOther.Amount,
	})
	if err != nil {
		return decimal.Zero, ErrArithmetic
	}
	return price, nil
}

func (p *LiquidityPool) strategy() marketmaking.MakingFormula {
	return marketmaking.NewConstantProductFormula()
}

func mulDiv(x, y, z uint64) (uint64, error) {
	product, err := mathutil.Mul(x, y)
	if err != nil {
		return 0, ErrArithmetic
	}
	quotient, err := mathutil.Div(product, z)
	if err != nil {
		return 0, ErrArithmetic
	}
	return quotient, nil
}
