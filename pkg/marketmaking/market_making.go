package marketmaking

import (
	"github.com/shopspring/decimal"
	"github.com/vulpemventures/dexd/pkg/marketmaking/formula"
)

// MakingFormula defines the interface for deriving swap amounts and the spot
// price of a pool from its current reserves.
type MakingFormula interface {
	// OutGivenIn returns the output amount released for a given input amount.
	OutGivenIn(opts formula.ConstantProductOpts, amountIn uint64) (uint64, error)
	// InGivenOut returns the input amount required for a given output amount.
	InGivenOut(opts formula.ConstantProductOpts, amountOut uint64) (uint64, error)
	// SpotPrice returns the spot price of the input-side asset derived from
	// the current reserves.
	SpotPrice(opts formula.ConstantProductOpts) (decimal.Decimal, error)
}

// NewConstantProductFormula returns the MakingFormula of a constant-product
// pool with the fee charged on the input leg.
func NewConstantProductFormula() MakingFormula {
	return formula.ConstantProduct{}
}
