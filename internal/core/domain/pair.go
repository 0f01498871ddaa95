package domain

// AssetAmount is an amount of one identified fungible asset.
type AssetAmount struct {
	Asset  string
	Amount uint64
}

// AssetPair identifies a liquidity pool with a canonical, order-independent
// pair of asset ids: AssetX is always the lower of the two under string
// ordering, so (A, B) and (B, A) resolve to the same pair.
type AssetPair struct {
	AssetX string
	AssetY string
}

// NewAssetPair returns the canonical pair of the two given assets, or
// ErrInvalidPair if they coincide.
func NewAssetPair(assetA, assetB string) (AssetPair, error) {
	if assetA == assetB {
		return AssetPair{}, ErrInvalidPair
	}
	if assetB < assetA {
		assetA, assetB = assetB, assetA
	}
	return AssetPair{AssetX: assetA, AssetY: assetB}, nil
}

// String returns the pair in the form "x/y", usable as storage key.
func (p AssetPair) String() string {
	return p.AssetX + "/" + p.AssetY
}

// AssetAmountPair is a pair of amounts whose assets, after canonicalization,
// identify a pool. AmountX always refers to the pair's X asset.
type AssetAmountPair struct {
	AmountX AssetAmount
	AmountY AssetAmount
}

// NewAssetAmountPair returns the two amounts ordered canonically, or
// ErrInvalidPair if their assets coincide.
func NewAssetAmountPair(a, b AssetAmount) (AssetAmountPair, error) {
	if _, err := NewAssetPair(a.Asset, b.Asset); err != nil {
		return AssetAmountPair{}, err
	}
	if b.Asset < a.Asset {
		a, b = b, a
	}
	return AssetAmountPair{AmountX: a, AmountY: b}, nil
}

// NewEmptyAssetAmountPair returns a zero-balance amount pair for the given
// asset pair.
func NewEmptyAssetAmountPair(pair AssetPair) AssetAmountPair {
	return AssetAmountPair{
		AmountX: AssetAmount{Asset: pair.AssetX},
		AmountY: AssetAmount{Asset: pair.AssetY},
	}
}

// Pair returns the canonical asset pair of the two amounts.
func (ap AssetAmountPair) Pair() (AssetPair, error) {
	return NewAssetPair(ap.AmountX.Asset, ap.AmountY.Asset)
}
