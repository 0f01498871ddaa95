package application

// AssetAmountInfo is the wire representation of an asset amount in event
// payloads.
type AssetAmountInfo struct {
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}

// PoolCreatedEvent notifies the registration of a new pool and its receipt
// token.
type PoolCreatedEvent struct {
	ID        string `json:"id"`
	LpTokenID string `json:"lp_token_id"`
}

// LiquidityProvidedEvent notifies a deposit and the receipt tokens minted
// for it.
type LiquidityProvidedEvent struct {
	ID             string          `json:"id"`
	Who            string          `json:"who"`
	ProvidedX      AssetAmountInfo `json:"provided_x"`
	ProvidedY      AssetAmountInfo `json:"provided_y"`
	LpTokensMinted uint64          `json:"lp_tokens_minted"`
}

// LiquidityRemovedEvent notifies a withdrawal and the receipt tokens burned
// for it.
type LiquidityRemovedEvent struct {
	ID             string          `json:"id"`
	Who            string          `json:"who"`
	RemovedX       AssetAmountInfo `json:"removed_x"`
	RemovedY       AssetAmountInfo `json:"removed_y"`
	LpTokensBurned uint64          `json:"lp_tokens_burned"`
}

// TradeSettledEvent notifies a settled swap.
type TradeSettledEvent struct {
	ID   string          `json:"id"`
	Who  string          `json:"who"`
	Give AssetAmountInfo `json:"give"`
	Take AssetAmountInfo `json:"take"`
}

// PriceQuotedEvent notifies a spot price query.
type PriceQuotedEvent struct {
	ID    string `json:"id"`
	Asset string `json:"asset"`
	Price string `json:"price"`
}
