package application

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/dexd/internal/core/domain"
	"github.com/vulpemventures/dexd/internal/core/ports"
)

const (
	// DexAccount is the ledger account custodying all pool reserves.
	DexAccount = "dex:custody"
	// DexAdminAccount owns the receipt-token assets registered on the
	// ledger at pool creation.
	DexAdminAccount = "dex:admin"
)

// DexService exposes the caller-facing operations of the exchange: pool
// creation, liquidity provisioning and removal, swaps in both directions and
// price quoting. Every operation either fully succeeds or fully aborts with
// no observable state change.
type DexService interface {
	// CreatePool registers an empty pool for the two assets along with its
	// receipt token.
	CreatePool(
		ctx context.Context, caller, assetA, assetB, lpTokenID string,
	) error
	// ProvideLiquidity deposits the provision into its pool and returns the
	// amount of receipt tokens minted to the caller.
	ProvideLiquidity(
		ctx context.Context, caller string,
		provision domain.AssetAmountPair, lpTokenID string,
	) (uint64, error)
	// RemoveLiquidity burns the given receipt tokens and returns the
	// underlying amounts released to the caller.
	RemoveLiquidity(
		ctx context.Context, caller string,
		pair domain.AssetPair, lpTokens uint64,
	) (domain.AssetAmountPair, error)
	// SwapLimitTake swaps an exact given amount for a computed taken one,
	// failing if that falls short of minTake.
	SwapLimitTake(
		ctx context.Context, caller string,
		give domain.AssetAmount, minTake uint64, pair domain.AssetPair,
	) (domain.AssetAmount, error)
	// SwapLimitGive swaps a computed given amount for an exact taken one,
	// failing if that exceeds maxGive.
	SwapLimitGive(
		ctx context.Context, caller string,
		take domain.AssetAmount, maxGive uint64, pair domain.AssetPair,
	) (domain.AssetAmount, error)
	// GetAssetPrice returns the spot price of an asset in a pool.
	GetAssetPrice(
		ctx context.Context, pair domain.AssetPair, asset string,
	) (decimal.Decimal, error)
	// ListPools returns all registered pools.
	ListPools(ctx context.Context) ([]domain.LiquidityPool, error)
	// GetBalance returns the ledger balance of an account for an asset.
	GetBalance(ctx context.Context, asset, account string) (uint64, error)
}

type dexService struct {
	poolRepository domain.PoolRepository
	ledger         ports.Ledger
	pubsub         ports.PubSub
	// Swap fee in basis points, charged on the input leg.
	feeBps uint64
	// Minimum balance of the receipt-token assets registered on the ledger.
	lpTokenDust uint64
}

// NewDexService returns a DexService backed by the given pool repository and
// ledger. The pubsub service is optional, a nil one disables notifications.
func NewDexService(
	poolRepository domain.PoolRepository,
	ledger ports.Ledger,
	pubsub ports.PubSub,
	feeBps, lpTokenDust uint64,
) DexService {
	return &dexService{
		poolRepository: poolRepository,
		ledger:         ledger,
		pubsub:         pubsub,
		feeBps:         feeBps,
		lpTokenDust:    lpTokenDust,
	}
}

func (s *dexService) CreatePool(
	ctx context.Context, caller, assetA, assetB, lpTokenID string,
) error {
	pair, err := domain.NewAssetPair(assetA, assetB)
	if err != nil {
		return err
	}

	exists, err := s.poolRepository.PoolExists(ctx, pair)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrPoolAlreadyExists
	}

	if err := s.ledger.CreateAsset(
		ctx, lpTokenID, DexAdminAccount, false, s.lpTokenDust,
	); err != nil {
		return err
	}

	if err := s.poolRepository.AddPool(
		ctx, domain.NewLiquidityPool(pair, lpTokenID),
	); err != nil {
		return err
	}

	s.publish(ports.TopicPoolCreated, PoolCreatedEvent{
		ID:        uuid.NewString(),
		LpTokenID: lpTokenID,
	})
	return nil
}

func (s *dexService) ProvideLiquidity(
	ctx context.Context, caller string,
	provision domain.AssetAmountPair, lpTokenID string,
) (uint64, error) {
	if provision.AmountX.Amount == 0 || provision.AmountY.Amount == 0 {
		return 0, domain.ErrInsufficientLiquidityProvided
	}

	pair, err := provision.Pair()
	if err != nil {
		return 0, err
	}

	pool, err := s.poolRepository.GetPool(ctx, pair)
	if err != nil {
		return 0, err
	}

	if err := pool.CheckImmediateArbitrage(provision); err != nil {
		return 0, err
	}

	lpTokens, err := pool.MintableLiquidity(provision)
	if err != nil {
		return 0, err
	}

	// Dry-run the reserve update before moving any funds.
	updated := *pool
	if err := updated.Deposit(provision, lpTokens); err != nil {
		return 0, err
	}

	if err := s.ledger.Transfer(
		ctx, provision.AmountX.Asset, caller, DexAccount,
		provision.AmountX.Amount,
	); err != nil {
		return 0, err
	}
	if err := s.ledger.Transfer(
		ctx, provision.AmountY.Asset, caller, DexAccount,
		provision.AmountY.Amount,
	); err != nil {
		s.refund(ctx, provision.AmountX, caller)
		return 0, err
	}
	if err := s.ledger.MintInto(ctx, lpTokenID, caller, lpTokens); err != nil {
		s.refund(ctx, provision.AmountX, caller)
		s.refund(ctx, provision.AmountY, caller)
		return 0, err
	}

	if err := s.poolRepository.UpdatePool(
		ctx, pair,
		func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			if err := p.Deposit(provision, lpTokens); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		s.refund(ctx, provision.AmountX, caller)
		s.refund(ctx, provision.AmountY, caller)
		s.burnBack(ctx, lpTokenID, caller, lpTokens)
		return 0, err
	}

	s.publish(ports.TopicLiquidityProvided, LiquidityProvidedEvent{
		ID:             uuid.NewString(),
		Who:            caller,
		ProvidedX:      assetAmountInfo(provision.AmountX),
		ProvidedY:      assetAmountInfo(provision.AmountY),
		LpTokensMinted: lpTokens,
	})
	return lpTokens, nil
}

func (s *dexService) RemoveLiquidity(
	ctx context.Context, caller string,
	pair domain.AssetPair, lpTokens uint64,
) (domain.AssetAmountPair, error) {
	pool, err := s.poolRepository.GetPool(ctx, pair)
	if err != nil {
		return domain.AssetAmountPair{}, err
	}

	amounts, err := pool.WithdrawableAmounts(lpTokens)
	if err != nil {
		return domain.AssetAmountPair{}, err
	}

	if err := s.ledger.Transfer(
		ctx, amounts.AmountX.Asset, DexAccount, caller,
		amounts.AmountX.Amount,
	); err != nil {
		return domain.AssetAmountPair{}, err
	}
	if err := s.ledger.Transfer(
		ctx, amounts.AmountY.Asset, DexAccount, caller,
		amounts.AmountY.Amount,
	); err != nil {
		s.reclaim(ctx, amounts.AmountX, caller)
		return domain.AssetAmountPair{}, err
	}
	if err := s.ledger.BurnFrom(
		ctx, pool.LpTokenID, caller, lpTokens, true,
	); err != nil {
		s.reclaim(ctx, amounts.AmountX, caller)
		s.reclaim(ctx, amounts.AmountY, caller)
		return domain.AssetAmountPair{}, err
	}

	if err := s.poolRepository.UpdatePool(
		ctx, pair,
		func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			p.Withdraw(amounts, lpTokens)
			return p, nil
		},
	); err != nil {
		s.reclaim(ctx, amounts.AmountX, caller)
		s.reclaim(ctx, amounts.AmountY, caller)
		s.mintBack(ctx, pool.LpTokenID, caller, lpTokens)
		return domain.AssetAmountPair{}, err
	}

	s.publish(ports.TopicLiquidityRemoved, LiquidityRemovedEvent{
		ID:             uuid.NewString(),
		Who:            caller,
		RemovedX:       assetAmountInfo(amounts.AmountX),
		RemovedY:       assetAmountInfo(amounts.AmountY),
		LpTokensBurned: lpTokens,
	})
	return amounts, nil
}

func (s *dexService) SwapLimitTake(
	ctx context.Context, caller string,
	give domain.AssetAmount, minTake uint64, pair domain.AssetPair,
) (domain.AssetAmount, error) {
	if give.Amount == 0 {
		return domain.AssetAmount{}, domain.ErrZeroSwapAmount
	}

	pool, err := s.poolRepository.GetPool(ctx, pair)
	if err != nil {
		return domain.AssetAmount{}, err
	}

	take, err := pool.OutGivenIn(give, s.feeBps)
	if err != nil {
		return domain.AssetAmount{}, err
	}

	if take.Amount < minTake {
		return domain.AssetAmount{}, domain.ErrMinOutputNotReached
	}
	// The pool must retain a strictly positive balance of the output asset.
	_, reserveOut := pool.SwapLegs(give.Asset)
	if take.Amount >= reserveOut.Amount {
		return domain.AssetAmount{}, domain.ErrSwapCannotBeSatisfied
	}

	if err := s.settleSwap(ctx, caller, give, take, pair); err != nil {
		return domain.AssetAmount{}, err
	}
	return take, nil
}

func (s *dexService) SwapLimitGive(
	ctx context.Context, caller string,
	take domain.AssetAmount, maxGive uint64, pair domain.AssetPair,
) (domain.AssetAmount, error) {
	if take.Amount == 0 {
		return domain.AssetAmount{}, domain.ErrZeroSwapAmount
	}

	pool, err := s.poolRepository.GetPool(ctx, pair)
	if err != nil {
		return domain.AssetAmount{}, err
	}

	give, err := pool.InGivenOut(take, s.feeBps)
	if err != nil {
		return domain.AssetAmount{}, err
	}

	if give.Amount > maxGive {
		return domain.AssetAmount{}, domain.ErrMaxInputExceeded
	}

	if err := s.settleSwap(ctx, caller, give, take, pair); err != nil {
		return domain.AssetAmount{}, err
	}
	return give, nil
}

func (s *dexService) GetAssetPrice(
	ctx context.Context, pair domain.AssetPair, asset string,
) (decimal.Decimal, error) {
	pool, err := s.poolRepository.GetPool(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := pool.SpotPrice(asset)
	if err != nil {
		return decimal.Zero, err
	}

	s.publish(ports.TopicPriceQuoted, PriceQuotedEvent{
		ID:    uuid.NewString(),
		Asset: asset,
		Price: price.String(),
	})
	return price, nil
}

func (s *dexService) ListPools(
	ctx context.Context,
) ([]domain.LiquidityPool, error) {
	return s.poolRepository.GetAllPools(ctx)
}

func (s *dexService) GetBalance(
	ctx context.Context, asset, account string,
) (uint64, error) {
	return s.ledger.Balance(ctx, asset, account)
}

// settleSwap moves the two legs on the ledger and commits the new reserves.
// Amounts have been validated by the caller, so the reserve update inside
// the repository closure cannot fail except for the pool going missing, in
// which case both ledger legs are compensated.
func (s *dexService) settleSwap(
	ctx context.Context, caller string,
	give, take domain.AssetAmount, pair domain.AssetPair,
) error {
	if err := s.ledger.Transfer(
		ctx, give.Asset, caller, DexAccount, give.Amount,
	); err != nil {
		return err
	}
	if err := s.ledger.Transfer(
		ctx, take.Asset, DexAccount, caller, take.Amount,
	); err != nil {
		s.refund(ctx, give, caller)
		return err
	}

	if err := s.poolRepository.UpdatePool(
		ctx, pair,
		func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			if err := p.ApplySwap(give, take); err != nil {
				return nil, err
			}
			return p, nil
		},
	); err != nil {
		s.refund(ctx, give, caller)
		s.reclaim(ctx, take, caller)
		return err
	}

	s.publish(ports.TopicTradeSettled, TradeSettledEvent{
		ID:   uuid.NewString(),
		Who:  caller,
		Give: assetAmountInfo(give),
		Take: assetAmountInfo(take),
	})
	return nil
}

// refund sends an amount already custodied by the dex back to the caller to
// undo a partially applied operation.
func (s *dexService) refund(
	ctx context.Context, amount domain.AssetAmount, caller string,
) {
	if err := s.ledger.Transfer(
		ctx, amount.Asset, DexAccount, caller, amount.Amount,
	); err != nil {
		log.WithError(err).WithField("asset", amount.Asset).
			Warn("failed to refund caller while aborting operation")
	}
}

// reclaim takes back an amount already released to the caller to undo a
// partially applied operation.
func (s *dexService) reclaim(
	ctx context.Context, amount domain.AssetAmount, caller string,
) {
	if err := s.ledger.Transfer(
		ctx, amount.Asset, caller, DexAccount, amount.Amount,
	); err != nil {
		log.WithError(err).WithField("asset", amount.Asset).
			Warn("failed to reclaim funds while aborting operation")
	}
}

// burnBack destroys receipt tokens already minted to the caller to undo a
// partially applied provision.
func (s *dexService) burnBack(
	ctx context.Context, lpTokenID, caller string, lpTokens uint64,
) {
	if err := s.ledger.BurnFrom(
		ctx, lpTokenID, caller, lpTokens, true,
	); err != nil {
		log.WithError(err).WithField("asset", lpTokenID).
			Warn("failed to burn back receipt tokens while aborting operation")
	}
}

// mintBack restores receipt tokens already burned from the caller to undo a
// partially applied removal.
func (s *dexService) mintBack(
	ctx context.Context, lpTokenID, caller string, lpTokens uint64,
) {
	if err := s.ledger.MintInto(
		ctx, lpTokenID, caller, lpTokens,
	); err != nil {
		log.WithError(err).WithField("asset", lpTokenID).
			Warn("failed to mint back receipt tokens while aborting operation")
	}
}

func (s *dexService) publish(topic string, payload interface{}) {
	if s.pubsub == nil {
		return
	}

	message, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Warnf("failed to serialize %s event", topic)
		return
	}
	if err := s.pubsub.Publish(topic, string(message)); err != nil {
		log.WithError(err).Warnf("failed to publish %s event", topic)
	}
}

func assetAmountInfo(amount domain.AssetAmount) AssetAmountInfo {
	return AssetAmountInfo{Asset: amount.Asset, Amount: amount.Amount}
}
