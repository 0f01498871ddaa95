package inmemory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/dexd/internal/core/domain"
	"github.com/vulpemventures/dexd/internal/infrastructure/storage/db/inmemory"
)

func newPool(t *testing.T, assetX, assetY string) *domain.LiquidityPool {
	t.Helper()

	pair, err := domain.NewAssetPair(assetX, assetY)
	require.NoError(t, err)
	return domain.NewLiquidityPool(pair, "LP-"+assetX+"-"+assetY)
}

func TestAddAndGetPool(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	ctx := context.Background()
	pool := newPool(t, "USDT", "XBT")

	require.NoError(t, repo.AddPool(ctx, pool))

	exists, err := repo.PoolExists(ctx, pool.Pair())
	require.NoError(t, err)
	require.True(t, exists)

	stored, err := repo.GetPool(ctx, pool.Pair())
	require.NoError(t, err)
	require.Equal(t, pool.LpTokenID, stored.LpTokenID)
}

func TestAddPoolTwice(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	ctx := context.Background()
	pool := newPool(t, "USDT", "XBT")

	require.NoError(t, repo.AddPool(ctx, pool))
	require.ErrorIs(t, repo.AddPool(ctx, pool), domain.ErrPoolAlreadyExists)
}

func TestGetMissingPool(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	pair, err := domain.NewAssetPair("USDT", "XBT")
	require.NoError(t, err)

	_, err = repo.GetPool(context.Background(), pair)
	require.ErrorIs(t, err, domain.ErrPoolNotFound)

	exists, err := repo.PoolExists(context.Background(), pair)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestGetAllPools(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	ctx := context.Background()

	require.NoError(t, repo.AddPool(ctx, newPool(t, "USDT", "XBT")))
	require.NoError(t, repo.AddPool(ctx, newPool(t, "EURT", "XBT")))

	pools, err := repo.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	require.Equal(t, "EURT/XBT", pools[0].Pair().String())
	require.Equal(t, "USDT/XBT", pools[1].Pair().String())
}

func TestUpdatePool(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	ctx := context.Background()
	pool := newPool(t, "USDT", "XBT")

	require.NoError(t, repo.AddPool(ctx, pool))

	provision, err := domain.NewAssetAmountPair(
		domain.AssetAmount{Asset: "USDT", Amount: 1000},
		domain.AssetAmount{Asset: "XBT", Amount: 1000},
	)
	require.NoError(t, err)

	err = repo.UpdatePool(
		ctx, pool.Pair(),
		func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			if err := p.Deposit(provision, 1000); err != nil {
				return nil, err
			}
			return p, nil
		},
	)
	require.NoError(t, err)

	stored, err := repo.GetPool(ctx, pool.Pair())
	require.NoError(t, err)
	require.Equal(t, uint64(1000), stored.TotalLiquidity)
	require.Equal(t, uint64(1000), stored.Reserves.AmountX.Amount)
}

func TestUpdatePoolRollsBackOnError(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	ctx := context.Background()
	pool := newPool(t, "USDT", "XBT")

	require.NoError(t, repo.AddPool(ctx, pool))

	err := repo.UpdatePool(
		ctx, pool.Pair(),
		func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			p.TotalLiquidity = 42
			return nil, domain.ErrArithmetic
		},
	)
	require.ErrorIs(t, err, domain.ErrArithmetic)

	stored, err := repo.GetPool(ctx, pool.Pair())
	require.NoError(t, err)
	require.Zero(t, stored.TotalLiquidity)
}

func TestUpdateMissingPool(t *testing.T) {
	t.Parallel()

	repo := inmemory.NewPoolRepositoryImpl()
	pair, err := domain.NewAssetPair("USDT", "XBT")
	require.NoError(t, err)

	err = repo.UpdatePool(
		context.Background(), pair,
		func(p *domain.LiquidityPool) (*domain.LiquidityPool, error) {
			return p, nil
		},
	)
	require.ErrorIs(t, err, domain.ErrPoolNotFound)
}
