package domain

import "context"

// PoolRepository is the abstraction for any kind of database intended to
// persist liquidity pools, keyed by their canonical asset pair.
type PoolRepository interface {
	// AddPool inserts a new pool, failing with ErrPoolAlreadyExists if one
	// is already stored for the same pair.
	AddPool(ctx context.Context, pool *LiquidityPool) error
	// GetPool returns the pool of the given pair, or ErrPoolNotFound.
	GetPool(ctx context.Context, pair AssetPair) (*LiquidityPool, error)
	// PoolExists returns whether a pool is stored for the given pair.
	PoolExists(ctx context.Context, pair AssetPair) (bool, error)
	// GetAllPools returns all stored pools.
	GetAllPools(ctx context.Context) ([]LiquidityPool, error)
	// UpdatePool atomically updates the pool of the given pair. The closure
	// lets commit multiple changes in a transactional way: the updated pool
	// is persisted only if the closure returns no error, and no intermediate
	// state is ever observable by other callers. Fails with ErrPoolNotFound
	// if no pool is stored for the pair.
	UpdatePool(
		ctx context.Context,
		pair AssetPair,
		updateFn func(p *LiquidityPool) (*LiquidityPool, error),
	) error
}
