package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/vulpemventures/dexd/internal/core/domain"
)

// PoolRepositoryImpl represents an in memory storage
type PoolRepositoryImpl struct {
	pools map[string]domain.LiquidityPool

	lock *sync.RWMutex
}

// NewPoolRepositoryImpl returns a new empty PoolRepositoryImpl
func NewPoolRepositoryImpl() *PoolRepositoryImpl {
	return &PoolRepositoryImpl{
		pools: map[string]domain.LiquidityPool{},
		lock:  &sync.RWMutex{},
	}
}

func (r *PoolRepositoryImpl) AddPool(
	_ context.Context, pool *domain.LiquidityPool,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	key := pool.Pair().String()
	if _, ok := r.pools[key]; ok {
		return domain.ErrPoolAlreadyExists
	}

	r.pools[key] = *pool
	return nil
}

func (r *PoolRepositoryImpl) GetPool(
	_ context.Context, pair domain.AssetPair,
) (*domain.LiquidityPool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.getPool(pair)
}

func (r *PoolRepositoryImpl) PoolExists(
	_ context.Context, pair domain.AssetPair,
) (bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	_, ok := r.pools[pair.String()]
	return ok, nil
}

// GetAllPools returns all the stored pools sorted by pair for a stable
// listing order.
func (r *PoolRepositoryImpl) GetAllPools(
	_ context.Context,
) ([]domain.LiquidityPool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	pools := make([]domain.LiquidityPool, 0, len(r.pools))
	for _, pool := range r.pools {
		pools = append(pools, pool)
	}
	sort.Slice(pools, func(i, j int) bool {
		return pools[i].Pair().String() < pools[j].Pair().String()
	})
	return pools, nil
}

func (r *PoolRepositoryImpl) UpdatePool(
	_ context.Context,
	pair domain.AssetPair,
	updateFn func(p *domain.LiquidityPool) (*domain.LiquidityPool, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	currentPool, err := r.getPool(pair)
	if err != nil {
		return err
	}

	updatedPool, err := updateFn(currentPool)
	if err != nil {
		return err
	}

	r.pools[pair.String()] = *updatedPool
	return nil
}

func (r *PoolRepositoryImpl) getPool(
	pair domain.AssetPair,
) (*domain.LiquidityPool, error) {
	pool, ok := r.pools[pair.String()]
	if !ok {
		return nil, domain.ErrPoolNotFound
	}
	return &pool, nil
}
