package dbbadger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
	"github.com/vulpemventures/dexd/internal/core/domain"
)

type poolRepositoryImpl struct {
	db *DbManager
}

// NewPoolRepositoryImpl initialize a badger implementation of the
// domain.PoolRepository, keyed by the canonical pair of each pool.
func NewPoolRepositoryImpl(db *DbManager) domain.PoolRepository {
	return poolRepositoryImpl{
		db: db,
	}
}

func (r poolRepositoryImpl) AddPool(
	_ context.Context, pool *domain.LiquidityPool,
) error {
	err := r.db.PoolStore.Insert(pool.Pair().String(), pool)
	if err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrPoolAlreadyExists
		}
		return err
	}
	return nil
}

func (r poolRepositoryImpl) GetPool(
	_ context.Context, pair domain.AssetPair,
) (*domain.LiquidityPool, error) {
	var pool domain.LiquidityPool
	if err := r.db.PoolStore.Get(pair.String(), &pool); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrPoolNotFound
		}
		return nil, err
	}
	return &pool, nil
}

func (r poolRepositoryImpl) PoolExists(
	ctx context.Context, pair domain.AssetPair,
) (bool, error) {
	if _, err := r.GetPool(ctx, pair); err != nil {
		if err == domain.ErrPoolNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r poolRepositoryImpl) GetAllPools(
	_ context.Context,
) ([]domain.LiquidityPool, error) {
	pools := make([]domain.LiquidityPool, 0)
	if err := r.db.PoolStore.Find(&pools, nil); err != nil {
		return nil, err
	}
	sort.Slice(pools, func(i, j int) bool {
		return pools[i].Pair().String() < pools[j].Pair().String()
	})
	return pools, nil
}

// UpdatePool runs the update closure inside a single badger transaction so
// that concurrent updates on the same pool never interleave.
func (r poolRepositoryImpl) UpdatePool(
	_ context.Context,
	pair domain.AssetPair,
	updateFn func(p *domain.LiquidityPool) (*domain.LiquidityPool, error),
) error {
	return r.db.PoolStore.Badger().Update(func(tx *badger.Txn) error {
		var pool domain.LiquidityPool
		if err := r.db.PoolStore.TxGet(
			tx, pair.String(), &pool,
		); err != nil {
			if err == badgerhold.ErrNotFound {
				return domain.ErrPoolNotFound
			}
			return err
		}

		updatedPool, err := updateFn(&pool)
		if err != nil {
			return err
		}

		return r.db.PoolStore.TxUpdate(tx, pair.String(), updatedPool)
	})
}
