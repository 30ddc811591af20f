package routerrepo

import (
	"sync"

	"github.com/dudesahn/wBLTRouter/domain"
)

// PoolRepository represents the contract for a repository handling the pools
// the router can route over.
type PoolRepository interface {
	// GetPool returns the pool for the given key.
	// Returns true if the pool is found. False otherwise.
	GetPool(key domain.PoolKey) (domain.RoutablePool, bool)
	// GetPoolByDenoms returns the pool for the given denom pair and curve
	// family. Denom order does not matter.
	GetPoolByDenoms(denomA, denomB string, stable bool) (domain.RoutablePool, bool)
	// SetPool registers the pool under its key.
	SetPool(pool domain.RoutablePool)
	// GetAllPools returns all registered pools.
	GetAllPools() []domain.RoutablePool
}

var _ PoolRepository = &poolRepo{}

type poolRepo struct {
	poolMap sync.Map
}

// New creates a new in-memory repository for the router's pools.
func New() PoolRepository {
	return &poolRepo{
		poolMap: sync.Map{},
	}
}

// GetPool implements PoolRepository.
func (r *poolRepo) GetPool(key domain.PoolKey) (domain.RoutablePool, bool) {
	value, ok := r.poolMap.Load(key)
	if !ok {
		return nil, false
	}

	pool, ok := value.(domain.RoutablePool)
	return pool, ok
}

// GetPoolByDenoms implements PoolRepository.
func (r *poolRepo) GetPoolByDenoms(denomA, denomB string, stable bool) (domain.RoutablePool, bool) {
	return r.GetPool(domain.NewPoolKey(denomA, denomB, stable))
}

// SetPool implements PoolRepository.
func (r *poolRepo) SetPool(pool domain.RoutablePool) {
	r.poolMap.Store(pool.GetKey(), pool)
}

// GetAllPools implements PoolRepository.
func (r *poolRepo) GetAllPools() []domain.RoutablePool {
	var pools []domain.RoutablePool

	r.poolMap.Range(func(_, value interface{}) bool {
		pool, ok := value.(domain.RoutablePool)
		if !ok {
			return false
		}

		pools = append(pools, pool)

		return true
	})

	return pools
}
