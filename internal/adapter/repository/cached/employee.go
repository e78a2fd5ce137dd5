package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"employee-service/internal/adapter/cache"
	domain "employee-service/internal/domain/employee"
	"employee-service/internal/usecase/employee"
)

// CachedEmployeeRepository implements employee.Repository with caching
// support. It wraps the persistent store and a cache implementation;
// lookups by id are cache-aside, writes invalidate.
type CachedEmployeeRepository struct {
	dbRepo employee.Repository
	cache  cache.EmployeeCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedEmployeeRepository creates a new instance of
// CachedEmployeeRepository.
func NewCachedEmployeeRepository(dbRepo employee.Repository, cache cache.EmployeeCache, log *zap.Logger) employee.Repository {
	return &CachedEmployeeRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the persistent store.
func (r *CachedEmployeeRepository) Create(ctx context.Context, e *domain.Employee) (string, error) {
	return r.dbRepo.Create(ctx, e)
}

// GetAll delegates to the persistent store; list results are not cached.
func (r *CachedEmployeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return r.dbRepo.GetAll(ctx)
}

// GetByID retrieves an employee by id using the cache-aside pattern.
func (r *CachedEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to store", zap.String("id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	// Cache miss - use single-flight so concurrent misses for one id
	// produce a single store read
	key := fmt.Sprintf("employee:%s", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Double-check the cache in case another request populated it
		// while we were waiting
		if r.cache != nil {
			cached, err := r.cache.Get(ctx, id)
			if err == nil && cached != nil {
				return cached, nil
			}
		}

		e, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, e); err != nil {
				r.log.Warn("failed to cache employee", zap.String("id", id), zap.Error(err))
			}
		}

		return e, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.Employee), nil
}

// Update applies the partial update in the persistent store and invalidates
// the cached entry.
func (r *CachedEmployeeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Employee, error) {
	e, err := r.dbRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after update", zap.String("id", id), zap.Error(err))
		}
	}

	return e, nil
}

// Delete removes the record from the persistent store and invalidates the
// cached entry.
func (r *CachedEmployeeRepository) Delete(ctx context.Context, id string) error {
	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after delete", zap.String("id", id), zap.Error(err))
		}
	}

	return nil
}
