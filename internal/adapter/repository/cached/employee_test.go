package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"employee-service/internal/adapter/cache"
	domain "employee-service/internal/domain/employee"
	apperrors "employee-service/pkg/errors"
)

// MockStore is a mock implementation of the persistent employee repository
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, e *domain.Employee) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockStore) GetAll(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Employee, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupCachedRepo(t *testing.T) (*CachedEmployeeRepository, *MockStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	log := zaptest.NewLogger(t)
	store := new(MockStore)
	repo := NewCachedEmployeeRepository(store, cache.NewRedisEmployeeCache(client, 5*time.Minute, log), log)
	return repo.(*CachedEmployeeRepository), store
}

func TestCachedRepo_GetByID_PopulatesCache(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	e := &domain.Employee{ID: "e1", FirstName: "Ann", Salary: 50000}
	store.On("GetByID", ctx, "e1").Return(e, nil).Once()

	// First read goes to the store
	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)

	// Second read is served from cache; the store mock allows one call only
	got, err = repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)

	store.AssertExpectations(t)
}

func TestCachedRepo_GetByID_ErrorPassthrough(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	store.On("GetByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("employee", "missing"))

	got, err := repo.GetByID(ctx, "missing")

	assert.Nil(t, got)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCachedRepo_Update_InvalidatesCache(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	before := &domain.Employee{ID: "e1", FirstName: "Ann", Salary: 50000}
	after := &domain.Employee{ID: "e1", FirstName: "Ann", Salary: 55000}

	store.On("GetByID", ctx, "e1").Return(before, nil).Once()
	_, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)

	fields := map[string]interface{}{"salary": 55000.0}
	store.On("Update", ctx, "e1", fields).Return(after, nil).Once()
	updated, err := repo.Update(ctx, "e1", fields)
	require.NoError(t, err)
	assert.Equal(t, 55000.0, updated.Salary)

	// The stale entry is gone, so the next read hits the store again
	store.On("GetByID", ctx, "e1").Return(after, nil).Once()
	got, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 55000.0, got.Salary)

	store.AssertExpectations(t)
}

func TestCachedRepo_Delete_InvalidatesCache(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	e := &domain.Employee{ID: "e1", FirstName: "Ann"}
	store.On("GetByID", ctx, "e1").Return(e, nil).Once()
	_, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)

	store.On("Delete", ctx, "e1").Return(nil).Once()
	require.NoError(t, repo.Delete(ctx, "e1"))

	// The cached copy must not outlive the record
	store.On("GetByID", ctx, "e1").Return(nil, apperrors.NewNotFoundError("employee", "e1")).Once()
	got, err := repo.GetByID(ctx, "e1")
	assert.Nil(t, got)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	store.AssertExpectations(t)
}

func TestCachedRepo_Delete_ErrorSkipsInvalidation(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	store.On("Delete", ctx, "missing").Return(apperrors.NewNotFoundError("employee", "missing"))

	err := repo.Delete(ctx, "missing")

	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCachedRepo_CreateAndGetAll_Delegate(t *testing.T) {
	repo, store := setupCachedRepo(t)
	ctx := context.Background()

	e := &domain.Employee{FirstName: "Ann"}
	store.On("Create", ctx, e).Return("e1", nil)
	id, err := repo.Create(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	all := []domain.Employee{{ID: "e1", FirstName: "Ann"}}
	store.On("GetAll", ctx).Return(all, nil)
	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	store.AssertExpectations(t)
}
