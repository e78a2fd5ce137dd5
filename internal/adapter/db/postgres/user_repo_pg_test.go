package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"employee-service/internal/domain/user"
	apperrors "employee-service/pkg/errors"
)

func setupUserRepo(t *testing.T) *UserRepoPG {
	return NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
}

func TestUserRepoPG_CreateAndGetByEmail(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$fakehash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "john", got.Username)
	assert.Equal(t, "$2a$10$fakehash", got.PasswordHash)
}

func TestUserRepoPG_GetByEmail_Unknown(t *testing.T) {
	repo := setupUserRepo(t)

	got, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	// Absent email is not an error
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoPG_Create_DuplicateEmail(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Username: "john", Email: "john@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	// The unique index catches the duplicate even though the usecase checks
	// first, covering concurrent signups
	_, err = repo.Create(ctx, &user.User{Username: "john2", Email: "john@example.com", PasswordHash: "h2"})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDuplicateEmail, apperrors.CodeOf(err))
}

func TestUserRepoPG_GetByID(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Username: "john", Email: "john@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "john", got.Username)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	_, err = repo.GetByID(ctx, "malformed")
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestUserRepoPG_GetAll(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Create(ctx, &user.User{Username: "john", Email: "john@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &user.User{Username: "jane", Email: "jane@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserRepoPG_Update(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Username: "john", Email: "john@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, id, map[string]interface{}{"username": "johnny"})
	require.NoError(t, err)
	assert.Equal(t, "johnny", updated.Username)
	assert.Equal(t, "john@example.com", updated.Email)

	_, err = repo.Update(ctx, uuid.NewString(), map[string]interface{}{"username": "x"})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestUserRepoPG_Delete(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Username: "john", Email: "john@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	err = repo.Delete(ctx, id)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
