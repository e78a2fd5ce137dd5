package user

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"employee-service/internal/auth"
	domain "employee-service/internal/domain/user"
	apperrors "employee-service/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Test helper to build a usecase with a mock repo and a real auth manager
func setupTestUsecase(t *testing.T) (*Usecase, *MockRepository, *auth.Manager) {
	mockRepo := new(MockRepository)
	am := auth.New("0123456789abcdef0123456789abcdef", time.Hour)
	uc := New(mockRepo, am, zaptest.NewLogger(t))
	return uc, mockRepo, am
}

// ==================== SIGNUP TESTS ====================

func TestSignup_Success(t *testing.T) {
	uc, mockRepo, am := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Username: "john",
		Email:    "john@example.com",
		Password: "s3cret-pass",
	}

	// Email not yet registered
	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	// The persisted user carries a hash, never the plaintext
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == req.Username &&
			u.Email == req.Email &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password
	})).Return("user-1", nil)

	resp, err := uc.Signup(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "user-1", resp.ID)
	assert.Equal(t, "john", resp.Username)
	assert.Equal(t, "john@example.com", resp.Email)
	require.NotEmpty(t, resp.Token)

	// The issued token verifies and maps back to the same id and email
	claims, err := am.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)

	mockRepo.AssertExpectations(t)
}

func TestSignup_TrimsInputs(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Username: "  john  ",
		Email:    " john@example.com ",
		Password: " s3cret-pass ",
	}

	mockRepo.On("GetByEmail", ctx, "john@example.com").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "john" && u.Email == "john@example.com"
	})).Return("user-1", nil)

	resp, err := uc.Signup(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "john", resp.Username)
	assert.Equal(t, "john@example.com", resp.Email)

	mockRepo.AssertExpectations(t)
}

func TestSignup_EmptyField(t *testing.T) {
	tests := []struct {
		name  string
		req   SignupRequest
		field string
	}{
		{"blank username", SignupRequest{Username: "", Email: "a@b.c", Password: "pw"}, "username"},
		{"blank email", SignupRequest{Username: "john", Email: "", Password: "pw"}, "email"},
		{"blank password", SignupRequest{Username: "john", Email: "a@b.c", Password: ""}, "password"},
		{"whitespace username", SignupRequest{Username: "   ", Email: "a@b.c", Password: "pw"}, "username"},
		{"whitespace password", SignupRequest{Username: "john", Email: "a@b.c", Password: "\t \n"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo, _ := setupTestUsecase(t)

			resp, err := uc.Signup(context.Background(), tt.req)

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeEmptyField, apperrors.CodeOf(err))

			var fieldErr *apperrors.EmptyFieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)

			// The store is never touched on a rejected signup
			mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Username: "john",
		Email:    "john@example.com",
		Password: "s3cret-pass",
	}

	existing := &domain.User{ID: "user-0", Username: "earlier", Email: req.Email}
	mockRepo.On("GetByEmail", ctx, req.Email).Return(existing, nil)

	resp, err := uc.Signup(ctx, req)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDuplicateEmail, apperrors.CodeOf(err))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestSignup_StoreErrorOnLookup(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{Username: "john", Email: "john@example.com", Password: "pw"}

	storeErr := apperrors.NewStoreError("users.find", assert.AnError)
	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, storeErr)

	resp, err := uc.Signup(ctx, req)

	assert.Nil(t, resp)
	assert.Equal(t, apperrors.CodeStoreUnavailable, apperrors.CodeOf(err))

	mockRepo.AssertExpectations(t)
}

func TestSignup_StoreErrorOnCreate(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{Username: "john", Email: "john@example.com", Password: "pw"}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return("", apperrors.NewStoreError("users.insert", assert.AnError))

	resp, err := uc.Signup(ctx, req)

	assert.Nil(t, resp)
	assert.Equal(t, apperrors.CodeStoreUnavailable, apperrors.CodeOf(err))

	mockRepo.AssertExpectations(t)
}

func TestSignup_ResponseOmitsPasswordHash(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{Username: "john", Email: "john@example.com", Password: "s3cret-pass"}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return("user-1", nil)

	resp, err := uc.Signup(ctx, req)
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "s3cret-pass")
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "hash")
}
