package user

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "employee-service/internal/domain/user"
	apperrors "employee-service/pkg/errors"
)

// Repository defines the persistence operations signup needs. The concrete
// store implements the full insert/find/update/delete set; this interface
// names only what this usecase calls. GetByEmail returns nil with no error
// when the email is not registered.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer hashes passwords and issues bearer tokens for new accounts.
type TokenIssuer interface {
	HashPassword(plaintext string) (string, error)
	IssueToken(userID, email string) (string, error)
}

// Usecase implements the signup flow: reject blank fields, reject duplicate
// emails, hash the password, persist the user, and issue a token.
type Usecase struct {
	repo     Repository          // Repository for credential data access
	auth     TokenIssuer         // Auth manager for hashing and token issuance
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Usecase with the provided repository, auth
// manager, and logger.
func New(r Repository, a TokenIssuer, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, auth: a, log: log, validate: validator.New()}
}

// emptyFieldError maps a validator failure onto the blank-field error kind,
// naming the first field that failed.
func emptyFieldError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewEmptyFieldError(strings.ToLower(verrs[0].Field()))
	}
	return err
}

// Signup registers a new user and returns the created account together with
// a bearer token bound to its id and email.
func (uc *Usecase) Signup(ctx context.Context, in SignupRequest) (*SignupResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Password = strings.TrimSpace(in.Password)

	uc.log.Info("signing up user", zap.String("username", in.Username), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("signup validation failed", zap.Error(err))
		return nil, emptyFieldError(err)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		uc.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperrors.NewDuplicateEmailError(in.Email)
	}

	hash, err := uc.auth.HashPassword(in.Password)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	id, err := uc.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	token, err := uc.auth.IssueToken(id, in.Email)
	if err != nil {
		uc.log.Error("failed to issue token", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &SignupResponse{
		ID:       id,
		Username: in.Username,
		Email:    in.Email,
		Token:    token,
	}, nil
}
