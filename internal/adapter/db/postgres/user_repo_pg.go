package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/internal/domain/user"
	apperrors "employee-service/pkg/errors"
)

// UserRepoPG implements the credential store using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table. The unique
// index on email backs the one-account-per-email invariant even under
// concurrent signups.
type UserSchema struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"not null"`
	Email        string `gorm:"not null;unique"`
	PasswordHash string `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (m *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

// Create inserts a new user and returns the generated id. A violated email
// uniqueness constraint surfaces as the duplicate-email error kind.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (string, error) {
	if u == nil {
		return "", errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:           uuid.NewString(),
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email on insert", zap.String("email", u.Email))
			return "", apperrors.NewDuplicateEmailError(u.Email)
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return "", apperrors.NewStoreError("users.insert", err)
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a user by id. A malformed id is reported as not found.
func (r *UserRepoPG) GetByID(ctx context.Context, id string) (*user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("malformed user id", zap.String("id", id))
		return nil, apperrors.NewNotFoundError("user", id)
	}

	var model UserSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.String("id", id))
			return nil, apperrors.NewNotFoundError("user", id)
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, apperrors.NewStoreError("users.find", err)
	}

	return model.toDomain(), nil
}

// GetByEmail retrieves a user by email address. An unknown email returns
// nil with no error so callers can distinguish "absent" from "store down".
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, apperrors.NewStoreError("users.find", err)
	}

	return model.toDomain(), nil
}

// GetAll retrieves every user record.
func (r *UserRepoPG) GetAll(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, apperrors.NewStoreError("users.find", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = *model.toDomain()
	}

	return users, nil
}

// Update applies the supplied fields to the user with the given id and
// returns the record as stored afterwards.
func (r *UserRepoPG) Update(ctx context.Context, id string, fields map[string]interface{}) (*user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("malformed user id", zap.String("id", id))
		return nil, apperrors.NewNotFoundError("user", id)
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				if email, ok := fields["email"].(string); ok {
					return nil, apperrors.NewDuplicateEmailError(email)
				}
				return nil, apperrors.NewDuplicateEmailError("")
			}
			r.log.Error("failed to update user in db", zap.Error(res.Error), zap.String("id", id))
			return nil, apperrors.NewStoreError("users.update", res.Error)
		}
		if res.RowsAffected == 0 {
			r.log.Warn("user not found on update", zap.String("id", id))
			return nil, apperrors.NewNotFoundError("user", id)
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes the user record with the given id.
func (r *UserRepoPG) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("malformed user id", zap.String("id", id))
		return apperrors.NewNotFoundError("user", id)
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.String("id", id))
		return apperrors.NewStoreError("users.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("user not found on delete", zap.String("id", id))
		return apperrors.NewNotFoundError("user", id)
	}

	r.log.Info("user deleted in db", zap.String("id", id))
	return nil
}
