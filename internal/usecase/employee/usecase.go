package employee

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "employee-service/internal/domain/employee"
	apperrors "employee-service/pkg/errors"
)

// Repository defines the persistence operations for employee records. A
// missing or malformed id surfaces as a not-found error; GetAll on an empty
// store returns an empty slice.
type Repository interface {
	Create(ctx context.Context, e *domain.Employee) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

// Usecase implements the business logic for employee record management.
// Authorization is the caller's concern; every method here assumes the
// request is already allowed to touch the store.
type Usecase struct {
	repo     Repository          // Repository for employee data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Usecase with the provided repository and
// logger.
func New(r Repository, log *zap.Logger) *Usecase {
	v := validator.New()
	// Failures are reported under the wire name (first_name, not FirstName)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &Usecase{repo: r, log: log, validate: v}
}

// emptyFieldError maps a validator failure onto the blank-field error kind,
// naming the first field that failed.
func emptyFieldError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewEmptyFieldError(verrs[0].Field())
	}
	return err
}

// GetAllEmployees returns every employee record, possibly none.
func (uc *Usecase) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.log.Error("failed to list employees", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

// GetEmployeeByID retrieves a single employee record by id.
func (uc *Usecase) GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get employee", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return e, nil
}

// AddEmployee persists a new employee record and returns it with the
// generated id. The name and email strings are trimmed and must be
// non-empty; a rejected request never reaches the store.
func (uc *Usecase) AddEmployee(ctx context.Context, in AddEmployeeRequest) (*domain.Employee, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	uc.log.Info("adding employee",
		zap.String("first_name", in.FirstName),
		zap.String("last_name", in.LastName),
	)

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("addEmployee validation failed", zap.Error(err))
		return nil, emptyFieldError(err)
	}

	e := &domain.Employee{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Gender:    in.Gender,
		Salary:    in.Salary,
	}

	id, err := uc.repo.Create(ctx, e)
	if err != nil {
		uc.log.Error("failed to add employee", zap.Error(err))
		return nil, err
	}

	e.ID = id
	return e, nil
}

// UpdateEmployee applies a partial update and returns the record as stored
// afterwards. Fields that were not supplied keep their prior values.
func (uc *Usecase) UpdateEmployee(ctx context.Context, in UpdateEmployeeRequest) (*domain.Employee, error) {
	fields := in.Fields()
	uc.log.Info("updating employee", zap.String("id", in.ID), zap.Int("fields", len(fields)))

	e, err := uc.repo.Update(ctx, in.ID, fields)
	if err != nil {
		uc.log.Warn("failed to update employee", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}
	return e, nil
}

// DeleteEmployee removes the record with the given id.
func (uc *Usecase) DeleteEmployee(ctx context.Context, id string) (*DeleteEmployeeResponse, error) {
	uc.log.Info("deleting employee", zap.String("id", id))

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Warn("failed to delete employee", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &DeleteEmployeeResponse{Message: "employee deleted successfully"}, nil
}
