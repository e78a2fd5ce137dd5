package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/internal/domain/employee"
	apperrors "employee-service/pkg/errors"
)

// EmployeeRepoPG implements the employee Repository interface using
// PostgreSQL and GORM.
type EmployeeRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewEmployeeRepoPG creates a new instance of EmployeeRepoPG.
func NewEmployeeRepoPG(db *gorm.DB, log *zap.Logger) *EmployeeRepoPG {
	return &EmployeeRepoPG{db: db, log: log}
}

// EmployeeSchema represents the database schema for the employees table.
// Ids are generated server-side on insert.
type EmployeeSchema struct {
	ID        string `gorm:"primaryKey;size:36"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Gender    string
	Salary    float64
}

// TableName specifies the table name for the EmployeeSchema model.
func (EmployeeSchema) TableName() string {
	return "employees"
}

func (m *EmployeeSchema) toDomain() *employee.Employee {
	return &employee.Employee{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Gender:    m.Gender,
		Salary:    m.Salary,
	}
}

// Create inserts a new employee record and returns the generated id.
func (r *EmployeeRepoPG) Create(ctx context.Context, e *employee.Employee) (string, error) {
	if e == nil {
		return "", errors.New("employee cannot be nil")
	}

	model := EmployeeSchema{
		ID:        uuid.NewString(),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Gender:    e.Gender,
		Salary:    e.Salary,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create employee in db", zap.Error(err))
		return "", apperrors.NewStoreError("employees.insert", err)
	}

	r.log.Info("employee created in db", zap.String("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves an employee by id. A malformed id is reported as not
// found rather than as a store failure.
func (r *EmployeeRepoPG) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("malformed employee id", zap.String("id", id))
		return nil, apperrors.NewNotFoundError("employee", id)
	}

	var model EmployeeSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("employee not found", zap.String("id", id))
			return nil, apperrors.NewNotFoundError("employee", id)
		}
		r.log.Error("failed to get employee from db", zap.Error(err), zap.String("id", id))
		return nil, apperrors.NewStoreError("employees.find", err)
	}

	return model.toDomain(), nil
}

// GetAll retrieves every employee record.
func (r *EmployeeRepoPG) GetAll(ctx context.Context) ([]employee.Employee, error) {
	var models []EmployeeSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list employees from db", zap.Error(err))
		return nil, apperrors.NewStoreError("employees.find", err)
	}

	employees := make([]employee.Employee, len(models))
	for i, model := range models {
		employees[i] = *model.toDomain()
	}

	return employees, nil
}

// Update applies the supplied fields to the record with the given id and
// returns the record as stored afterwards. The single UPDATE keeps the
// partial write atomic with respect to concurrent updates of the same id.
func (r *EmployeeRepoPG) Update(ctx context.Context, id string, fields map[string]interface{}) (*employee.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("malformed employee id", zap.String("id", id))
		return nil, apperrors.NewNotFoundError("employee", id)
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&EmployeeSchema{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			r.log.Error("failed to update employee in db", zap.Error(res.Error), zap.String("id", id))
			return nil, apperrors.NewStoreError("employees.update", res.Error)
		}
		if res.RowsAffected == 0 {
			r.log.Warn("employee not found on update", zap.String("id", id))
			return nil, apperrors.NewNotFoundError("employee", id)
		}
		r.log.Info("employee updated in db", zap.String("id", id), zap.Int("fields", len(fields)))
	}

	return r.GetByID(ctx, id)
}

// Delete removes the employee record with the given id.
func (r *EmployeeRepoPG) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		r.log.Warn("malformed employee id", zap.String("id", id))
		return apperrors.NewNotFoundError("employee", id)
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&EmployeeSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete employee in db", zap.Error(res.Error), zap.String("id", id))
		return apperrors.NewStoreError("employees.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("employee not found on delete", zap.String("id", id))
		return apperrors.NewNotFoundError("employee", id)
	}

	r.log.Info("employee deleted in db", zap.String("id", id))
	return nil
}
