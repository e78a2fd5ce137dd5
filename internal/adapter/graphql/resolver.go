package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"employee-service/internal/auth"
	domain "employee-service/internal/domain/employee"
	"employee-service/internal/usecase/employee"
	"employee-service/internal/usecase/user"
	apperrors "employee-service/pkg/errors"
)

// UserService is the slice of the user usecase the resolvers depend on.
type UserService interface {
	Signup(ctx context.Context, in user.SignupRequest) (*user.SignupResponse, error)
}

// EmployeeService is the slice of the employee usecase the resolvers depend on.
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
	AddEmployee(ctx context.Context, in employee.AddEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, in employee.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (*employee.DeleteEmployeeResponse, error)
}

// TokenVerifier checks the bearer credential presented on protected operations.
type TokenVerifier interface {
	Authenticate(header string) (*auth.Claims, error)
}

// Resolver implements the query and mutation fields of the schema
type Resolver struct {
	users     UserService
	employees EmployeeService
	verifier  TokenVerifier
	log       *zap.Logger
}

// NewResolver creates a new Resolver instance
func NewResolver(users UserService, employees EmployeeService, verifier TokenVerifier, log *zap.Logger) *Resolver {
	return &Resolver{
		users:     users,
		employees: employees,
		verifier:  verifier,
		log:       log,
	}
}

// authorize verifies the bearer token carried by the request before any
// protected operation runs. The verified claims are recorded back on the
// RequestContext so later checks in the same request can reuse them.
func (r *Resolver) authorize(ctx context.Context) (*auth.Claims, error) {
	rc := RequestContextFrom(ctx)

	var header string
	if rc != nil {
		header = rc.AuthHeader
	}

	claims, err := r.verifier.Authenticate(header)
	if err != nil {
		return nil, err
	}

	if rc != nil {
		rc.Claims = claims
	}
	return claims, nil
}

func (r *Resolver) resolveGetAllEmployees(p graphql.ResolveParams) (interface{}, error) {
	return r.employees.GetAllEmployees(p.Context)
}

func (r *Resolver) resolveGetEmployeeByID(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	e, err := r.employees.GetEmployeeByID(p.Context, id)
	if err != nil {
		// An absent id resolves to null rather than an error
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	username, _ := p.Args["username"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	resp, err := r.users.Signup(p.Context, user.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		r.log.Warn("signup rejected", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (r *Resolver) resolveAddEmployee(p graphql.ResolveParams) (interface{}, error) {
	claims, err := r.authorize(p.Context)
	if err != nil {
		r.log.Warn("addEmployee rejected", zap.Error(err))
		return nil, err
	}

	in := employee.AddEmployeeRequest{
		FirstName: stringArg(p, "first_name"),
		LastName:  stringArg(p, "last_name"),
		Email:     stringArg(p, "email"),
		Gender:    stringArg(p, "gender"),
	}
	in.Salary, _ = p.Args["salary"].(float64)

	r.log.Info("addEmployee request", zap.String("user_id", claims.UserID))
	return r.employees.AddEmployee(p.Context, in)
}

func (r *Resolver) resolveUpdateEmployee(p graphql.ResolveParams) (interface{}, error) {
	claims, err := r.authorize(p.Context)
	if err != nil {
		r.log.Warn("updateEmployee rejected", zap.Error(err))
		return nil, err
	}

	in := employee.UpdateEmployeeRequest{}
	in.ID, _ = p.Args["id"].(string)

	// Only arguments the caller actually supplied land in p.Args, so
	// presence in the map is what distinguishes "set to x" from "leave alone".
	if v, ok := p.Args["first_name"].(string); ok {
		in.FirstName = &v
	}
	if v, ok := p.Args["last_name"].(string); ok {
		in.LastName = &v
	}
	if v, ok := p.Args["email"].(string); ok {
		in.Email = &v
	}
	if v, ok := p.Args["gender"].(string); ok {
		in.Gender = &v
	}
	if v, ok := p.Args["salary"].(float64); ok {
		in.Salary = &v
	}

	r.log.Info("updateEmployee request", zap.String("user_id", claims.UserID), zap.String("id", in.ID))
	return r.employees.UpdateEmployee(p.Context, in)
}

func (r *Resolver) resolveDeleteEmployee(p graphql.ResolveParams) (interface{}, error) {
	claims, err := r.authorize(p.Context)
	if err != nil {
		r.log.Warn("deleteEmployee rejected", zap.Error(err))
		return nil, err
	}

	id, _ := p.Args["id"].(string)

	r.log.Info("deleteEmployee request", zap.String("user_id", claims.UserID), zap.String("id", id))

	resp, err := r.employees.DeleteEmployee(p.Context, id)
	if err != nil {
		return nil, err
	}
	return resp.Message, nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}
