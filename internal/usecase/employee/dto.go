package employee

// AddEmployeeRequest represents the request payload for creating an
// employee record. The name and email strings must be non-empty after
// trimming; gender carries no such constraint.
type AddEmployeeRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Gender    string  `json:"gender"`
	Salary    float64 `json:"salary"`
}

// UpdateEmployeeRequest represents a partial update: nil fields are left
// unchanged.
type UpdateEmployeeRequest struct {
	ID        string
	FirstName *string
	LastName  *string
	Email     *string
	Gender    *string
	Salary    *float64
}

// Fields returns only the supplied attributes, keyed by document field
// name. An empty map means nothing was supplied.
func (r *UpdateEmployeeRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Gender != nil {
		fields["gender"] = *r.Gender
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	return fields
}

// DeleteEmployeeResponse carries the success marker returned after a
// deletion.
type DeleteEmployeeResponse struct {
	Message string `json:"message"`
}
