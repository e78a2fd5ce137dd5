package employee

// Employee represents an employee record in the system.
type Employee struct {
	ID        string  `json:"id"`         // ID is the store-generated unique identifier
	FirstName string  `json:"first_name"` // FirstName is the employee's first name
	LastName  string  `json:"last_name"`  // LastName is the employee's last name
	Email     string  `json:"email"`      // Email is not required to be unique
	Gender    string  `json:"gender"`     // Gender is free-form
	Salary    float64 `json:"salary"`     // Salary is conceptually non-negative, not enforced
}
