package user

// SignupRequest represents the request payload for registering a new user.
// All three fields must be non-empty after trimming.
type SignupRequest struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// SignupResponse represents the response payload after a successful signup.
// It carries the issued bearer token and never the password hash.
type SignupResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
