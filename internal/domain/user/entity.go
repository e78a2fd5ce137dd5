package user

// User represents a registered account able to authenticate against the
// service. The password hash is never serialized.
type User struct {
	ID           string `json:"id"`       // ID is the store-generated unique identifier
	Username     string `json:"username"` // Username is the display name chosen at signup
	Email        string `json:"email"`    // Email is unique across all users
	PasswordHash string `json:"-"`        // PasswordHash is the bcrypt hash of the password
}
