package models

// User defines an administrative account based on the 'users' table.
// Users are independent of the hostel entities.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // bcrypt hash, never serialized
	Role     string `json:"role" db:"role"`
}
