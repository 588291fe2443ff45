package dto

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthUserData is the user payload of a successful login.
type AuthUserData struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthResponse is the success shape of the auth endpoints. User and
// Token are set on login only.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *AuthUserData `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
}
