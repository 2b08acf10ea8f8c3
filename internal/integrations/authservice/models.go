package authservice

// Role is the access role assigned by the auth service
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// User is the user record returned by the auth service
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	RUT      string `json:"rut"`
	Role     Role   `json:"role"`
}

// IsStaff reports whether the user can act on other citizens' reservations
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleEmployee
}

// ErrorResponse is the error envelope returned by the auth service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
