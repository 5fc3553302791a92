package entities

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
)

// User is a registered credential of the mock identity layer. Passwords are
// kept in plaintext on purpose: there is no real security here.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}
