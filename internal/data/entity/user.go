package entity

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleProvider UserRole = "provider"
)

// User is the private identity record. PasswordHash never leaves the
// data layer; API boundaries return response.UserResponse instead.
type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        string   `db:"phone"`
	Role         UserRole `db:"role"`
}
