package auth

// User is a dashboard staff account.
// Role is either OWNER (full control) or STAFF (takes orders).
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleOwner = "OWNER"
	RoleStaff = "STAFF"
)
