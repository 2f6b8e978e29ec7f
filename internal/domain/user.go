package domain

import "time"

// Role identifies which portal a user is allowed to enter.
type Role string

const (
	// RoleGeneral is the demo role; it only grants the general dashboard.
	RoleGeneral Role = "general"
	// RoleEmployee grants the employee portal.
	RoleEmployee Role = "employee"
	// RoleExecutive grants the executive portal.
	RoleExecutive Role = "executive"
)

// Valid reports whether the role is one of the known portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGeneral, RoleEmployee, RoleExecutive:
		return true
	}
	return false
}

// User represents an entry of the credential directory.
// PasswordHash is a bcrypt hash and must never leave the process.
type User struct {
	ID             string
	Email          string
	PasswordHash   string
	Role           Role
	Name           string
	Department     string
	Designation    string
	ProfilePicture string
	JoinDate       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Public returns the projection of the user that is safe to hand to a client.
// The password hash is stripped; everything else is display metadata.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role,
		Name:           u.Name,
		Department:     u.Department,
		Designation:    u.Designation,
		ProfilePicture: u.ProfilePicture,
		JoinDate:       u.JoinDate,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
