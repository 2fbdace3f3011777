package aggregate

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleFieldOfficer UserRole = "field_officer"
	RoleDistributor  UserRole = "distributor"
)

// IsValid checks if the role is valid
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleFieldOfficer || r == RoleDistributor
}

// User is a member of the field organization
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Territory string    `json:"territory,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) GetID() string { return u.ID }
func (u User) Clone() User   { return u }
