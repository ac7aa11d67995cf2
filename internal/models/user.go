package models

import "time"

const (
	RoleOperator     = "operator"
	RoleManager      = "manager"
	RoleDutyOperator = "duty_operator"
)

// User lives inside the AppState aggregate, never as its own row.
// PasswordHash keeps the original blob's "password" key but always holds
// a bcrypt hash, never the plaintext credential.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password,omitempty"`
	Role         string    `json:"role"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
	WorkingHours string    `json:"workingHours,omitempty"`
}

func (user User) IsManager() bool {
	return user.Role == RoleManager
}

func ValidRole(role string) bool {
	switch role {
	case RoleOperator, RoleManager, RoleDutyOperator:
		return true
	}
	return false
}
