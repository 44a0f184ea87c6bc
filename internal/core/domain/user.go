package domain

import "time"

// UserRole defines the role a user holds inside their company.
type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleManager  UserRole = "Manager"
	RoleEmployee UserRole = "Employee"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanManage reports whether users with this role may be assigned as managers
// and may decide on expenses.
func (r UserRole) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents a person working for a company.
type User struct {
	UserID       int64     `json:"userID"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         UserRole  `json:"role"`
	CompanyID    int64     `json:"companyID"`
	ManagerID    *int64    `json:"managerID,omitempty"` // nil when the user reports to nobody
	CreatedAt    time.Time `json:"createdAt"`
}
