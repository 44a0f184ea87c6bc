package dto

import (
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
)

// CreateUserRequest defines the data an admin sends to add a user to their company.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role"` // Defaults to Employee
}

// CreateUserResponse is returned after a user was created.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// AssignManagerRequest sets or clears (ManagerID == nil) a user's manager.
type AssignManagerRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	ManagerID  *int64 `json:"manager_id"`
}

// AssignManagerResponse is returned after the manager reference changed.
type AssignManagerResponse struct {
	Message      string `json:"message"`
	EmployeeID   int64  `json:"employee_id"`
	NewManagerID *int64 `json:"new_manager_id"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID    int64           `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"full_name"`
	Role      domain.UserRole `json:"role"`
	CompanyID int64           `json:"company_id"`
	ManagerID *int64          `json:"manager_id"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		ManagerID: user.ManagerID,
	}
}

// ToListUserResponse converts a slice of domain.User to a slice of UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return userResponses
}
