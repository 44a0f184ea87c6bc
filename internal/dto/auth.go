package dto

import (
	"time"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
)

// SignupRequest bootstraps the company and its first administrator.
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Country     string `json:"country"` // Defaults to India
}

// SignupResponse is returned once the company and admin exist.
type SignupResponse struct {
	Message         string `json:"message"`
	CompanyID       int64  `json:"company_id"`
	CompanyName     string `json:"company_name"`
	CompanyCurrency string `json:"company_currency"`
	AdminUserID     int64  `json:"admin_user_id"`
}

// LoginRequest holds the credentials for a login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Message   string          `json:"message"`
	UserID    int64           `json:"user_id"`
	Email     string          `json:"email"`
	FullName  string          `json:"full_name"`
	Role      domain.UserRole `json:"role"`
	CompanyID int64           `json:"company_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}
