package repositories

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsersByCompany lists every user of a company.
	FindUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns it with its assigned ID.
	// A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateManager sets or clears the manager of a user.
	UpdateManager(ctx context.Context, userID int64, managerID *int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
