package services

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListCompanyUsers lists the users of the actor's company.
	ListCompanyUsers(ctx context.Context, actor domain.Principal) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser adds a user to the actor's company.
	CreateUser(ctx context.Context, actor domain.Principal, req dto.CreateUserRequest) (*domain.User, error)

	// AssignManager sets or clears the manager of a user.
	AssignManager(ctx context.Context, actor domain.Principal, req dto.AssignManagerRequest) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
