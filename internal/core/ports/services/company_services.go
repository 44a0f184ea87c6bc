package services

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
)

// CompanySvcFacade covers company bootstrap.
type CompanySvcFacade interface {
	// Signup creates the first company and its admin user. Fails with
	// apperrors.ErrForbidden once any company exists.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.Company, *domain.User, error)

	// GetCompanyByID retrieves a company by ID.
	GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
}
