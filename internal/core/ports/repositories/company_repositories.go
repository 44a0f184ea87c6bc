package repositories

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	// CompanyExists reports whether any company has been created.
	CompanyExists(ctx context.Context) (bool, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company and returns it with its assigned ID.
	SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	// LockBootstrap serialises concurrent signups for the rest of the current transaction.
	LockBootstrap(ctx context.Context) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
