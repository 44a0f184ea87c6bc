package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pravaha_expense_app/internal/core/ports/repositories"
	"github.com/SscSPs/pravaha_expense_app/internal/models"
	"github.com/SscSPs/pravaha_expense_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// bootstrapLockKey identifies the advisory lock taken by signup.
const bootstrapLockKey int64 = 0x7072617661686131

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(db *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `
		SELECT company_id, name, currency_code, created_at
		FROM companies
		WHERE company_id = $1;
	`
	var m models.Company
	err := r.DB(ctx).QueryRow(ctx, query, companyID).Scan(&m.CompanyID, &m.Name, &m.CurrencyCode, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %d: %w", companyID, err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) CompanyExists(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.DB(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies);`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for existing company: %w", err)
	}
	return exists, nil
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (name, currency_code, created_at)
		VALUES ($1, $2, $3)
		RETURNING company_id, created_at;
	`
	if err := r.DB(ctx).QueryRow(ctx, query, m.Name, m.CurrencyCode, m.CreatedAt).Scan(&m.CompanyID, &m.CreatedAt); err != nil {
		return nil, mapWriteError(err, "company")
	}

	saved := mapping.ToDomainCompany(m)
	return &saved, nil
}

// LockBootstrap must run inside a transaction; the lock is released on commit or rollback.
func (r *PgxCompanyRepository) LockBootstrap(ctx context.Context) error {
	if _, err := r.DB(ctx).Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, bootstrapLockKey); err != nil {
		return fmt.Errorf("failed to acquire bootstrap lock: %w", err)
	}
	return nil
}
