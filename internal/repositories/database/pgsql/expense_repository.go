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

// expenseSelect joins in the submitter's name and the company base currency.
const expenseSelect = `
	SELECT e.expense_id, e.amount, e.currency, e.base_amount, e.category, e.description,
	       e.expense_date, e.status, e.user_id, e.company_id, e.decided_by,
	       e.created_at, e.last_updated_at, u.full_name, c.currency_code
	FROM expenses e
	JOIN users u ON u.user_id = e.user_id
	JOIN companies c ON c.company_id = e.company_id
`

const expenseOrder = ` ORDER BY e.expense_date DESC, e.expense_id DESC;`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Amount,
		&m.Currency,
		&m.BaseAmount,
		&m.Category,
		&m.Description,
		&m.ExpenseDate,
		&m.Status,
		&m.UserID,
		&m.CompanyID,
		&m.DecidedBy,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.EmployeeName,
		&m.BaseCurrency,
	)
	return m, err
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, where string, args ...any) ([]domain.Expense, error) {
	rows, err := r.DB(ctx).Query(ctx, expenseSelect+` WHERE `+where+expenseOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(expenses), nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	m, err := scanExpense(r.DB(ctx).QueryRow(ctx, expenseSelect+` WHERE e.expense_id = $1;`, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %d: %w", expenseID, err)
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error) {
	return r.queryExpenses(ctx, `e.user_id = $1`, userID)
}

func (r *PgxExpenseRepository) FindExpensesByCompany(ctx context.Context, companyID int64) ([]domain.Expense, error) {
	return r.queryExpenses(ctx, `e.company_id = $1`, companyID)
}

func (r *PgxExpenseRepository) FindPendingExpenses(ctx context.Context, companyID int64, managerID *int64) ([]domain.Expense, error) {
	return r.queryExpenses(ctx,
		`e.company_id = $1 AND e.status = $2 AND ($3::bigint IS NULL OR u.manager_id = $3)`,
		companyID, string(domain.ExpenseStatusPending), managerID)
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (amount, currency, base_amount, category, description, expense_date,
		                      status, user_id, company_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING expense_id;
	`
	err := r.DB(ctx).QueryRow(ctx, query,
		m.Amount,
		m.Currency,
		m.BaseAmount,
		m.Category,
		m.Description,
		m.ExpenseDate,
		m.Status,
		m.UserID,
		m.CompanyID,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&m.ExpenseID)
	if err != nil {
		return nil, mapWriteError(err, "expense")
	}

	saved := mapping.ToDomainExpense(m)
	return &saved, nil
}

func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID int64, status domain.ExpenseStatus, decidedBy int64) error {
	query := `
		UPDATE expenses
		SET status = $2, decided_by = $3, last_updated_at = now()
		WHERE expense_id = $1 AND status = $4;
	`
	tag, err := r.DB(ctx).Exec(ctx, query, expenseID, string(status), decidedBy, string(domain.ExpenseStatusPending))
	if err != nil {
		return fmt.Errorf("failed to update status of expense %d: %w", expenseID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.DB(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM expenses WHERE expense_id = $1);`, expenseID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check expense %d: %w", expenseID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%w: expense %d has already been decided", apperrors.ErrInvalidState, expenseID)
}
