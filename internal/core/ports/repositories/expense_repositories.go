package repositories

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data.
// All list methods order by expense date, newest first.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)
	FindExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error)
	FindExpensesByCompany(ctx context.Context, companyID int64) ([]domain.Expense, error)

	// FindPendingExpenses lists pending expenses of a company. When managerID is set,
	// only expenses of that manager's direct reports are returned.
	FindPendingExpenses(ctx context.Context, companyID int64, managerID *int64) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpenseStatus changes the status of a pending expense.
	// Returns apperrors.ErrInvalidState when the expense is no longer pending.
	UpdateExpenseStatus(ctx context.Context, expenseID int64, status domain.ExpenseStatus, decidedBy int64) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
