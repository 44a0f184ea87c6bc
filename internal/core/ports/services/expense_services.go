package services

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	ListUserExpenses(ctx context.Context, actor domain.Principal, userID int64) ([]domain.Expense, error)
	ListCompanyExpenses(ctx context.Context, actor domain.Principal, companyID int64) ([]domain.Expense, error)
	ListPendingExpenses(ctx context.Context, actor domain.Principal, managerID *int64) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	// SubmitExpense records an expense for the actor, converting the amount
	// to the company base currency.
	SubmitExpense(ctx context.Context, actor domain.Principal, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// DecideExpense approves or rejects a pending expense.
	DecideExpense(ctx context.Context, actor domain.Principal, expenseID int64, status domain.ExpenseStatus) (*domain.Expense, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
