package dto

import (
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to submit an expense.
// The submitting user is taken from the access token.
type CreateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Currency    string           `json:"currency" binding:"required,currency_code"`
	Category    string           `json:"category" binding:"required,max=50"`
	Description string           `json:"description" binding:"max=255"`
	Date        string           `json:"date" binding:"required"` // YYYY-MM-DD
}

// CreateExpenseResponse is returned after an expense was recorded.
type CreateExpenseResponse struct {
	Message      string               `json:"message"`
	ExpenseID    int64                `json:"expense_id"`
	Amount       decimal.Decimal      `json:"amount"`
	Currency     string               `json:"currency"`
	BaseAmount   decimal.Decimal      `json:"base_amount"`
	BaseCurrency string               `json:"base_currency"`
	Status       domain.ExpenseStatus `json:"status"`
}

// UpdateExpenseStatusRequest carries a manager's decision.
type UpdateExpenseStatusRequest struct {
	Status domain.ExpenseStatus `json:"status" binding:"required"`
}

// UpdateExpenseStatusResponse is returned after a decision was stored.
type UpdateExpenseStatusResponse struct {
	Message   string               `json:"message"`
	ExpenseID int64                `json:"expense_id"`
	Status    domain.ExpenseStatus `json:"status"`
}

// ListPendingExpensesParams defines query parameters for the pending queue.
type ListPendingExpensesParams struct {
	ManagerID *int64 `form:"manager_id"`
}

// ExpenseResponse is the public view of an expense.
type ExpenseResponse struct {
	ExpenseID    int64                `json:"id"`
	UserID       int64                `json:"user_id"`
	EmployeeName string               `json:"employee_name"`
	Amount       decimal.Decimal      `json:"amount"`
	Currency     string               `json:"currency"`
	BaseAmount   decimal.Decimal      `json:"base_amount"`
	BaseCurrency string               `json:"base_currency"`
	Category     string               `json:"category"`
	Description  string               `json:"description"`
	Date         string               `json:"date"`
	Status       domain.ExpenseStatus `json:"status"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		UserID:       e.UserID,
		EmployeeName: e.EmployeeName,
		Amount:       e.Amount,
		Currency:     e.Currency,
		BaseAmount:   e.BaseAmount,
		BaseCurrency: e.BaseCurrency,
		Category:     e.Category,
		Description:  e.Description,
		Date:         e.Date.Format(domain.DateLayout),
		Status:       e.Status,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to a slice of ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
