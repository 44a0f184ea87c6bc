package mapping

import (
	"database/sql"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/SscSPs/pravaha_expense_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		BaseAmount:    d.BaseAmount,
		Category:      d.Category,
		Description:   sql.NullString{String: d.Description, Valid: d.Description != ""},
		ExpenseDate:   d.Date,
		Status:        string(d.Status),
		UserID:        d.UserID,
		CompanyID:     d.CompanyID,
		DecidedBy:     nullInt64(d.DecidedBy),
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
		EmployeeName:  d.EmployeeName,
		BaseCurrency:  d.BaseCurrency,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		BaseAmount:    m.BaseAmount,
		BaseCurrency:  m.BaseCurrency,
		Category:      m.Category,
		Description:   m.Description.String,
		Date:          m.ExpenseDate,
		Status:        domain.ExpenseStatus(m.Status),
		UserID:        m.UserID,
		EmployeeName:  m.EmployeeName,
		CompanyID:     m.CompanyID,
		DecidedBy:     int64Ptr(m.DecidedBy),
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
