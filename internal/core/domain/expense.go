package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the approval state of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "Pending"
	ExpenseStatusApproved ExpenseStatus = "Approved"
	ExpenseStatusRejected ExpenseStatus = "Rejected"
)

// IsDecision reports whether s is a status a manager may set.
func (s ExpenseStatus) IsDecision() bool {
	return s == ExpenseStatusApproved || s == ExpenseStatusRejected
}

// DateLayout is the wire format of expense dates.
const DateLayout = "2006-01-02"

// Expense is a single cost item submitted by a user.
// BaseAmount is fixed at submission time and never recomputed.
type Expense struct {
	ExpenseID     int64           `json:"expenseID"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	BaseCurrency  string          `json:"baseCurrency"` // Read-side only, joined from the company
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Status        ExpenseStatus   `json:"status"`
	UserID        int64           `json:"userID"`
	EmployeeName  string          `json:"employeeName"` // Read-side only, joined from the user
	CompanyID     int64           `json:"companyID"`
	DecidedBy     *int64          `json:"decidedBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// IsOwnedBy reports whether the expense was submitted by userID.
func (e Expense) IsOwnedBy(userID int64) bool {
	return e.UserID == userID
}
