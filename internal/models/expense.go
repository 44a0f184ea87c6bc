package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors a row of the expenses table, plus the joined
// employee name and company currency used by read queries.
type Expense struct {
	ExpenseID     int64           `db:"expense_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	BaseAmount    decimal.Decimal `db:"base_amount"`
	Category      string          `db:"category"`
	Description   sql.NullString  `db:"description"`
	ExpenseDate   time.Time       `db:"expense_date"`
	Status        string          `db:"status"`
	UserID        int64           `db:"user_id"`
	CompanyID     int64           `db:"company_id"`
	DecidedBy     sql.NullInt64   `db:"decided_by"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`

	EmployeeName string `db:"employee_name"`
	BaseCurrency string `db:"base_currency"`
}
