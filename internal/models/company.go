package models

import "time"

// Company mirrors a row of the companies table.
type Company struct {
	CompanyID    int64     `db:"company_id"`
	Name         string    `db:"name"`
	CurrencyCode string    `db:"currency_code"`
	CreatedAt    time.Time `db:"created_at"`
}
