package domain

import "time"

// Company is the single tenant the system is bootstrapped for.
type Company struct {
	CompanyID    int64     `json:"companyID"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"` // Base currency every expense is converted into
	CreatedAt    time.Time `json:"createdAt"`
}
