package domain

import "github.com/shopspring/decimal"

// Expense categories suggested by receipt scanning.
const (
	CategoryTravel        = "Travel"
	CategoryLodging       = "Lodging"
	CategoryFood          = "Food"
	CategoryMiscellaneous = "Miscellaneous"
)

// ReceiptSuggestion is the best guess extracted from a scanned receipt.
// It is never authoritative; the user still submits explicit values.
type ReceiptSuggestion struct {
	FullText          string
	SuggestedAmount   *decimal.Decimal
	SuggestedCurrency *string
	SuggestedCategory string
}
