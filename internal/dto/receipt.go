package dto

import (
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessReceiptRequest carries a base64 encoded receipt image.
type ProcessReceiptRequest struct {
	ImageData string `json:"image_data" binding:"required"`
}

// ReceiptSuggestionResponse holds the OCR text and the values guessed from it.
type ReceiptSuggestionResponse struct {
	FullText          string           `json:"full_text"`
	SuggestedAmount   *decimal.Decimal `json:"suggested_amount"`
	SuggestedCurrency *string          `json:"suggested_currency"`
	SuggestedCategory string           `json:"suggested_category"`
}

// ToReceiptSuggestionResponse converts a domain.ReceiptSuggestion to its DTO
func ToReceiptSuggestionResponse(s *domain.ReceiptSuggestion) ReceiptSuggestionResponse {
	return ReceiptSuggestionResponse{
		FullText:          s.FullText,
		SuggestedAmount:   s.SuggestedAmount,
		SuggestedCurrency: s.SuggestedCurrency,
		SuggestedCategory: s.SuggestedCategory,
	}
}
