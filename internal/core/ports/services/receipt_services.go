package services

import (
	"context"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
)

// ReceiptSvcFacade scans receipt images.
type ReceiptSvcFacade interface {
	ExtractReceipt(ctx context.Context, imageBase64 string) (*domain.ReceiptSuggestion, error)
}
