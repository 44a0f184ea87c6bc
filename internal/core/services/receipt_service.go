package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
)

type receiptService struct {
	BaseService
	detector providers.TextDetector
}

// NewReceiptService creates the receipt scanner. A nil detector means text
// detection could not be initialised and every scan fails with
// apperrors.ErrOCRNotInitialized.
func NewReceiptService(detector providers.TextDetector) portssvc.ReceiptSvcFacade {
	return &receiptService{detector: detector}
}

func (s *receiptService) ExtractReceipt(ctx context.Context, imageBase64 string) (*domain.ReceiptSuggestion, error) {
	if s.detector == nil {
		return nil, apperrors.ErrOCRNotInitialized
	}

	image, err := decodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	text, err := s.detector.DetectText(ctx, image)
	if err != nil {
		s.LogError(ctx, err, "Text detection failed", slog.Int("image_bytes", len(image)))
		return nil, fmt.Errorf("failed to detect receipt text: %w", err)
	}

	suggestion := ParseReceiptText(text)
	s.LogDebug(ctx, "Receipt scanned",
		slog.String("category", suggestion.SuggestedCategory),
		slog.Bool("amount_found", suggestion.SuggestedAmount != nil))
	return &suggestion, nil
}

// decodeImage accepts raw base64 or a data URL.
func decodeImage(data string) ([]byte, error) {
	data = strings.Join(strings.Fields(data), "")
	if strings.HasPrefix(data, "data:") {
		if i := strings.Index(data, ";base64,"); i >= 0 {
			data = data[i+len(";base64,"):]
		}
	}
	if data == "" {
		return nil, fmt.Errorf("%w: image data is empty", apperrors.ErrInvalidImage)
	}

	image, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		if len(data)%4 != 0 {
			return nil, fmt.Errorf("%w: invalid base64 string (padding error)", apperrors.ErrInvalidImage)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidImage, err)
	}
	return image, nil
}
