package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pravaha_expense_app/internal/apperrors"
	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type exchangeRateService struct {
	BaseService
	rates providers.RateProvider
}

// NewExchangeRateService creates a converter backed by a live rate provider.
func NewExchangeRateService(rates providers.RateProvider) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rates: rates}
}

func (s *exchangeRateService) Convert(ctx context.Context, sourceCurrency, targetCurrency string, amount decimal.Decimal) (decimal.Decimal, error) {
	sourceCurrency = strings.ToUpper(sourceCurrency)
	targetCurrency = strings.ToUpper(targetCurrency)
	if sourceCurrency == targetCurrency {
		return amount, nil
	}

	rates, err := s.rates.LatestRates(ctx, sourceCurrency)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rates",
			slog.String("source", sourceCurrency), slog.String("target", targetCurrency))
		return decimal.Zero, fmt.Errorf("%w: %s to %s", apperrors.ErrConversionUnavailable, sourceCurrency, targetCurrency)
	}

	rate, ok := rates[targetCurrency]
	if !ok || !rate.IsPositive() {
		s.LogWarn(ctx, "Exchange rate missing from provider response",
			slog.String("source", sourceCurrency), slog.String("target", targetCurrency))
		return decimal.Zero, fmt.Errorf("%w: no rate from %s to %s", apperrors.ErrConversionUnavailable, sourceCurrency, targetCurrency)
	}

	return amount.Mul(rate).Round(2), nil
}
