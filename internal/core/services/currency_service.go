package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
)

const (
	// DefaultCountry is used when signup does not name a country.
	DefaultCountry = "India"
	// FallbackCurrency is used whenever a country's currency cannot be determined.
	FallbackCurrency = "USD"
)

type currencyService struct {
	BaseService
	directory providers.CountryDirectory
}

// NewCurrencyService creates a currency resolver backed by a country directory.
func NewCurrencyService(directory providers.CountryDirectory) portssvc.CurrencySvcFacade {
	return &currencyService{directory: directory}
}

func (s *currencyService) ResolveCurrency(ctx context.Context, countryName string) string {
	countryName = strings.TrimSpace(countryName)
	if countryName == "" {
		countryName = DefaultCountry
	}

	countries, err := s.directory.ListCountries(ctx)
	if err != nil {
		s.GetLogger(ctx).Warn("Country directory unavailable, using fallback currency",
			slog.String("country", countryName),
			slog.String("fallback", FallbackCurrency),
			slog.String("error", err.Error()))
		return FallbackCurrency
	}

	for _, c := range countries {
		if !strings.EqualFold(c.CommonName, countryName) {
			continue
		}
		if len(c.CurrencyCodes) > 0 {
			return c.CurrencyCodes[0]
		}
		break
	}

	s.LogWarn(ctx, "No currency found for country, using fallback currency",
		slog.String("country", countryName),
		slog.String("fallback", FallbackCurrency))
	return FallbackCurrency
}
