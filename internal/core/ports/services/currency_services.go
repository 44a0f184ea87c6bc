package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// CurrencySvcFacade resolves the currency of a country.
type CurrencySvcFacade interface {
	// ResolveCurrency never fails; unknown countries and lookup errors yield the fallback code.
	ResolveCurrency(ctx context.Context, countryName string) string
}

// ExchangeRateSvcFacade converts amounts between currencies.
type ExchangeRateSvcFacade interface {
	// Convert returns amount expressed in the target currency, rounded to 2 places.
	// Fails with apperrors.ErrConversionUnavailable when no rate can be obtained.
	Convert(ctx context.Context, sourceCurrency, targetCurrency string, amount decimal.Decimal) (decimal.Decimal, error)
}
