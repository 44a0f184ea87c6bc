package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// Country is one entry of the country directory.
type Country struct {
	CommonName string
	// CurrencyCodes keeps the order in which the directory lists them.
	CurrencyCodes []string
}

// CountryDirectory lists countries with their currencies.
type CountryDirectory interface {
	ListCountries(ctx context.Context) ([]Country, error)
}

// RateProvider returns exchange rates as units of each currency per one unit of base.
type RateProvider interface {
	LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}

// TextDetector runs OCR over raw image bytes and returns all detected text.
type TextDetector interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}
