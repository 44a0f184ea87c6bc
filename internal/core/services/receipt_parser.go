package services

import (
	"regexp"
	"strings"

	"github.com/SscSPs/pravaha_expense_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountPattern matches a currency marker followed by a number. Grouped
// thousands are tried first so "8,300.00" is read whole.
var amountPattern = regexp.MustCompile(`([A-Z]{3}|\$|€|£|¥)\s*(\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{2})?)`)

var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

// categoryRules are checked in order; the first rule with a keyword found
// anywhere in the text wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{domain.CategoryTravel, []string{"uber", "taxi", "transport", "flight", "train"}},
	{domain.CategoryLodging, []string{"hotel", "lodging", "inn", "resort"}},
	{domain.CategoryFood, []string{"food", "restaurant", "cafe", "dinner"}},
}

// ParseReceiptText guesses the total, its currency and a category from OCR text.
// The last amount on the receipt is taken as the total.
func ParseReceiptText(text string) domain.ReceiptSuggestion {
	suggestion := domain.ReceiptSuggestion{
		FullText:          text,
		SuggestedCategory: suggestCategory(text),
	}

	matches := amountPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return suggestion
	}
	last := matches[len(matches)-1]

	amount, err := decimal.NewFromString(strings.ReplaceAll(last[2], ",", ""))
	if err != nil {
		return suggestion
	}

	currency := last[1]
	if code, ok := currencySymbols[currency]; ok {
		currency = code
	}
	currency = strings.ToUpper(currency)

	suggestion.SuggestedAmount = &amount
	suggestion.SuggestedCurrency = &currency
	return suggestion
}

func suggestCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryMiscellaneous
}
