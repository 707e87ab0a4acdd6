package model

import domainErrors "github.com/akalomiris/reportly/internal/domain/errors"

// Currency is the symbol stored alongside an order amount.
type Currency string

const (
	CurrencyEUR Currency = "€"
	CurrencyTRY Currency = "₺"
)

// Currencies lists every supported currency.
func Currencies() []Currency {
	return []Currency{CurrencyEUR, CurrencyTRY}
}

// ParseCurrency validates a raw symbol read from storage or input.
func ParseCurrency(raw string) (Currency, error) {
	switch Currency(raw) {
	case CurrencyEUR, CurrencyTRY:
		return Currency(raw), nil
	}
	return "", domainErrors.ErrInvalidCurrency
}

// Symbol returns the display glyph for the currency.
func (c Currency) Symbol() string {
	return string(c)
}
