package model

import (
	"strconv"

	"github.com/shopspring/decimal"

	domainErrors "github.com/akalomiris/reportly/internal/domain/errors"
)

// DisplayIDPrefix is prepended to order identifiers in rendered reports.
const DisplayIDPrefix = "ORD_"

// Order is a single customer transaction. Timestamps are epoch seconds;
// Finalized stays nil while the order is open.
type Order struct {
	ID          int64
	CustomerID  int64
	Initialized int64
	Amount      *decimal.Decimal
	Currency    Currency
	Finalized   *int64
}

// Validate checks the order lifecycle invariant: an order cannot finalize
// before it was initialized.
func (o Order) Validate() error {
	if o.Finalized != nil && *o.Finalized < o.Initialized {
		return domainErrors.ErrInvalidLifecycle
	}
	if _, err := ParseCurrency(string(o.Currency)); err != nil {
		return err
	}
	return nil
}

// DisplayID returns the identifier shown in reports, e.g. "ORD_17".
func (o Order) DisplayID() string {
	return DisplayIDPrefix + strconv.FormatInt(o.ID, 10)
}

// OrderView is the flat presentation projection of an order joined with its
// customer, ready for template rendering.
type OrderView struct {
	DisplayID       string
	CustomerName    string
	CustomerSurname string
	Amount          *decimal.Decimal
	CurrencySymbol  string
	InitializedAt   int64
	FinalizedAt     *int64
}
