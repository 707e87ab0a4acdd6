package model

import (
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/akalomiris/reportly/internal/domain/errors"
)

func TestReportStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   ReportStatus
		value string
	}{
		{"requested", ReportStatusRequested, "REQUESTED"},
		{"rendering", ReportStatusRendering, "RENDERING"},
		{"available", ReportStatusAvailable, "AVAILABLE"},
		{"failed", ReportStatusFailed, "FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    Currency
		wantErr bool
	}{
		{"euro", "€", CurrencyEUR, false},
		{"lira", "₺", CurrencyTRY, false},
		{"dollar", "$", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCurrency(tc.raw)
			if tc.wantErr {
				if err != domainErrors.ErrInvalidCurrency {
					t.Fatalf("expected ErrInvalidCurrency, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOrderValidate(t *testing.T) {
	amount := decimal.NewFromFloat(42.50)
	finalizedEarly := int64(50)
	finalizedLate := int64(200)

	cases := []struct {
		name    string
		order   Order
		wantErr error
	}{
		{"open order", Order{ID: 1, Initialized: 100, Currency: CurrencyEUR}, nil},
		{"finalized after init", Order{ID: 2, Initialized: 100, Finalized: &finalizedLate, Amount: &amount, Currency: CurrencyTRY}, nil},
		{"finalized equals init", Order{ID: 3, Initialized: 50, Finalized: &finalizedEarly, Currency: CurrencyEUR}, nil},
		{"finalized before init", Order{ID: 4, Initialized: 100, Finalized: &finalizedEarly, Currency: CurrencyEUR}, domainErrors.ErrInvalidLifecycle},
		{"bad currency", Order{ID: 5, Initialized: 100, Currency: "$"}, domainErrors.ErrInvalidCurrency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.order.Validate(); err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestOrderDisplayID(t *testing.T) {
	order := Order{ID: 17}
	if got := order.DisplayID(); got != "ORD_17" {
		t.Fatalf("expected ORD_17, got %s", got)
	}
}

func TestCustomerFullName(t *testing.T) {
	c := Customer{Name: "Makis", Surname: "Zita"}
	if got := c.FullName(); got != "Makis Zita" {
		t.Fatalf("unexpected full name %q", got)
	}
}

func TestNewReport(t *testing.T) {
	first := NewReport()
	second := NewReport()
	if first.Status != ReportStatusRequested {
		t.Fatalf("expected fresh report to be requested, got %s", first.Status)
	}
	if first.UID == second.UID {
		t.Fatal("expected distinct report identifiers")
	}
}
