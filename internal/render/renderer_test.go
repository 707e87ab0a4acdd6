package render

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akalomiris/reportly/internal/domain/model"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(time.FixedZone("UTC+3", 3*3600), "")
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return r
}

func sampleViews() []model.OrderView {
	amount := decimal.RequireFromString("42.50")
	finalized := int64(1714586645)
	return []model.OrderView{
		{
			DisplayID:       "ORD_1",
			CustomerName:    "Makis",
			CustomerSurname: "Zita",
			Amount:          &amount,
			CurrencySymbol:  "€",
			InitializedAt:   1714500245,
			FinalizedAt:     &finalized,
		},
		{
			DisplayID:       "ORD_2",
			CustomerName:    "Fotis",
			CustomerSurname: "ParaPente",
			CurrencySymbol:  "₺",
			InitializedAt:   1714500245,
		},
	}
}

func TestRenderHTMLFormatsTimestamps(t *testing.T) {
	r := newTestRenderer(t)
	generatedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	html, err := r.renderHTML(sampleViews(), generatedAt)
	if err != nil {
		t.Fatalf("renderHTML failed: %v", err)
	}

	doc := string(html)
	// 12:00 UTC is 15:00 in the +3h display zone.
	if !strings.Contains(doc, "Generated at 01/05/2024 @ 15:00:00") {
		t.Fatalf("expected generated-at line in display zone, got:\n%s", doc)
	}
	if !strings.Contains(doc, "ORD_1") || !strings.Contains(doc, "ORD_2") {
		t.Fatal("expected both display ids in document")
	}
	if !strings.Contains(doc, "42.50 €") {
		t.Fatal("expected formatted amount with currency symbol")
	}
}

func TestRenderHTMLPlaceholderForAbsentValues(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.renderHTML(sampleViews(), time.Now())
	if err != nil {
		t.Fatalf("renderHTML failed: %v", err)
	}

	doc := string(html)
	if !strings.Contains(doc, placeholder) {
		t.Fatal("expected placeholder for nil amount and open order")
	}
	if strings.Contains(doc, "<nil>") || strings.Contains(doc, "None") {
		t.Fatal("absent values must never render as nil markers")
	}
}

func TestRenderHTMLEmptyOrderSet(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.renderHTML(nil, time.Unix(1714500245, 0))
	if err != nil {
		t.Fatalf("renderHTML failed: %v", err)
	}
	doc := string(html)
	if !strings.Contains(doc, "No orders recorded.") {
		t.Fatal("expected empty-state message")
	}
	if strings.Contains(doc, "<table") {
		t.Fatal("expected no table for empty order set")
	}
}

func TestRenderHTMLIncludesStylesheet(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.renderHTML(nil, time.Now())
	if err != nil {
		t.Fatalf("renderHTML failed: %v", err)
	}
	if !strings.Contains(string(html), "border-collapse") {
		t.Fatal("expected embedded stylesheet in document head")
	}
}

func TestFormatTimestampZeroValue(t *testing.T) {
	r := newTestRenderer(t)
	if got := r.formatTimestamp(0); got != placeholder {
		t.Fatalf("expected placeholder for zero timestamp, got %q", got)
	}
}

func TestRenderProducesPDF(t *testing.T) {
	if _, err := exec.LookPath("wkhtmltopdf"); err != nil {
		t.Skip("wkhtmltopdf binary not available")
	}

	r := newTestRenderer(t)
	pdf, err := r.Render(sampleViews(), time.Now())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("expected PDF magic header")
	}

	empty, err := r.Render(nil, time.Now())
	if err != nil {
		t.Fatalf("Render of empty set failed: %v", err)
	}
	if !bytes.HasPrefix(empty, []byte("%PDF")) {
		t.Fatal("expected well-formed PDF for empty order set")
	}
}
