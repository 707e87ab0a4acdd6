package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"

	"github.com/akalomiris/reportly/internal/domain/model"
)

//go:embed templates/report.html
var reportTemplate string

//go:embed templates/style.css
var styleSheet string

const (
	// timestampLayout matches DD/MM/YYYY @ HH:MM:SS.
	timestampLayout = "02/01/2006 @ 15:04:05"

	// placeholder replaces absent scalar values in the rendered document.
	placeholder = "—"

	// pageMarginMM is the page margin applied on all sides (1.5cm).
	pageMarginMM = 15
)

// Renderer turns order views into a paginated PDF via an HTML template.
type Renderer struct {
	tmpl *template.Template
	loc  *time.Location
}

// New parses the embedded report template. binaryPath overrides the
// wkhtmltopdf lookup on PATH when non-empty.
func New(loc *time.Location, binaryPath string) (*Renderer, error) {
	if binaryPath != "" {
		wkhtmltopdf.SetPath(binaryPath)
	}

	r := &Renderer{loc: loc}
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"ts":     r.formatTimestamp,
		"tsOpt":  r.formatOptionalTimestamp,
		"amount": formatAmount,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

type templateContext struct {
	Style       template.CSS
	GeneratedAt string
	Orders      []model.OrderView
}

// Render produces the PDF bytes for the given orders. An empty order set
// still yields a well-formed document.
func (r *Renderer) Render(views []model.OrderView, generatedAt time.Time) ([]byte, error) {
	html, err := r.renderHTML(views, generatedAt)
	if err != nil {
		return nil, err
	}
	return r.renderPDF(html)
}

func (r *Renderer) renderHTML(views []model.OrderView, generatedAt time.Time) ([]byte, error) {
	ctx := templateContext{
		Style:       template.CSS(styleSheet),
		GeneratedAt: generatedAt.In(r.loc).Format(timestampLayout),
		Orders:      views,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderPDF(html []byte) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("init pdf generator: %w", err)
	}

	pdfg.MarginTop.Set(pageMarginMM)
	pdfg.MarginBottom.Set(pageMarginMM)
	pdfg.MarginLeft.Set(pageMarginMM)
	pdfg.MarginRight.Set(pageMarginMM)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("rasterize pdf: %w", err)
	}
	return pdfg.Bytes(), nil
}

func (r *Renderer) formatTimestamp(ts int64) string {
	if ts == 0 {
		return placeholder
	}
	return time.Unix(ts, 0).In(r.loc).Format(timestampLayout)
}

func (r *Renderer) formatOptionalTimestamp(ts *int64) string {
	if ts == nil {
		return placeholder
	}
	return r.formatTimestamp(*ts)
}

func formatAmount(amount *decimal.Decimal, symbol string) string {
	if amount == nil {
		return placeholder
	}
	return amount.StringFixed(2) + " " + symbol
}
