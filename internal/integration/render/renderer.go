// Package render produces printable HTML documents for receipts and reports.
// Output is self-contained HTML; PDF conversion happens downstream.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
)

//go:embed *.html
var templateFS embed.FS

// HTMLRenderer implements the adapter.DocumentRenderer interface.
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer creates a renderer with the embedded document templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse document templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

type receiptData struct {
	ReceiptNumber string
	StudentID     string
	StudentName   string
	FeeType       string
	PaymentMethod string
	Amount        string
	Currency      string
	AmountUSD     string
	PaymentDate   string
	Notes         string
	GeneratedAt   string
}

// RenderReceipt renders a printable receipt for the payment.
func (r *HTMLRenderer) RenderReceipt(payment *entity.Payment) ([]byte, error) {
	data := receiptData{
		ReceiptNumber: payment.ReceiptNumber,
		StudentID:     payment.StudentID,
		StudentName:   payment.StudentName,
		FeeType:       string(payment.FeeType),
		PaymentMethod: string(payment.PaymentMethod),
		Amount:        payment.Amount.StringFixed(2),
		Currency:      payment.Currency,
		PaymentDate:   payment.PaymentDate.Format("2006-01-02"),
		Notes:         payment.Notes,
		GeneratedAt:   time.Now().UTC().Format(time.RFC1123),
	}
	if payment.AmountUSD != nil {
		data.AmountUSD = payment.AmountUSD.StringFixed(2)
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "receipt.html", data); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

type reportData struct {
	Title       string
	GeneratedAt string
	Body        string
}

// RenderReport renders a printable document for a finished report structure.
// The report payload is pretty-printed; layout concerns stay downstream.
func (r *HTMLRenderer) RenderReport(title string, report any) ([]byte, error) {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	var buf bytes.Buffer
	err = r.templates.ExecuteTemplate(&buf, "report.html", reportData{
		Title:       title,
		GeneratedAt: time.Now().UTC().Format(time.RFC1123),
		Body:        string(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

var _ adapter.DocumentRenderer = (*HTMLRenderer)(nil)
