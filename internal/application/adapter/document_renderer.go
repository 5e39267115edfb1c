// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/university-finance/backend/internal/domain/entity"
)

// DocumentRenderer produces printable documents from already-computed data.
// The back office never inspects the rendered output; downstream conversion
// to PDF happens outside this service.
type DocumentRenderer interface {
	// RenderReceipt renders a printable receipt for the payment.
	RenderReceipt(payment *entity.Payment) ([]byte, error)

	// RenderReport renders a printable document for a finished report
	// structure under the given title.
	RenderReport(title string, report any) ([]byte, error)
}
