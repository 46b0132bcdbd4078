package pricing

import (
	"context"
	"time"

	"gatherly/models"

	"github.com/google/uuid"
)

// BuildPricingSnapshot prices the order and flattens the result into an
// immutable, timestamped record suitable for persistence alongside an
// invoice. It holds no computation logic of its own: two calls with the same
// order state produce snapshots equal except for ID and CalculatedAt.
func (e *DefaultPricingEngine) BuildPricingSnapshot(ctx context.Context, invoiceID string, req models.QuoteRequest) models.InvoicePricingSnapshot {
	return SnapshotFromTotals(invoiceID, e.CalculateOrderTotals(ctx, req))
}

// SnapshotFromTotals denormalizes an already-computed OrderTotals into a
// pricing snapshot, stamping it with the current time.
func SnapshotFromTotals(invoiceID string, totals models.OrderTotals) models.InvoicePricingSnapshot {
	return models.InvoicePricingSnapshot{
		ID:                 uuid.New().String(),
		InvoiceID:          invoiceID,
		Subtotal:           totals.Subtotal,
		ServiceFee:         totals.ServiceFee,
		DeliveryFee:        totals.DeliveryFee,
		Adjustments:        totals.Adjustments,
		AdjustmentsTotal:   totals.AdjustmentsTotal,
		Tax:                totals.Tax,
		TaxRate:            totals.TaxData.Rate,
		TaxLocation:        totals.TaxData.Location,
		TaxDescription:     totals.TaxData.Description,
		Total:              totals.Total,
		IsTaxExempt:        totals.IsTaxExempt,
		IsServiceFeeWaived: totals.IsServiceFeeWaived,
		CalculatedAt:       time.Now(),
	}
}
