package models

import "time"

// InvoicePricingSnapshot is an immutable record of one complete pricing
// computation, persisted alongside an invoice. A new pricing event produces a
// new snapshot; an existing snapshot is never mutated.
type InvoicePricingSnapshot struct {
	ID                 string           `bson:"id" json:"id"`
	InvoiceID          string           `bson:"invoice_id" json:"invoiceId"`
	Subtotal           float64          `bson:"subtotal" json:"subtotal"`
	ServiceFee         float64          `bson:"service_fee" json:"serviceFee"`
	DeliveryFee        float64          `bson:"delivery_fee" json:"deliveryFee"`
	Adjustments        []AdjustmentLine `bson:"adjustments,omitempty" json:"adjustments,omitempty"`
	AdjustmentsTotal   float64          `bson:"adjustments_total" json:"adjustmentsTotal"`
	Tax                float64          `bson:"tax" json:"tax"`
	TaxRate            float64          `bson:"tax_rate" json:"taxRate"`
	TaxLocation        string           `bson:"tax_location,omitempty" json:"taxLocation,omitempty"`
	TaxDescription     string           `bson:"tax_description,omitempty" json:"taxDescription,omitempty"`
	Total              float64          `bson:"total" json:"total"`
	IsTaxExempt        bool             `bson:"is_tax_exempt" json:"isTaxExempt"`
	IsServiceFeeWaived bool             `bson:"is_service_fee_waived" json:"isServiceFeeWaived"`
	CalculatedAt       time.Time        `bson:"calculated_at" json:"calculatedAt"`
}

// Invoice lifecycle states.
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusPriced = "priced"
	InvoiceStatusPaid   = "paid"
)

// Invoice is a stored order awaiting or holding a pricing snapshot.
type Invoice struct {
	InvoiceID          string                  `bson:"invoice_id" json:"invoiceId"`
	CustomerName       string                  `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	Services           []ServiceSelection      `bson:"services" json:"services"`
	Selections         SelectionMap            `bson:"selections,omitempty" json:"selections,omitempty"`
	GuestCount         int                     `bson:"guest_count,omitempty" json:"guestCount,omitempty"`
	DeliveryAddress    string                  `bson:"delivery_address,omitempty" json:"deliveryAddress,omitempty"`
	Distances          map[string]float64      `bson:"distances,omitempty" json:"distances,omitempty"`
	Adjustments        []CustomAdjustment      `bson:"adjustments,omitempty" json:"adjustments,omitempty"`
	FeeSettings        *AdminFeeSettings       `bson:"fee_settings,omitempty" json:"feeSettings,omitempty"`
	IsTaxExempt        bool                    `bson:"is_tax_exempt" json:"isTaxExempt"`
	IsServiceFeeWaived bool                    `bson:"is_service_fee_waived" json:"isServiceFeeWaived"`
	Status             string                  `bson:"status" json:"status"` // draft, priced, paid
	PaymentID          string                  `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Pricing            *InvoicePricingSnapshot `bson:"pricing,omitempty" json:"pricing,omitempty"`
	CreatedAt          time.Time               `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time               `bson:"updated_at" json:"updatedAt"`
}
