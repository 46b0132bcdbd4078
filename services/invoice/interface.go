package invoice

import (
	"context"

	invoiceRepo "gatherly/database/repository/invoice"
	"gatherly/models"
	"gatherly/services/pricing"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InvoiceService manages invoices and their pricing snapshots.
type InvoiceService interface {
	Create(ctx context.Context, invoice models.Invoice) (string, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Reprice(ctx context.Context, id string) (*models.InvoicePricingSnapshot, error)
	GetPricingHistory(ctx context.Context, id string) ([]models.InvoicePricingSnapshot, error)
	EnqueueReprice(ctx context.Context, id string) error
	CreatePaymentIntent(ctx context.Context, id string) (*PaymentIntentResult, error)
}

// PaymentIntentResult carries what the payment UI needs to collect payment for
// a priced invoice.
type PaymentIntentResult struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	AmountCents     int64   `json:"amountCents"`
	Total           float64 `json:"total"`
}

// DefaultInvoiceService implements InvoiceService. TaskClient may be nil when
// background repricing is disabled (tests, one-off tooling).
type DefaultInvoiceService struct {
	Repo       invoiceRepo.InvoiceRepository
	Engine     pricing.Engine
	TaskClient *asynq.Client
	Logger     *zap.Logger
}
