package invoice

import (
	"context"
	"fmt"

	"gatherly/models"
	"gatherly/services/tasks"

	"go.uber.org/zap"
)

// Create stores a new invoice in draft status and returns its ID.
func (s *DefaultInvoiceService) Create(ctx context.Context, inv models.Invoice) (string, error) {
	id, err := s.Repo.Create(ctx, inv)
	if err != nil {
		return "", fmt.Errorf("failed to create invoice: %w", err)
	}
	s.Logger.Info("invoice created", zap.String("invoice", id))
	return id, nil
}

// GetByID returns a stored invoice.
func (s *DefaultInvoiceService) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}

// Reprice recomputes an invoice's totals from its stored order state and
// persists a fresh pricing snapshot. The previous snapshot stays in history
// untouched.
func (s *DefaultInvoiceService) Reprice(ctx context.Context, id string) (*models.InvoicePricingSnapshot, error) {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := s.Engine.BuildPricingSnapshot(ctx, inv.InvoiceID, quoteRequestFor(inv))
	if err := s.Repo.AttachSnapshot(ctx, inv.InvoiceID, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist pricing snapshot: %w", err)
	}

	s.Logger.Info("invoice repriced",
		zap.String("invoice", inv.InvoiceID),
		zap.Float64("total", snapshot.Total))
	return &snapshot, nil
}

// GetPricingHistory returns every snapshot ever computed for an invoice,
// newest first.
func (s *DefaultInvoiceService) GetPricingHistory(ctx context.Context, id string) ([]models.InvoicePricingSnapshot, error) {
	return s.Repo.GetSnapshots(ctx, id)
}

// EnqueueReprice schedules a background reprice of one invoice.
func (s *DefaultInvoiceService) EnqueueReprice(ctx context.Context, id string) error {
	if s.TaskClient == nil {
		_, err := s.Reprice(ctx, id)
		return err
	}

	task, err := tasks.NewRepriceTask(id)
	if err != nil {
		return err
	}
	if _, err := s.TaskClient.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue reprice task: %w", err)
	}
	s.Logger.Info("reprice task enqueued", zap.String("invoice", id))
	return nil
}

// quoteRequestFor maps a stored invoice back into the pricing engine's input.
func quoteRequestFor(inv *models.Invoice) models.QuoteRequest {
	return models.QuoteRequest{
		Services:           inv.Services,
		Selections:         inv.Selections,
		GuestCount:         inv.GuestCount,
		DeliveryAddress:    inv.DeliveryAddress,
		Distances:          inv.Distances,
		Adjustments:        inv.Adjustments,
		FeeSettings:        inv.FeeSettings,
		IsTaxExempt:        inv.IsTaxExempt,
		IsServiceFeeWaived: inv.IsServiceFeeWaived,
	}
}
