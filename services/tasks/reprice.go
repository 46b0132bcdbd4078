package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeInvoiceReprice = "invoice:reprice"
	TypeTaxCacheFlush  = "tax:cache_flush"
)

// RepricePayload identifies the invoice to reprice in the background.
type RepricePayload struct {
	InvoiceID string `json:"invoiceId"`
}

func NewRepriceTask(invoiceID string) (*asynq.Task, error) {
	b, err := json.Marshal(RepricePayload{InvoiceID: invoiceID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInvoiceReprice, b), nil
}

// NewTaxCacheFlushTask drops every cached tax rate; enqueued after bulk rate
// imports.
func NewTaxCacheFlushTask() *asynq.Task {
	return asynq.NewTask(TypeTaxCacheFlush, nil)
}
