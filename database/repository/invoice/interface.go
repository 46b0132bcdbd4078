package invoiceRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice models.Invoice) (string, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	AttachSnapshot(ctx context.Context, invoiceID string, snapshot models.InvoicePricingSnapshot) error
	GetSnapshots(ctx context.Context, invoiceID string) ([]models.InvoicePricingSnapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoInvoiceRepo struct {
	coll      *mongo.Collection
	snapshots *mongo.Collection
}

// NewMongoInvoiceRepo returns a new InvoiceRepository instance using MongoDB.
// Snapshots live in their own collection: they are append-only history, one
// document per pricing event.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoInvoiceRepo{
		coll:      db.Collection("invoices"),
		snapshots: db.Collection("invoice_pricing_snapshots"),
	}
}
