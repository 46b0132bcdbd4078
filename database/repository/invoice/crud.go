package invoiceRepo

import (
	"context"
	"errors"
	"time"

	"gatherly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, invoice models.Invoice) (string, error) {
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = uuid.New().String()
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusDraft
	}
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, invoice)
	if err != nil {
		return "", err
	}
	return invoice.InvoiceID, nil
}

// GetByID returns an invoice by its ID.
func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"invoice_id": id}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("invoice not found")
		}
		return nil, err
	}
	return &invoice, nil
}

// Update replaces a stored invoice.
func (r *mongoInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	invoice.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"invoice_id": invoice.InvoiceID}, invoice)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

// AttachSnapshot appends a pricing snapshot to the history collection and
// stamps the invoice with the latest one. Snapshots are never updated in
// place: each pricing event inserts a new document.
func (r *mongoInvoiceRepo) AttachSnapshot(ctx context.Context, invoiceID string, snapshot models.InvoicePricingSnapshot) error {
	if _, err := r.snapshots.InsertOne(ctx, snapshot); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"pricing":    snapshot,
		"status":     models.InvoiceStatusPriced,
		"updated_at": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"invoice_id": invoiceID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

// GetSnapshots returns an invoice's pricing history, newest first.
func (r *mongoInvoiceRepo) GetSnapshots(ctx context.Context, invoiceID string) ([]models.InvoicePricingSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "calculated_at", Value: -1}})
	cursor, err := r.snapshots.Find(ctx, bson.M{"invoice_id": invoiceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []models.InvoicePricingSnapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// DeleteByID removes an invoice by ID.
func (r *mongoInvoiceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"invoice_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}
