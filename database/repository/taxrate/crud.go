package taxrateRepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gatherly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert inserts or replaces the rate row for a location.
func (r *mongoTaxRateRepo) Upsert(ctx context.Context, rate models.TaxRate) error {
	rate.Location = normalizeLocation(rate.Location)
	if rate.Location == "" {
		return errors.New("tax rate location is required")
	}
	rate.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"location": rate.Location}, rate, opts)
	return err
}

// GetByLocation returns the rate row for a location, or (nil, nil) when no
// rate is configured. Matching is case-insensitive on the normalized key.
func (r *mongoTaxRateRepo) GetByLocation(ctx context.Context, location string) (*models.TaxRate, error) {
	var rate models.TaxRate
	err := r.coll.FindOne(ctx, bson.M{"location": normalizeLocation(location)}).Decode(&rate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

// GetAll returns every configured rate row.
func (r *mongoTaxRateRepo) GetAll(ctx context.Context) ([]models.TaxRate, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rates []models.TaxRate
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// DeleteByLocation removes the rate row for a location.
func (r *mongoTaxRateRepo) DeleteByLocation(ctx context.Context, location string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"location": normalizeLocation(location)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("tax rate not found")
	}
	return nil
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
