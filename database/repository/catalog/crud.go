package catalogRepo

import (
	"context"
	"errors"

	"gatherly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns one service record with its catalogue payload, or
// (nil, nil) when no record exists.
func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.ServiceSelection, error) {
	var service models.ServiceSelection
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// GetByCategory returns all service records in a category. Both category
// spellings ("party_rentals" and "party-rentals") match.
func (r *mongoCatalogRepo) GetByCategory(ctx context.Context, category string) ([]models.ServiceSelection, error) {
	normalized := models.NormalizeCategory(category)
	filter := bson.M{"category": bson.M{"$in": []string{normalized, category}}}
	if normalized == models.CategoryPartyRentals {
		filter = bson.M{"category": bson.M{"$in": []string{models.CategoryPartyRentals, "party-rentals"}}}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.ServiceSelection
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Upsert inserts or replaces a service record.
func (r *mongoCatalogRepo) Upsert(ctx context.Context, service models.ServiceSelection) error {
	if service.ID == "" {
		return errors.New("service id is required")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": service.ID}, service, opts)
	return err
}

// DeleteByID removes a service record.
func (r *mongoCatalogRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}
