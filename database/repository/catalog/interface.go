package catalogRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.ServiceSelection, error)
	GetByCategory(ctx context.Context, category string) ([]models.ServiceSelection, error)
	Upsert(ctx context.Context, service models.ServiceSelection) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a new CatalogRepository instance using MongoDB.
// Stored documents are service records with their nested service_details
// catalogue payloads (menu items, combos, rental items, staff roles, delivery
// configuration).
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoCatalogRepo{
		coll: db.Collection("services"),
	}
}
