package taxrateRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TaxRateRepository interface {
	Upsert(ctx context.Context, rate models.TaxRate) error
	GetByLocation(ctx context.Context, location string) (*models.TaxRate, error)
	GetAll(ctx context.Context) ([]models.TaxRate, error)
	DeleteByLocation(ctx context.Context, location string) error
}

type mongoTaxRateRepo struct {
	coll *mongo.Collection
}

// NewMongoTaxRateRepo returns a new TaxRateRepository instance using MongoDB.
func NewMongoTaxRateRepo() TaxRateRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoTaxRateRepo{
		coll: db.Collection("tax_rates"),
	}
}
