package settingsRepo

import (
	"context"
	"errors"
	"time"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// feeSettingsKey is the singleton document id for platform fee settings.
const feeSettingsKey = "fee_settings"

type SettingsRepository interface {
	GetFeeSettings(ctx context.Context) (*models.AdminFeeSettings, error)
	SetFeeSettings(ctx context.Context, settings models.AdminFeeSettings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo returns a new SettingsRepository instance using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoSettingsRepo{
		coll: db.Collection("settings"),
	}
}

type feeSettingsDoc struct {
	Key       string                  `bson:"key"`
	Settings  models.AdminFeeSettings `bson:"settings"`
	UpdatedAt time.Time               `bson:"updated_at"`
}

// GetFeeSettings returns the stored fee settings, or (nil, nil) when none
// have been saved yet; callers fall back to configured defaults.
func (r *mongoSettingsRepo) GetFeeSettings(ctx context.Context) (*models.AdminFeeSettings, error) {
	var doc feeSettingsDoc
	err := r.coll.FindOne(ctx, bson.M{"key": feeSettingsKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc.Settings, nil
}

// SetFeeSettings stores the fee settings singleton.
func (r *mongoSettingsRepo) SetFeeSettings(ctx context.Context, settings models.AdminFeeSettings) error {
	doc := feeSettingsDoc{
		Key:       feeSettingsKey,
		Settings:  settings,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"key": feeSettingsKey}, doc, opts)
	return err
}
