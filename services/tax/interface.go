package tax

import (
	"context"
	"time"

	taxrateRepo "gatherly/database/repository/taxrate"
	"gatherly/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateService resolves locations to tax rates and manages the stored rate
// table. Lookup satisfies pricing.TaxRateLookup.
type RateService interface {
	Lookup(ctx context.Context, location string) (*models.TaxRate, error)
	Upsert(ctx context.Context, rate models.TaxRate) error
	GetAll(ctx context.Context) ([]models.TaxRate, error)
	Invalidate(ctx context.Context, location string) error
	InvalidateAll(ctx context.Context) error
}

// DefaultRateService implements RateService with a Redis read-through cache
// over the Mongo rate table. The cache is an explicit, injected component with
// explicit invalidation; rate rows change rarely and reads happen on every
// priced order.
type DefaultRateService struct {
	Repo   taxrateRepo.TaxRateRepository
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}
