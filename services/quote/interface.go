package quote

import (
	"context"
	"time"

	settingsRepo "gatherly/database/repository/settings"
	"gatherly/models"
	"gatherly/services/pricing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// QuoteService prices ad-hoc order quotes for the storefront and admin
// dashboards.
type QuoteService interface {
	Quote(ctx context.Context, req models.QuoteRequest) (models.OrderTotals, error)
	InvalidateCache(ctx context.Context) error
}

// DefaultQuoteService implements QuoteService over the pricing engine with a
// short-lived Redis cache. Identical requests within the TTL are served from
// cache; the engine is deterministic, so cached totals are exact.
type DefaultQuoteService struct {
	Engine   pricing.Engine
	Cache    *redis.Client
	TTL      time.Duration
	Logger   *zap.Logger
	Settings settingsRepo.SettingsRepository
}
