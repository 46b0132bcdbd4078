package quote

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"gatherly/models"
	"gatherly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Quote prices an order. Cache failures degrade to a fresh computation; the
// caller always gets totals.
func (s *DefaultQuoteService) Quote(ctx context.Context, req models.QuoteRequest) (models.OrderTotals, error) {
	if req.FeeSettings == nil && s.Settings != nil {
		stored, err := s.Settings.GetFeeSettings(ctx)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("fee settings lookup failed", zap.Error(err))
			}
		} else {
			req.FeeSettings = stored
		}
	}

	key, keyOK := cacheKey(req)

	if keyOK && s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var totals models.OrderTotals
			if jsonErr := json.Unmarshal([]byte(cached), &totals); jsonErr == nil {
				return totals, nil
			}
		} else if err != redis.Nil && s.Logger != nil {
			s.Logger.Warn("quote cache read failed", zap.Error(err))
		}
	}

	totals := s.Engine.CalculateOrderTotals(ctx, req)

	if keyOK && s.Cache != nil {
		if data, err := json.Marshal(totals); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.cacheTTL()).Err(); err != nil && s.Logger != nil {
				s.Logger.Warn("quote cache write failed", zap.Error(err))
			}
		}
	}

	return totals, nil
}

// cacheTTL is the configured TTL, or the package fallback when unset.
func (s *DefaultQuoteService) cacheTTL() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return utils.QuoteCacheTTL
}

// InvalidateCache drops every cached quote. Called when catalogue data or tax
// rates change.
func (s *DefaultQuoteService) InvalidateCache(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	iter := s.Cache.Scan(ctx, 0, utils.QuoteCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// cacheKey hashes the full request. Marshal failure just disables caching for
// that request.
func cacheKey(req models.QuoteRequest) (string, bool) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return utils.QuoteCachePrefix + hex.EncodeToString(sum[:]), true
}
