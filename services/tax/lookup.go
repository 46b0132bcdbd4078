package tax

import (
	"context"
	"encoding/json"
	"strings"

	"gatherly/models"
	"gatherly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// missingMarker is cached for locations with no configured rate, so repeated
// lookups for untaxed locations do not hammer Mongo.
const missingMarker = "__none__"

// Lookup resolves a location to its tax rate. A nil result with a nil error
// means no rate is configured. Locations are matched on a normalized
// lowercase key; a full address falls back to matching its trailing segments
// ("123 Main St, Austin, TX" tries the full string, then "austin, tx", then
// "tx").
func (s *DefaultRateService) Lookup(ctx context.Context, location string) (*models.TaxRate, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, nil
	}

	for _, candidate := range locationCandidates(location) {
		rate, err := s.lookupOne(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			return rate, nil
		}
	}
	return nil, nil
}

func (s *DefaultRateService) lookupOne(ctx context.Context, location string) (*models.TaxRate, error) {
	key := utils.TaxCachePrefix + strings.ToLower(location)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			if cached == missingMarker {
				return nil, nil
			}
			var rate models.TaxRate
			if jsonErr := json.Unmarshal([]byte(cached), &rate); jsonErr == nil {
				return &rate, nil
			}
		} else if err != redis.Nil && s.Logger != nil {
			s.Logger.Warn("tax cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	rate, err := s.Repo.GetByLocation(ctx, location)
	if err != nil {
		return nil, err
	}

	s.cacheResult(ctx, key, rate)
	return rate, nil
}

func (s *DefaultRateService) cacheResult(ctx context.Context, key string, rate *models.TaxRate) {
	if s.Cache == nil {
		return
	}
	payload := missingMarker
	if rate != nil {
		if data, err := json.Marshal(rate); err == nil {
			payload = string(data)
		}
	}
	if err := s.Cache.Set(ctx, key, payload, s.TTL).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("tax cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Upsert stores a rate row and invalidates its cache entry.
func (s *DefaultRateService) Upsert(ctx context.Context, rate models.TaxRate) error {
	if err := s.Repo.Upsert(ctx, rate); err != nil {
		return err
	}
	return s.Invalidate(ctx, rate.Location)
}

// GetAll returns every configured rate row, bypassing the cache.
func (s *DefaultRateService) GetAll(ctx context.Context) ([]models.TaxRate, error) {
	return s.Repo.GetAll(ctx)
}

// Invalidate drops the cache entry for one location.
func (s *DefaultRateService) Invalidate(ctx context.Context, location string) error {
	if s.Cache == nil {
		return nil
	}
	key := utils.TaxCachePrefix + strings.ToLower(strings.TrimSpace(location))
	return s.Cache.Del(ctx, key).Err()
}

// InvalidateAll drops every tax cache entry.
func (s *DefaultRateService) InvalidateAll(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	iter := s.Cache.Scan(ctx, 0, utils.TaxCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// locationCandidates yields the full location, then progressively shorter
// comma-delimited suffixes.
func locationCandidates(location string) []string {
	candidates := []string{location}
	parts := strings.Split(location, ",")
	for i := 1; i < len(parts); i++ {
		suffix := strings.TrimSpace(strings.Join(parts[i:], ","))
		if suffix != "" {
			candidates = append(candidates, suffix)
		}
	}
	return candidates
}
