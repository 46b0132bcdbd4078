// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"gatherly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (quote cache and friends).
	CacheClient *redis.Client
	// TaxCacheClient is the dedicated client for tax-rate caching.
	TaxCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitTaxCache initializes the Redis client for tax-rate caching (using DB from AppConfig).
func InitTaxCache() {
	TaxCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaxDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := TaxCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Tax Cache): %v", err)
	}
}

// GetTaxCacheClient returns the Redis client for tax-rate caching.
func GetTaxCacheClient() *redis.Client {
	if TaxCacheClient == nil {
		InitTaxCache()
	}
	return TaxCacheClient
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitCache()
	InitTaxCache()
}
