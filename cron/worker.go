package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gatherly/config"
	"gatherly/services/invoice"
	"gatherly/services/tasks"
	"gatherly/services/tax"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitPricingWorker runs the async worker in background. It processes invoice
// reprice tasks and tax cache flushes.
func InitPricingWorker(invoiceSvc invoice.InvoiceService, taxSvc tax.RateService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeInvoiceReprice, handleRepriceTask(invoiceSvc))
	mux.HandleFunc(tasks.TypeTaxCacheFlush, handleTaxCacheFlush(taxSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[PricingWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PricingWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PricingWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRepriceTask(invoiceSvc invoice.InvoiceService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RepricePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RepriceHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		snapshot, err := invoiceSvc.Reprice(ctx, p.InvoiceID)
		if err != nil {
			log.Printf("[RepriceHandler] ❌ Failed to reprice invoice %s: %v", p.InvoiceID, err)
			return err
		}

		log.Printf("[RepriceHandler] 💰 Repriced invoice %s, total %.2f", p.InvoiceID, snapshot.Total)
		return nil
	}
}

func handleTaxCacheFlush(taxSvc tax.RateService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := taxSvc.InvalidateAll(ctx); err != nil {
			log.Printf("[TaxCacheHandler] ❌ Failed to flush tax cache: %v", err)
			return err
		}
		log.Println("[TaxCacheHandler] 🧹 Tax rate cache flushed")
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PricingWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
