package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherly/config"
	"gatherly/cron"
	"gatherly/database"
	catalogRepo "gatherly/database/repository/catalog"
	invoiceRepoPkg "gatherly/database/repository/invoice"
	settingsRepo "gatherly/database/repository/settings"
	taxrateRepo "gatherly/database/repository/taxrate"
	"gatherly/handlers"
	"gatherly/middleware"
	"gatherly/models"
	"gatherly/routes"
	"gatherly/services/invoice"
	"gatherly/services/pricing"
	"gatherly/services/quote"
	"gatherly/services/tax"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	invRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	rateRepo := taxrateRepo.NewMongoTaxRateRepo()
	feeRepo := settingsRepo.NewMongoSettingsRepo()

	// services.
	taxService := &tax.DefaultRateService{
		Repo:   rateRepo,
		Cache:  utils.GetTaxCacheClient(),
		TTL:    time.Duration(config.AppConfig.TaxRateCacheTTL) * time.Second,
		Logger: logger,
	}

	feePct := config.AppConfig.ServiceFeePercentage
	feeFixed := config.AppConfig.ServiceFeeFixed
	pricingEngine := &pricing.DefaultPricingEngine{
		TaxRates: taxService,
		FeeDefaults: &models.AdminFeeSettings{
			ServiceFeePercentage: &feePct,
			ServiceFeeFixed:      &feeFixed,
			ServiceFeeType:       config.AppConfig.ServiceFeeType,
		},
		Logger: logger,
	}

	quoteService := &quote.DefaultQuoteService{
		Engine:   pricingEngine,
		Cache:    utils.GetCacheClient(),
		TTL:      time.Duration(config.AppConfig.QuoteCacheTTL) * time.Second,
		Logger:   logger,
		Settings: feeRepo,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	invoiceService := &invoice.DefaultInvoiceService{
		Repo:       invRepo,
		Engine:     pricingEngine,
		TaskClient: taskClient,
		Logger:     logger,
	}

	cron.InitPricingWorker(invoiceService, taxService)

	quoteHandler := handlers.NewQuoteHandler(quoteService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	catalogHandler := handlers.NewCatalogHandler(catRepo, quoteService)
	adminHandler := handlers.NewAdminHandler(feeRepo, taxService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Quote endpoints.
		ComputeQuoteHandler: quoteHandler.ComputeQuoteHandler,

		// Invoice endpoints.
		CreateInvoiceHandler:       invoiceHandler.CreateInvoiceHandler,
		GetInvoiceHandler:          invoiceHandler.GetInvoiceHandler,
		RepriceInvoiceHandler:      invoiceHandler.RepriceInvoiceHandler,
		GetPricingHistoryHandler:   invoiceHandler.GetPricingHistoryHandler,
		CreatePaymentIntentHandler: invoiceHandler.CreatePaymentIntentHandler,

		// Catalog endpoints.
		GetServiceHandler:            catalogHandler.GetServiceHandler,
		GetServicesByCategoryHandler: catalogHandler.GetServicesByCategoryHandler,
		UpsertServiceHandler:         catalogHandler.UpsertServiceHandler,
		DeleteServiceHandler:         catalogHandler.DeleteServiceHandler,

		// Admin endpoints.
		AdminLoginHandler:        adminHandler.AdminLoginHandler,
		GetFeeSettingsHandler:    adminHandler.GetFeeSettingsHandler,
		UpdateFeeSettingsHandler: adminHandler.UpdateFeeSettingsHandler,
		ListTaxRatesHandler:      adminHandler.ListTaxRatesHandler,
		UpsertTaxRateHandler:     adminHandler.UpsertTaxRateHandler,
		FlushTaxCacheHandler:     adminHandler.FlushTaxCacheHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetTaxCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
