package routes

import (
	"net/http"
	"time"

	"gatherly/handlers"
	"gatherly/middleware"
	"gatherly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers the ad-hoc quote endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quote")
	{
		api.POST("", hb.ComputeQuoteHandler)
	}
}

// RegisterInvoiceRoutes registers invoice and pricing-snapshot endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.POST("", hb.CreateInvoiceHandler)
		api.GET("/:id", hb.GetInvoiceHandler)
		api.POST("/:id/pricing", hb.RepriceInvoiceHandler)
		api.GET("/:id/pricing", hb.GetPricingHistoryHandler)
		api.POST("/:id/payment-intent", hb.CreatePaymentIntentHandler)
	}
}

// RegisterCatalogRoutes registers public catalogue read endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/:id", hb.GetServiceHandler)
		api.GET("/category/:category", hb.GetServicesByCategoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterAdminRoutes sets up endpoints for admin operations. Everything but
// login requires an admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/fee-settings", hb.GetFeeSettingsHandler)
		adminGroup.PUT("/fee-settings", hb.UpdateFeeSettingsHandler)
		adminGroup.GET("/tax-rates", hb.ListTaxRatesHandler)
		adminGroup.PUT("/tax-rates", hb.UpsertTaxRateHandler)
		adminGroup.DELETE("/tax-rates/cache", hb.FlushTaxCacheHandler)
		adminGroup.PUT("/services", hb.UpsertServiceHandler)
		adminGroup.DELETE("/services/:id", hb.DeleteServiceHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb)
}
