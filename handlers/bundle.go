package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Quote endpoints
	ComputeQuoteHandler gin.HandlerFunc

	// Invoice endpoints
	CreateInvoiceHandler       gin.HandlerFunc
	GetInvoiceHandler          gin.HandlerFunc
	RepriceInvoiceHandler      gin.HandlerFunc
	GetPricingHistoryHandler   gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// Catalog endpoints
	GetServiceHandler            gin.HandlerFunc
	GetServicesByCategoryHandler gin.HandlerFunc
	UpsertServiceHandler         gin.HandlerFunc
	DeleteServiceHandler         gin.HandlerFunc

	// Admin endpoints
	AdminLoginHandler        gin.HandlerFunc
	GetFeeSettingsHandler    gin.HandlerFunc
	UpdateFeeSettingsHandler gin.HandlerFunc
	ListTaxRatesHandler      gin.HandlerFunc
	UpsertTaxRateHandler     gin.HandlerFunc
	FlushTaxCacheHandler     gin.HandlerFunc
}
