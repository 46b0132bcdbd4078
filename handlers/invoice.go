package handlers

import (
	"net/http"

	"gatherly/models"
	"gatherly/services/invoice"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes invoice CRUD and pricing-snapshot operations.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// CreateInvoiceHandler stores a new draft invoice.
func (ih *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	var inv models.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := ih.Service.Create(c.Request.Context(), inv)
	if err != nil {
		zap.L().Error("Failed to create invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoiceId": id})
}

// GetInvoiceHandler returns a stored invoice with its latest pricing snapshot.
func (ih *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	inv, err := ih.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// RepriceInvoiceHandler recomputes an invoice's totals and persists a fresh
// pricing snapshot.
func (ih *InvoiceHandler) RepriceInvoiceHandler(c *gin.Context) {
	snapshot, err := ih.Service.Reprice(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to reprice invoice", zap.String("invoice", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetPricingHistoryHandler returns every pricing snapshot for an invoice,
// newest first.
func (ih *InvoiceHandler) GetPricingHistoryHandler(c *gin.Context) {
	snapshots, err := ih.Service.GetPricingHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// CreatePaymentIntentHandler creates a Stripe PaymentIntent for the invoice's
// latest priced total.
func (ih *InvoiceHandler) CreatePaymentIntentHandler(c *gin.Context) {
	result, err := ih.Service.CreatePaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to create payment intent", zap.String("invoice", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
