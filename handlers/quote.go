package handlers

import (
	"net/http"

	"gatherly/models"
	"gatherly/services/quote"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes stateless order pricing.
type QuoteHandler struct {
	Service quote.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(svc quote.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: svc}
}

// ComputeQuoteHandler prices an ad-hoc order: services, selections, guest
// count, optional delivery address/distances, adjustments and override flags
// in; full OrderTotals out.
func (qh *QuoteHandler) ComputeQuoteHandler(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	totals, err := qh.Service.Quote(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to compute quote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quote"})
		return
	}

	c.JSON(http.StatusOK, totals)
}
