package handlers

import (
	"net/http"

	catalogRepo "gatherly/database/repository/catalog"
	"gatherly/models"
	"gatherly/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the service catalogue: vendor service records with
// their nested pricing details (menu items, combos, rental items, staff roles,
// delivery configuration).
type CatalogHandler struct {
	Repo     catalogRepo.CatalogRepository
	QuoteSvc quote.QuoteService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository, qs quote.QuoteService) *CatalogHandler {
	return &CatalogHandler{Repo: repo, QuoteSvc: qs}
}

// GetServiceHandler returns a single catalogue service by id.
func (ch *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := ch.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to fetch service", zap.String("service", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServicesByCategoryHandler returns all catalogue services in a category.
func (ch *CatalogHandler) GetServicesByCategoryHandler(c *gin.Context) {
	category := models.NormalizeCategory(c.Param("category"))
	services, err := ch.Repo.GetByCategory(c.Request.Context(), category)
	if err != nil {
		zap.L().Error("Failed to fetch services", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpsertServiceHandler creates or replaces a catalogue service. Cached quotes
// may reference the old pricing details, so the quote cache is flushed.
func (ch *CatalogHandler) UpsertServiceHandler(c *gin.Context) {
	var svc models.ServiceSelection
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if svc.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service id is required"})
		return
	}
	svc.Category = models.NormalizeCategory(svc.Category)

	if err := ch.Repo.Upsert(c.Request.Context(), svc); err != nil {
		zap.L().Error("Failed to upsert service", zap.String("service", svc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save service"})
		return
	}

	if ch.QuoteSvc != nil {
		if err := ch.QuoteSvc.InvalidateCache(c.Request.Context()); err != nil {
			zap.L().Warn("Failed to invalidate quote cache", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "service saved", "serviceId": svc.ID})
}

// DeleteServiceHandler removes a catalogue service.
func (ch *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := ch.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		zap.L().Error("Failed to delete service", zap.String("service", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
