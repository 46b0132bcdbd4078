package handlers

import (
	"net/http"
	"time"

	"gatherly/config"
	settingsRepo "gatherly/database/repository/settings"
	"gatherly/models"
	"gatherly/services/tax"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler encapsulates elevated admin-level operations: platform fee
// settings and the tax rate table.
type AdminHandler struct {
	Settings settingsRepo.SettingsRepository
	TaxRates tax.RateService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(settings settingsRepo.SettingsRepository, taxRates tax.RateService) *AdminHandler {
	return &AdminHandler{
		Settings: settings,
		TaxRates: taxRates,
	}
}

// adminTokenTTL bounds how long an admin session token stays valid.
const adminTokenTTL = 12 * time.Hour

// AdminLoginHandler exchanges the admin email and key for a session token.
func (ah *AdminHandler) AdminLoginHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Key   string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if req.Email != config.AppConfig.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminKeyHash), []byte(req.Key)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", req.Email, adminTokenTTL)
	if err != nil {
		zap.L().Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetFeeSettingsHandler returns the stored fee overrides. Unset fields fall
// back to configured defaults at pricing time.
func (ah *AdminHandler) GetFeeSettingsHandler(c *gin.Context) {
	settings, err := ah.Settings.GetFeeSettings(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch fee settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch fee settings"})
		return
	}
	if settings == nil {
		settings = &models.AdminFeeSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateFeeSettingsHandler stores new fee overrides.
func (ah *AdminHandler) UpdateFeeSettingsHandler(c *gin.Context) {
	var settings models.AdminFeeSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Settings.SetFeeSettings(c.Request.Context(), settings); err != nil {
		zap.L().Error("Failed to update fee settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update fee settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fee settings updated"})
}

// ListTaxRatesHandler returns every stored tax rate.
func (ah *AdminHandler) ListTaxRatesHandler(c *gin.Context) {
	rates, err := ah.TaxRates.GetAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list tax rates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tax rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

// UpsertTaxRateHandler creates or replaces a tax rate row and drops its cache
// entry.
func (ah *AdminHandler) UpsertTaxRateHandler(c *gin.Context) {
	var rate models.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if rate.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}
	if rate.Rate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rate must not be negative"})
		return
	}

	if err := ah.TaxRates.Upsert(c.Request.Context(), rate); err != nil {
		zap.L().Error("Failed to upsert tax rate", zap.String("location", rate.Location), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save tax rate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tax rate saved", "location": rate.Location})
}

// FlushTaxCacheHandler drops every cached tax rate so the next lookups hit
// the store.
func (ah *AdminHandler) FlushTaxCacheHandler(c *gin.Context) {
	if err := ah.TaxRates.InvalidateAll(c.Request.Context()); err != nil {
		zap.L().Error("Failed to flush tax cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to flush tax cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tax cache flushed"})
}
