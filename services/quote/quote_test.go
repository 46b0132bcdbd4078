package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatherly/models"
	"gatherly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	calls    int
	lastReq  models.QuoteRequest
	response models.OrderTotals
}

func (f *fakeEngine) CalculateOrderTotals(ctx context.Context, req models.QuoteRequest) models.OrderTotals {
	f.calls++
	f.lastReq = req
	return f.response
}

func (f *fakeEngine) BuildPricingSnapshot(ctx context.Context, invoiceID string, req models.QuoteRequest) models.InvoicePricingSnapshot {
	return models.InvoicePricingSnapshot{InvoiceID: invoiceID}
}

type fakeSettingsRepo struct {
	settings *models.AdminFeeSettings
	err      error
}

func (f *fakeSettingsRepo) GetFeeSettings(ctx context.Context) (*models.AdminFeeSettings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsRepo) SetFeeSettings(ctx context.Context, settings models.AdminFeeSettings) error {
	return nil
}

func TestQuoteWithoutCache(t *testing.T) {
	engine := &fakeEngine{response: models.OrderTotals{Total: 150}}
	svc := &DefaultQuoteService{Engine: engine}

	totals, err := svc.Quote(context.Background(), models.QuoteRequest{GuestCount: 10})
	require.NoError(t, err)
	assert.Equal(t, 150.0, totals.Total)
	assert.Equal(t, 1, engine.calls)
}

func TestQuoteAppliesStoredFeeSettings(t *testing.T) {
	rate := 0.1
	engine := &fakeEngine{}
	svc := &DefaultQuoteService{
		Engine:   engine,
		Settings: &fakeSettingsRepo{settings: &models.AdminFeeSettings{ServiceFeePercentage: &rate}},
	}

	_, err := svc.Quote(context.Background(), models.QuoteRequest{})
	require.NoError(t, err)
	require.NotNil(t, engine.lastReq.FeeSettings)
	assert.Equal(t, 0.1, *engine.lastReq.FeeSettings.ServiceFeePercentage)
}

func TestQuoteKeepsRequestFeeSettings(t *testing.T) {
	reqRate, storedRate := 0.02, 0.1
	engine := &fakeEngine{}
	svc := &DefaultQuoteService{
		Engine:   engine,
		Settings: &fakeSettingsRepo{settings: &models.AdminFeeSettings{ServiceFeePercentage: &storedRate}},
	}

	_, err := svc.Quote(context.Background(), models.QuoteRequest{
		FeeSettings: &models.AdminFeeSettings{ServiceFeePercentage: &reqRate},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.02, *engine.lastReq.FeeSettings.ServiceFeePercentage)
}

func TestCacheTTLFallback(t *testing.T) {
	svc := &DefaultQuoteService{}
	assert.Equal(t, utils.QuoteCacheTTL, svc.cacheTTL())

	svc.TTL = 30 * time.Second
	assert.Equal(t, 30*time.Second, svc.cacheTTL())
}

func TestQuoteSurvivesSettingsFailure(t *testing.T) {
	engine := &fakeEngine{response: models.OrderTotals{Total: 99}}
	svc := &DefaultQuoteService{
		Engine:   engine,
		Settings: &fakeSettingsRepo{err: errors.New("mongo down")},
	}

	totals, err := svc.Quote(context.Background(), models.QuoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, 99.0, totals.Total)
	assert.Nil(t, engine.lastReq.FeeSettings)
}
