package pricing

import (
	"context"
	"errors"
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateLookup struct {
	rate *models.TaxRate
	err  error
}

func (s stubRateLookup) Lookup(ctx context.Context, location string) (*models.TaxRate, error) {
	return s.rate, s.err
}

func floatPtr(f float64) *float64 { return &f }

func TestServiceFee(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		settings *models.AdminFeeSettings
		defaults *models.AdminFeeSettings
		waived   bool
		want     float64
	}{
		{"default rate", 100, nil, nil, false, 5},
		{"waived", 100, nil, nil, true, 0},
		{"custom percentage", 200, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.1)}, nil, false, 20},
		{"fixed", 200, &models.AdminFeeSettings{ServiceFeeFixed: floatPtr(25), ServiceFeeType: "fixed"}, nil, false, 25},
		{"hybrid", 100, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.1), ServiceFeeFixed: floatPtr(10), ServiceFeeType: "hybrid"}, nil, false, 20},
		{"negative rate clamps", 100, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(-0.5)}, nil, false, 0},
		{"operator default rate", 100, nil, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.1)}, false, 10},
		{"settings win over defaults", 100, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.02)}, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.1)}, false, 2},
		{"partial settings layer over defaults", 100, &models.AdminFeeSettings{ServiceFeeType: "hybrid"}, &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.1), ServiceFeeFixed: floatPtr(5)}, false, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceFee(tt.subtotal, tt.settings, tt.defaults, tt.waived))
		})
	}
}

func TestCalculateOrderTotalsHonorsFeeDefaults(t *testing.T) {
	engine := &DefaultPricingEngine{
		FeeDefaults: &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.1)},
	}

	// Neither the request nor stored settings carry fee settings, so the
	// operator-configured default rate applies.
	totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
		Services: []models.ServiceSelection{flatService("svc1", 200)},
	})
	assert.Equal(t, 20.0, totals.ServiceFee)

	// Request settings still take precedence over the configured default.
	totals = engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
		Services:    []models.ServiceSelection{flatService("svc1", 200)},
		FeeSettings: &models.AdminFeeSettings{ServiceFeePercentage: floatPtr(0.02)},
	})
	assert.Equal(t, 4.0, totals.ServiceFee)
}

func TestResolveAdjustment(t *testing.T) {
	// A percentage adjustment applies to the subtotal only; value 10 means 10%.
	line := resolveAdjustment(models.CustomAdjustment{
		Label: "Weekend surcharge", Value: 10, Type: models.AdjustmentTypePercentage, Mode: models.AdjustmentModeSurcharge,
	}, 250)
	assert.Equal(t, 25.0, line.Amount)

	// A 10% discount on a 200 subtotal contributes -20.
	line = resolveAdjustment(models.CustomAdjustment{
		Label: "Promo", Value: 10, Type: models.AdjustmentTypePercentage, Mode: models.AdjustmentModeDiscount,
	}, 200)
	assert.Equal(t, -20.0, line.Amount)

	line = resolveAdjustment(models.CustomAdjustment{
		Label: "Loyalty discount", Value: 40, Type: models.AdjustmentTypeFixed, Mode: models.AdjustmentModeDiscount, Taxable: true,
	}, 250)
	assert.Equal(t, -40.0, line.Amount)
	assert.True(t, line.Taxable)
}

func flatService(id string, total float64) models.ServiceSelection {
	return models.ServiceSelection{ID: id, TotalPrice: total}
}

func TestCalculateOrderTotalsTaxBase(t *testing.T) {
	engine := &DefaultPricingEngine{
		TaxRates: stubRateLookup{rate: &models.TaxRate{Location: "austin, tx", Rate: 0.08, Description: "Travis County"}},
	}

	totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
		Services:        []models.ServiceSelection{flatService("svc1", 100)},
		DeliveryAddress: "Austin, TX",
		Adjustments: []models.CustomAdjustment{
			{Label: "Setup", Value: 10, Type: models.AdjustmentTypeFixed, Mode: models.AdjustmentModeSurcharge, Taxable: true},
			{Label: "Gratuity", Value: 20, Type: models.AdjustmentTypeFixed, Mode: models.AdjustmentModeSurcharge, Taxable: false},
		},
	})

	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 5.0, totals.ServiceFee)
	assert.Equal(t, 30.0, totals.AdjustmentsTotal)

	// Taxable base: subtotal + service fee + taxable adjustment. The
	// non-taxable gratuity stays out.
	assert.InDelta(t, (100+5+10)*0.08, totals.Tax, 1e-9)
	assert.InDelta(t, 100+5+30+totals.Tax, totals.Total, 1e-9)
	assert.Equal(t, 0.08, totals.TaxData.Rate)
	assert.Equal(t, "Travis County", totals.TaxData.Description)
}

func TestCalculateOrderTotalsTaxExempt(t *testing.T) {
	engine := &DefaultPricingEngine{
		TaxRates: stubRateLookup{rate: &models.TaxRate{Rate: 0.08}},
	}

	totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
		Services:        []models.ServiceSelection{flatService("svc1", 100)},
		DeliveryAddress: "Austin, TX",
		IsTaxExempt:     true,
	})

	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, "Tax Exempt", totals.TaxData.Description)
	assert.True(t, totals.IsTaxExempt)
}

func TestCalculateOrderTotalsTaxDegrades(t *testing.T) {
	t.Run("lookup error prices without tax", func(t *testing.T) {
		engine := &DefaultPricingEngine{TaxRates: stubRateLookup{err: errors.New("redis down")}}
		totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
			Services:        []models.ServiceSelection{flatService("svc1", 100)},
			DeliveryAddress: "Austin, TX",
		})
		assert.Equal(t, 0.0, totals.Tax)
		assert.Equal(t, 105.0, totals.Total)
	})

	t.Run("no configured rate", func(t *testing.T) {
		engine := &DefaultPricingEngine{TaxRates: stubRateLookup{}}
		totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
			Services:        []models.ServiceSelection{flatService("svc1", 100)},
			DeliveryAddress: "Nowhere",
		})
		assert.Equal(t, 0.0, totals.Tax)
	})

	t.Run("no lookup configured", func(t *testing.T) {
		engine := &DefaultPricingEngine{}
		totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
			Services:        []models.ServiceSelection{flatService("svc1", 100)},
			DeliveryAddress: "Austin, TX",
		})
		assert.Equal(t, 0.0, totals.Tax)
	})
}

func cateringScenarioService() models.ServiceSelection {
	return models.ServiceSelection{
		ID:       "caterer",
		Category: models.CategoryCatering,
		ServiceDetails: models.ServiceDetails{
			Combos: []models.Combo{{ID: "classic", Name: "Classic Package", BasePrice: 100.0}},
			MenuItems: []models.MenuItem{
				{ID: "carving", Name: "Carving Station", Price: 20.0, AdditionalCharge: 5.0},
			},
		},
	}
}

func TestCalculateOrderTotalsCateringScenario(t *testing.T) {
	// One catering service: combo base 100, one upcharged item (20+5)*2,
	// default 5% fee, no delivery, no tax.
	engine := &DefaultPricingEngine{}
	totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
		Services:   []models.ServiceSelection{cateringScenarioService()},
		Selections: models.SelectionMap{"classic": 1, "carving": 2},
		GuestCount: 10,
	})

	assert.Equal(t, 150.0, totals.Subtotal)
	assert.InDelta(t, 7.5, totals.ServiceFee, 1e-9)
	assert.Equal(t, 0.0, totals.DeliveryFee)
	assert.Equal(t, 0.0, totals.Tax)
	assert.InDelta(t, 157.5, totals.Total, 1e-9)
}

func TestCalculateOrderTotalsWaivedFeeWithDelivery(t *testing.T) {
	svc := cateringScenarioService()
	svc.ServiceDetails.DeliveryOptions = &models.DeliveryOptions{
		Delivery:       true,
		DeliveryRanges: []models.DeliveryRange{{Range: "0-10 miles", Fee: 8.0}},
	}

	engine := &DefaultPricingEngine{}
	totals := engine.CalculateOrderTotals(context.Background(), models.QuoteRequest{
		Services:           []models.ServiceSelection{svc},
		Selections:         models.SelectionMap{"classic": 1, "carving": 2},
		GuestCount:         10,
		Distances:          map[string]float64{"caterer": 5},
		IsServiceFeeWaived: true,
	})

	assert.Equal(t, 150.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.ServiceFee)
	assert.Equal(t, 8.0, totals.DeliveryFee)
	assert.True(t, totals.DeliveryDetails.Eligible)
	assert.InDelta(t, 158.0, totals.Total, 1e-9)
}

func TestCalculateOrderTotalsEndToEnd(t *testing.T) {
	deliveryOpts := &models.DeliveryOptions{
		Delivery:       true,
		DeliveryRanges: []models.DeliveryRange{{Range: "0-10 miles", Fee: 25.0}},
	}
	caterer := models.ServiceSelection{
		ID:       "caterer",
		Category: models.CategoryCatering,
		ServiceDetails: models.ServiceDetails{
			Combos:          cateringDetails().Combos,
			MenuItems:       cateringDetails().MenuItems,
			DeliveryOptions: deliveryOpts,
		},
	}
	venue := models.ServiceSelection{
		ID:       "venue",
		Category: models.CategoryVenues,
		Price:    1000.0,
	}

	engine := &DefaultPricingEngine{
		TaxRates: stubRateLookup{rate: &models.TaxRate{Rate: 0.1}},
	}

	req := models.QuoteRequest{
		Services:        []models.ServiceSelection{caterer, venue},
		Selections:      models.SelectionMap{"gold": 1, "cake": 2},
		GuestCount:      50,
		DeliveryAddress: "Austin, TX",
		Distances:       map[string]float64{"caterer": 6},
	}

	totals := engine.CalculateOrderTotals(context.Background(), req)

	// Caterer: 500 base + 90 cake. Venue: 1000 flat.
	assert.Equal(t, 590.0, totals.ServiceSubtotals["caterer"])
	assert.Equal(t, 1000.0, totals.ServiceSubtotals["venue"])
	assert.Equal(t, 1590.0, totals.Subtotal)
	assert.InDelta(t, 79.5, totals.ServiceFee, 1e-9)
	assert.Equal(t, 25.0, totals.DeliveryFee)
	assert.True(t, totals.DeliveryDetails.Eligible)
	assert.InDelta(t, (1590+79.5+25)*0.1, totals.Tax, 1e-9)
	assert.InDelta(t, 1590+79.5+25+totals.Tax, totals.Total, 1e-9)

	// Pricing is deterministic: the same request prices identically.
	again := engine.CalculateOrderTotals(context.Background(), req)
	require.Equal(t, totals, again)
}
