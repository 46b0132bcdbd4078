package pricing

import (
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDistanceRange(t *testing.T) {
	tests := []struct {
		label string
		want  DistanceWindow
		ok    bool
	}{
		{"5 miles", DistanceWindow{0, 5}, true},
		{"0-10 miles", DistanceWindow{0, 10}, true},
		{"10-25 miles", DistanceWindow{10, 25}, true},
		{"75–100 miles", DistanceWindow{75, 100}, true}, // en dash
		{"75—100 miles", DistanceWindow{75, 100}, true}, // em dash
		{"75−100 miles", DistanceWindow{75, 100}, true}, // minus sign
		{"50-150 miles", DistanceWindow{50, 100}, true}, // capped
		{"within 12.5 miles", DistanceWindow{0, 12.5}, true},
		{"local only", DistanceWindow{}, false},
		{"", DistanceWindow{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseDistanceRange(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func tieredDelivery() *models.DeliveryOptions {
	return &models.DeliveryOptions{
		Delivery: true,
		DeliveryRanges: []models.DeliveryRange{
			{Range: "0-10 miles", Fee: 15.0},
			{Range: "10-25 miles", Fee: 30.0},
			{Range: "25-50 miles", Fee: "60"},
		},
	}
}

func miles(d float64) *float64 { return &d }

func TestResolveDeliveryFee(t *testing.T) {
	opts := tieredDelivery()

	t.Run("not offered", func(t *testing.T) {
		result := ResolveDeliveryFee(&models.DeliveryOptions{Delivery: false}, miles(5))
		assert.False(t, result.Eligible)
		assert.Equal(t, "delivery not offered", result.Reason)
	})

	t.Run("no ranges configured", func(t *testing.T) {
		result := ResolveDeliveryFee(&models.DeliveryOptions{Delivery: true}, miles(5))
		assert.True(t, result.Eligible)
		assert.Equal(t, 0.0, result.Fee)
	})

	t.Run("tier match", func(t *testing.T) {
		result := ResolveDeliveryFee(opts, miles(18))
		assert.True(t, result.Eligible)
		assert.Equal(t, 30.0, result.Fee)
		assert.Equal(t, "10-25 miles", result.Range)
	})

	t.Run("string fee normalizes", func(t *testing.T) {
		result := ResolveDeliveryFee(opts, miles(40))
		assert.True(t, result.Eligible)
		assert.Equal(t, 60.0, result.Fee)
	})

	t.Run("distance unavailable defaults to first range", func(t *testing.T) {
		result := ResolveDeliveryFee(opts, nil)
		assert.True(t, result.Eligible)
		assert.Equal(t, 15.0, result.Fee)
		assert.Contains(t, result.Reason, "distance unavailable")
	})

	t.Run("upper tier selected", func(t *testing.T) {
		twoTier := &models.DeliveryOptions{
			Delivery: true,
			DeliveryRanges: []models.DeliveryRange{
				{Range: "0-50", Fee: 5.0},
				{Range: "50-100", Fee: 15.0},
			},
		}
		result := ResolveDeliveryFee(twoTier, miles(80))
		assert.True(t, result.Eligible)
		assert.Equal(t, 15.0, result.Fee)

		result = ResolveDeliveryFee(twoTier, miles(150))
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Reason, "100")
	})

	t.Run("beyond the maximum", func(t *testing.T) {
		result := ResolveDeliveryFee(opts, miles(80))
		assert.False(t, result.Eligible)
		assert.Equal(t, 0.0, result.Fee)
		assert.Contains(t, result.Reason, "maximum deliverable distance of 50 miles")
	})

	t.Run("gap falls to the first reaching range", func(t *testing.T) {
		gapped := &models.DeliveryOptions{
			Delivery: true,
			DeliveryRanges: []models.DeliveryRange{
				{Range: "5-10 miles", Fee: 10.0},
				{Range: "10-25 miles", Fee: 25.0},
			},
		}
		result := ResolveDeliveryFee(gapped, miles(2))
		assert.True(t, result.Eligible)
		assert.Equal(t, 10.0, result.Fee)
	})

	t.Run("unparseable ranges do not claim a zero-mile maximum", func(t *testing.T) {
		garbled := &models.DeliveryOptions{
			Delivery: true,
			DeliveryRanges: []models.DeliveryRange{
				{Range: "local only", Fee: 10.0},
				{Range: "ask us", Fee: 25.0},
			},
		}
		result := ResolveDeliveryFee(garbled, miles(8))
		assert.False(t, result.Eligible)
		assert.Equal(t, "no parseable delivery ranges", result.Reason)
	})
}

func TestCheckDeliveryMinimum(t *testing.T) {
	svc := models.ServiceSelection{
		ID:   "svc1",
		Name: "Taco Cart",
		ServiceDetails: models.ServiceDetails{
			DeliveryOptions: &models.DeliveryOptions{Delivery: true, DeliveryMinimum: 200.0},
		},
	}

	warning := CheckDeliveryMinimum(svc, 150)
	require.NotNil(t, warning)
	assert.Equal(t, 200.0, warning.Minimum)
	assert.Equal(t, 50.0, warning.Shortfall)

	assert.Nil(t, CheckDeliveryMinimum(svc, 250))
	assert.Nil(t, CheckDeliveryMinimum(models.ServiceSelection{ID: "bare"}, 0))
}

func TestResolveOrderDelivery(t *testing.T) {
	caterer := models.ServiceSelection{
		ID:             "caterer",
		ServiceDetails: models.ServiceDetails{DeliveryOptions: tieredDelivery()},
	}
	rentals := models.ServiceSelection{
		ID:             "rentals",
		ServiceDetails: models.ServiceDetails{DeliveryOptions: tieredDelivery()},
	}
	venue := models.ServiceSelection{ID: "venue"} // no delivery at all

	t.Run("all within range", func(t *testing.T) {
		details := ResolveOrderDelivery(
			[]models.ServiceSelection{caterer, rentals, venue},
			map[string]float64{},
			map[string]float64{"caterer": 8, "rentals": 20},
		)
		assert.True(t, details.Eligible)
		assert.Equal(t, 45.0, details.TotalFee) // 15 + 30
		assert.False(t, details.PerService["venue"].Eligible)
	})

	t.Run("one out of range still sums the rest", func(t *testing.T) {
		details := ResolveOrderDelivery(
			[]models.ServiceSelection{caterer, rentals},
			map[string]float64{},
			map[string]float64{"caterer": 8, "rentals": 90},
		)
		assert.False(t, details.Eligible)
		assert.NotEmpty(t, details.Reason)
		assert.Equal(t, 15.0, details.TotalFee)
	})

	t.Run("nobody delivers", func(t *testing.T) {
		details := ResolveOrderDelivery(
			[]models.ServiceSelection{venue},
			map[string]float64{},
			nil,
		)
		assert.False(t, details.Eligible)
		assert.Equal(t, "delivery not offered", details.Reason)
		assert.Equal(t, 0.0, details.TotalFee)
	})

	t.Run("minimum shortfall warns without blocking", func(t *testing.T) {
		lowMin := caterer
		lowMin.ServiceDetails.DeliveryOptions = &models.DeliveryOptions{
			Delivery:        true,
			DeliveryRanges:  []models.DeliveryRange{{Range: "0-10 miles", Fee: 15.0}},
			DeliveryMinimum: 300.0,
		}
		details := ResolveOrderDelivery(
			[]models.ServiceSelection{lowMin},
			map[string]float64{"caterer": 100},
			map[string]float64{"caterer": 5},
		)
		assert.True(t, details.Eligible)
		assert.Equal(t, 15.0, details.TotalFee)
		require.Len(t, details.MinimumWarnings, 1)
		assert.Equal(t, 200.0, details.MinimumWarnings[0].Shortfall)
	})
}
