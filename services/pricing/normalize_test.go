package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"plain float", 12.5, 12.5},
		{"int", 40, 40},
		{"nil", nil, 0},
		{"negative number clamps", -3.5, 0.0},
		{"clean string", "19.99", 19.99},
		{"currency string", "$25.00", 25},
		{"unit suffix", "25 per hour", 25},
		{"slash suffix", "30/Person", 30},
		{"range takes leading number", "50-100", 50},
		{"negative string clamps", "-5", 0},
		{"garbage", "call for pricing", 0},
		{"empty string", "", 0},
		{"double dot stops at second", "1.2.3", 1.2},
		{"unsupported type", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePrice(tt.raw))
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"whole float", 3.0, 3},
		{"fraction floors", 2.9, 2},
		{"negative clamps", -1.0, 0},
		{"zero", 0.0, 0},
		{"string", "4", 4},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuantity(tt.raw))
		})
	}
}

func TestNormalizeGuestCount(t *testing.T) {
	assert.Equal(t, 1, NormalizeGuestCount(0))
	assert.Equal(t, 1, NormalizeGuestCount(-5))
	assert.Equal(t, 1, NormalizeGuestCount(1))
	assert.Equal(t, 30, NormalizeGuestCount(30))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, Round2(3.14159))
	assert.Equal(t, 2.72, Round2(2.718))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1999), ToCents(19.99))
	assert.Equal(t, int64(0), ToCents(0))
	assert.Equal(t, int64(10), ToCents(0.1*0.5+0.05))
}

func TestItemKeyForService(t *testing.T) {
	assert.Equal(t, "chicken", itemKeyForService("svc1_chicken", "svc1"))
	assert.Equal(t, "chicken", itemKeyForService("chicken", "svc1"))
	assert.Equal(t, "svc2_chicken", itemKeyForService("svc2_chicken", "svc1"))
	assert.Equal(t, "svc1_chicken", itemKeyForService("svc1_chicken", ""))
}
