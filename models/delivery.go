package models

// DeliveryRange pairs a human-readable distance label ("0-10 miles",
// "75-100 miles") with a flat fee for that window.
type DeliveryRange struct {
	Range string `bson:"range,omitempty" json:"range,omitempty"`
	Fee   any    `bson:"fee,omitempty" json:"fee,omitempty"`
}

// DeliveryOptions is a service's delivery configuration.
type DeliveryOptions struct {
	Delivery        bool            `bson:"delivery" json:"delivery"`
	Pickup          bool            `bson:"pickup" json:"pickup"`
	DeliveryRanges  []DeliveryRange `bson:"delivery_ranges,omitempty" json:"deliveryRanges,omitempty"`
	DeliveryMinimum any             `bson:"delivery_minimum,omitempty" json:"deliveryMinimum,omitempty"`
}

// DeliveryFeeResult is the per-service outcome of fee resolution.
type DeliveryFeeResult struct {
	Eligible bool    `bson:"eligible" json:"eligible"`
	Fee      float64 `bson:"fee" json:"fee"`
	Range    string  `bson:"range,omitempty" json:"range,omitempty"`
	Reason   string  `bson:"reason,omitempty" json:"reason,omitempty"`
}

// MinimumOrderWarning reports a service subtotal below its delivery minimum.
// Informational only; delivery still proceeds.
type MinimumOrderWarning struct {
	ServiceID   string  `bson:"service_id" json:"serviceId"`
	ServiceName string  `bson:"service_name,omitempty" json:"serviceName,omitempty"`
	Minimum     float64 `bson:"minimum" json:"minimum"`
	Subtotal    float64 `bson:"subtotal" json:"subtotal"`
	Shortfall   float64 `bson:"shortfall" json:"shortfall"`
}

// DeliveryDetails aggregates fee resolution across every service in an order.
type DeliveryDetails struct {
	Eligible        bool                         `bson:"eligible" json:"eligible"`
	TotalFee        float64                      `bson:"total_fee" json:"totalFee"`
	Reason          string                       `bson:"reason,omitempty" json:"reason,omitempty"`
	PerService      map[string]DeliveryFeeResult `bson:"per_service,omitempty" json:"perService,omitempty"`
	MinimumWarnings []MinimumOrderWarning        `bson:"minimum_warnings,omitempty" json:"minimumWarnings,omitempty"`
}
