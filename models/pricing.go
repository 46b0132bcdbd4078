package models

// CateringItemBreakdown is one line of a catering price computation.
// Individual menu items are always additional-charge lines, never base.
type CateringItemBreakdown struct {
	Name               string  `bson:"name" json:"name"`
	Quantity           int     `bson:"quantity" json:"quantity"`
	UnitPrice          float64 `bson:"unit_price" json:"unitPrice"`
	AdditionalCharge   float64 `bson:"additional_charge" json:"additionalCharge"`
	Total              float64 `bson:"total" json:"total"`
	IsAdditionalCharge bool    `bson:"is_additional_charge" json:"isAdditionalCharge"`
	IsMenuItem         bool    `bson:"is_menu_item,omitempty" json:"isMenuItem,omitempty"`
}

// CateringPriceResult is the full breakdown produced by the catering calculator.
// The combo base price is deliberately not multiplied by the guest count; the
// guest count only divides the additional charges into a per-person figure.
type CateringPriceResult struct {
	BasePriceTotal             float64                 `bson:"base_price_total" json:"basePriceTotal"`
	SimpleItemsTotal           float64                 `bson:"simple_items_total" json:"simpleItemsTotal"`
	AdditionalCharges          []CateringItemBreakdown `bson:"additional_charges,omitempty" json:"additionalCharges,omitempty"`
	AdditionalChargesTotal     float64                 `bson:"additional_charges_total" json:"additionalChargesTotal"`
	AdditionalChargesPerPerson float64                 `bson:"additional_charges_per_person" json:"additionalChargesPerPerson"`
	FinalTotal                 float64                 `bson:"final_total" json:"finalTotal"`
}

// TaxData describes the tax outcome attached to an order's totals.
type TaxData struct {
	Rate         float64 `bson:"rate" json:"rate"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
	Jurisdiction string  `bson:"jurisdiction,omitempty" json:"jurisdiction,omitempty"`
	Location     string  `bson:"location,omitempty" json:"location,omitempty"`
}

// AdminFeeSettings overrides the platform service fee for one computation.
// Nil pointer fields fall back to configured defaults.
type AdminFeeSettings struct {
	ServiceFeePercentage *float64 `bson:"service_fee_percentage,omitempty" json:"serviceFeePercentage,omitempty"`
	ServiceFeeFixed      *float64 `bson:"service_fee_fixed,omitempty" json:"serviceFeeFixed,omitempty"`
	ServiceFeeType       string   `bson:"service_fee_type,omitempty" json:"serviceFeeType,omitempty"` // percentage | fixed | hybrid
}

// OrderTotals is the result of one complete order pricing computation.
type OrderTotals struct {
	Subtotal           float64            `bson:"subtotal" json:"subtotal"`
	ServiceSubtotals   map[string]float64 `bson:"service_subtotals,omitempty" json:"serviceSubtotals,omitempty"`
	ServiceFee         float64            `bson:"service_fee" json:"serviceFee"`
	DeliveryFee        float64            `bson:"delivery_fee" json:"deliveryFee"`
	DeliveryDetails    DeliveryDetails    `bson:"delivery_details" json:"deliveryDetails"`
	Adjustments        []AdjustmentLine   `bson:"adjustments,omitempty" json:"adjustments,omitempty"`
	AdjustmentsTotal   float64            `bson:"adjustments_total" json:"adjustmentsTotal"`
	Tax                float64            `bson:"tax" json:"tax"`
	TaxData            TaxData            `bson:"tax_data" json:"taxData"`
	Total              float64            `bson:"total" json:"total"`
	IsTaxExempt        bool               `bson:"is_tax_exempt" json:"isTaxExempt"`
	IsServiceFeeWaived bool               `bson:"is_service_fee_waived" json:"isServiceFeeWaived"`
}

// QuoteRequest carries everything needed to price an order.
type QuoteRequest struct {
	Services           []ServiceSelection `json:"services"`
	Selections         SelectionMap       `json:"selections"`
	GuestCount         int                `json:"guestCount"`
	DeliveryAddress    string             `json:"deliveryAddress,omitempty"`
	Distances          map[string]float64 `json:"distances,omitempty"` // serviceId -> miles
	Adjustments        []CustomAdjustment `json:"adjustments,omitempty"`
	FeeSettings        *AdminFeeSettings  `json:"feeSettings,omitempty"`
	IsTaxExempt        bool               `json:"isTaxExempt,omitempty"`
	IsServiceFeeWaived bool               `json:"isServiceFeeWaived,omitempty"`
}
