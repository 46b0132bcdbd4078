package models

// Adjustment type and mode tags.
const (
	AdjustmentTypeFixed      = "fixed"
	AdjustmentTypePercentage = "percentage"
	AdjustmentModeSurcharge  = "surcharge"
	AdjustmentModeDiscount   = "discount"
)

// CustomAdjustment is a named order-level surcharge or discount. Percentage
// adjustments apply to the order subtotal only, never to fees or delivery.
type CustomAdjustment struct {
	ID      string  `bson:"id,omitempty" json:"id,omitempty"`
	Label   string  `bson:"label" json:"label"`
	Value   float64 `bson:"value" json:"value"`
	Type    string  `bson:"type" json:"type"` // fixed | percentage
	Mode    string  `bson:"mode" json:"mode"` // surcharge | discount
	Taxable bool    `bson:"taxable" json:"taxable"`
}

// AdjustmentLine is one resolved adjustment in an order's itemized breakdown.
// Amount is signed: discounts are negative.
type AdjustmentLine struct {
	Label   string  `bson:"label" json:"label"`
	Amount  float64 `bson:"amount" json:"amount"`
	Taxable bool    `bson:"taxable" json:"taxable"`
}
