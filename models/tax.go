package models

import "time"

// TaxRate is a stored location -> rate row used by the tax lookup.
// Rate is a fraction in [0, 1].
type TaxRate struct {
	Location     string    `bson:"location" json:"location"`
	Rate         float64   `bson:"rate" json:"rate"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Jurisdiction string    `bson:"jurisdiction,omitempty" json:"jurisdiction,omitempty"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
