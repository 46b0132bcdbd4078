package models

import (
	"encoding/json"
	"strings"
)

// SelectionMap maps an item key to a selected quantity. Keys come in three
// forms: "<serviceId>_<itemId>", a bare "<itemId>", or the combo-category form
// "<comboId>_<categoryId>_<itemId>". A sibling "<key>_duration" entry carries
// an hours/days multiplier for time-based items. Quantities at or below zero
// mean "not selected".
type SelectionMap map[string]float64

// DurationSuffix marks sibling keys carrying an hours/days multiplier.
const DurationSuffix = "_duration"

// IsDurationKey reports whether key carries a duration rather than a quantity.
func IsDurationKey(key string) bool {
	return strings.HasSuffix(key, DurationSuffix)
}

// HasPositive reports whether any quantity entry is above zero.
func (m SelectionMap) HasPositive() bool {
	for k, v := range m {
		if IsDurationKey(k) {
			continue
		}
		if v > 0 {
			return true
		}
	}
	return false
}

// DurationFor returns the duration recorded for an item key, trying the
// prefixed form first, then the bare form. Returns 0 when absent.
func (m SelectionMap) DurationFor(serviceID, itemKey string) float64 {
	if serviceID != "" {
		if d, ok := m[serviceID+"_"+itemKey+DurationSuffix]; ok && d > 0 {
			return d
		}
	}
	if d, ok := m[itemKey+DurationSuffix]; ok && d > 0 {
		return d
	}
	return 0
}

// ComboSelection is a resolved combo choice whose total was computed upstream.
// When present on a service, its total is authoritative.
type ComboSelection struct {
	ID         string `bson:"id,omitempty" json:"id,omitempty"`
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	TotalPrice any    `bson:"total_price,omitempty" json:"totalPrice,omitempty"`
}

// ServiceSelection is one booked service instance within an order or invoice.
type ServiceSelection struct {
	ID              string           `bson:"id" json:"id"`
	Name            string           `bson:"name,omitempty" json:"name,omitempty"`
	Category        string           `bson:"category,omitempty" json:"category,omitempty"`
	Price           any              `bson:"price,omitempty" json:"price,omitempty"`
	PriceType       string           `bson:"price_type,omitempty" json:"priceType,omitempty"` // flat_rate, per_person, per_hour, per_day, per_item
	TotalPrice      any              `bson:"total_price,omitempty" json:"totalPrice,omitempty"`
	Quantity        any              `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Duration        any              `bson:"duration,omitempty" json:"duration,omitempty"`
	ComboSelections []ComboSelection `bson:"combo_selections,omitempty" json:"comboSelections,omitempty"`
	ServiceDetails  ServiceDetails   `bson:"service_details,omitempty" json:"service_details,omitempty"`
}

// UnmarshalJSON merges the legacy singular "comboSelection" field into the
// ComboSelections list so downstream code only ever sees one representation.
func (s *ServiceSelection) UnmarshalJSON(data []byte) error {
	type alias ServiceSelection
	var aux struct {
		alias
		LegacyCombo *ComboSelection `json:"comboSelection"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = ServiceSelection(aux.alias)
	if aux.LegacyCombo != nil {
		s.ComboSelections = append(s.ComboSelections, *aux.LegacyCombo)
	}
	return nil
}
