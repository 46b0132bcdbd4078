package models

import "strings"

// Service categories supported by the marketplace.
const (
	CategoryCatering     = "catering"
	CategoryVenues       = "venues"
	CategoryPartyRentals = "party_rentals"
	CategoryStaff        = "staff"
)

// NormalizeCategory canonicalizes a category tag. Upstream records use both
// "party_rentals" and "party-rentals" for the same category.
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "party-rentals" {
		return CategoryPartyRentals
	}
	return c
}

// MenuItem is an individually orderable entry in a catering catalogue.
// Price fields arrive loosely formatted upstream (number, "$25.00", "25 per person"),
// so they are typed as any and normalized at the pricing boundary.
type MenuItem struct {
	ID               string `bson:"id,omitempty" json:"id,omitempty"`
	ItemID           string `bson:"item_id,omitempty" json:"itemId,omitempty"`
	Name             string `bson:"name,omitempty" json:"name,omitempty"`
	Title            string `bson:"title,omitempty" json:"title,omitempty"`
	Price            any    `bson:"price,omitempty" json:"price,omitempty"`
	AdditionalCharge any    `bson:"additional_charge,omitempty" json:"additionalCharge,omitempty"`
}

// ComboCategory is a named group of selectable items inside a combo.
type ComboCategory struct {
	ID    string     `bson:"id,omitempty" json:"id,omitempty"`
	Name  string     `bson:"name,omitempty" json:"name,omitempty"`
	Items []MenuItem `bson:"items,omitempty" json:"items,omitempty"`
}

// Combo is a catering package with a per-person base price and item categories.
type Combo struct {
	ID         string          `bson:"id,omitempty" json:"id,omitempty"`
	ItemID     string          `bson:"item_id,omitempty" json:"itemId,omitempty"`
	Name       string          `bson:"name,omitempty" json:"name,omitempty"`
	Title      string          `bson:"title,omitempty" json:"title,omitempty"`
	BasePrice  any             `bson:"base_price,omitempty" json:"basePrice,omitempty"`
	Price      any             `bson:"price,omitempty" json:"price,omitempty"`
	Categories []ComboCategory `bson:"categories,omitempty" json:"categories,omitempty"`
}

// RentalItem is one orderable party-rental entry (tables, chairs, tents).
type RentalItem struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Price any    `bson:"price,omitempty" json:"price,omitempty"`
}

// StaffRole is a bookable staffing role priced per hour.
type StaffRole struct {
	ID              string  `bson:"id,omitempty" json:"id,omitempty"`
	Name            string  `bson:"name,omitempty" json:"name,omitempty"`
	Title           string  `bson:"title,omitempty" json:"title,omitempty"`
	Price           any     `bson:"price,omitempty" json:"price,omitempty"`
	MinimumHours    float64 `bson:"minimum_hours,omitempty" json:"minimumHours,omitempty"`
	MinimumQuantity int     `bson:"minimum_quantity,omitempty" json:"minimumQuantity,omitempty"`
}

// VenueOption is an add-on offered by a venue (AV package, extra hours).
type VenueOption struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Price any    `bson:"price,omitempty" json:"price,omitempty"`
}

// ServiceDetails is the catalogue payload nested inside a service record.
type ServiceDetails struct {
	MenuItems       []MenuItem       `bson:"menu_items,omitempty" json:"menuItems,omitempty"`
	Combos          []Combo          `bson:"combos,omitempty" json:"combos,omitempty"`
	RentalItems     []RentalItem     `bson:"rental_items,omitempty" json:"rentalItems,omitempty"`
	StaffRoles      []StaffRole      `bson:"staff_roles,omitempty" json:"staffRoles,omitempty"`
	VenueOptions    []VenueOption    `bson:"venue_options,omitempty" json:"venueOptions,omitempty"`
	DeliveryOptions *DeliveryOptions `bson:"delivery_options,omitempty" json:"deliveryOptions,omitempty"`
}
