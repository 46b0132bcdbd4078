package pricing

import "gatherly/models"

// CalculateCateringPrice computes a catering service's final price.
//
// The combo base price is NOT multiplied by the guest count: the base price is
// already the package rate for the booking. The guest count only divides the
// additional charges into a per-person display figure. Additional-charge lines
// total (unitPrice + additionalCharge) * quantity, with no guest-count
// multiplication either.
//
// Combo-category items split two ways: an item with no upcharge and a positive
// price contributes price * quantity to a simple-items total; an item with an
// upcharge contributes (price + upcharge) * quantity to the additional charges
// (its price already includes the combo-base contribution, so this is the full
// per-item charge).
func CalculateCateringPrice(basePrice float64, additionalCharges []models.CateringItemBreakdown, guestCount int, comboCategoryItems []ComboCategoryItem) models.CateringPriceResult {
	basePrice = clampNonNegative(basePrice)
	guests := NormalizeGuestCount(guestCount)

	result := models.CateringPriceResult{
		BasePriceTotal: basePrice,
	}

	for _, line := range additionalCharges {
		qty := line.Quantity
		if qty < 0 {
			qty = 0
		}
		unit := clampNonNegative(line.UnitPrice)
		additional := clampNonNegative(line.AdditionalCharge)

		line.Quantity = qty
		line.UnitPrice = unit
		line.AdditionalCharge = additional
		line.Total = (unit + additional) * float64(qty)
		line.IsAdditionalCharge = true

		result.AdditionalCharges = append(result.AdditionalCharges, line)
		result.AdditionalChargesTotal += line.Total
	}

	for _, item := range comboCategoryItems {
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		price := clampNonNegative(item.Price)
		additional := clampNonNegative(item.AdditionalCharge)

		if additional > 0 {
			total := (price + additional) * float64(qty)
			result.AdditionalCharges = append(result.AdditionalCharges, models.CateringItemBreakdown{
				Name:               item.Name,
				Quantity:           qty,
				UnitPrice:          price,
				AdditionalCharge:   additional,
				Total:              total,
				IsAdditionalCharge: true,
			})
			result.AdditionalChargesTotal += total
		} else if price > 0 {
			result.SimpleItemsTotal += price * float64(qty)
		}
	}

	result.AdditionalChargesPerPerson = result.AdditionalChargesTotal / float64(guests)
	result.FinalTotal = result.BasePriceTotal + result.SimpleItemsTotal + result.AdditionalChargesTotal

	return result
}
