package pricing

import (
	"gatherly/models"
)

// CalculateServiceTotal computes one service's monetary total. Pricing sources
// apply in strict priority order and never combine with the first match:
//
//  1. a positive pre-computed totalPrice wins outright;
//  2. a non-empty combo-selections list is authoritative, its entries'
//     totals are summed;
//  3. a catering service with live selections runs the catering calculator;
//  4. everything else falls to the generic item path.
//
// The calculator never fails: malformed prices and quantities contribute 0.
func CalculateServiceTotal(svc models.ServiceSelection, selections models.SelectionMap, guestCount int) float64 {
	if tp := NormalizePrice(svc.TotalPrice); tp > 0 {
		return tp
	}

	if combos := comboSelectionsTotal(svc.ComboSelections); len(svc.ComboSelections) > 0 {
		return combos
	}

	category := models.NormalizeCategory(svc.Category)

	var total float64
	if category == models.CategoryCatering && selections.HasPositive() {
		extracted := ExtractCateringItems(selections, svc.ID, svc.ServiceDetails)
		basePrice := 0.0
		for _, base := range extracted.BaseItems {
			basePrice += base.Price * float64(base.Quantity)
		}
		result := CalculateCateringPrice(basePrice, extracted.AdditionalCharges, guestCount, extracted.ComboCategoryItems)
		total = result.FinalTotal
	} else {
		total = genericServiceTotal(svc, category, selections)
	}

	total += comboSelectionsTotal(svc.ComboSelections)
	return total
}

func comboSelectionsTotal(combos []models.ComboSelection) float64 {
	var sum float64
	for _, combo := range combos {
		sum += NormalizePrice(combo.TotalPrice)
	}
	return sum
}

// genericItem is a catalogue entry flattened for selection matching.
type genericItem struct {
	identity        map[string]struct{}
	price           float64
	minimumHours    float64
	minimumQuantity int
}

// genericServiceTotal prices a non-catering (or selection-less catering)
// service. Staff, party-rental and catering categories never include the
// service base price: their pricing comes entirely from selected items.
func genericServiceTotal(svc models.ServiceSelection, category string, selections models.SelectionMap) float64 {
	var total float64

	includeBase := category != models.CategoryStaff &&
		category != models.CategoryPartyRentals &&
		category != models.CategoryCatering
	if includeBase {
		qty := NormalizeQuantity(svc.Quantity)
		if qty == 0 {
			qty = 1
		}
		total += NormalizePrice(svc.Price) * float64(qty) * durationMultiplier(NormalizePrice(svc.Duration))
	}

	catalogue := genericCatalogue(svc.ServiceDetails)

	for key, raw := range selections {
		if models.IsDurationKey(key) {
			continue
		}
		qty := NormalizeQuantity(raw)
		if qty <= 0 {
			continue
		}

		itemKey := itemKeyForService(key, svc.ID)
		item, ok := lookupGenericItem(catalogue, itemKey)
		if !ok {
			continue
		}

		if category == models.CategoryStaff {
			if item.minimumQuantity > 0 && qty < item.minimumQuantity {
				qty = item.minimumQuantity
			}
			effective := effectiveDuration(selections.DurationFor(svc.ID, itemKey), item.minimumHours)
			total += item.price * float64(qty) * effective
			continue
		}

		total += item.price * float64(qty)
	}

	// Staff services sometimes arrive with no role catalogue and a raw
	// headcount keyed by the service id itself.
	if category == models.CategoryStaff && len(catalogue) == 0 {
		if headcount := NormalizeQuantity(selections[svc.ID]); headcount > 0 {
			effective := effectiveDuration(selections.DurationFor(svc.ID, svc.ID), 0)
			total += NormalizePrice(svc.Price) * float64(headcount) * effective
		}
	}

	return total
}

// effectiveDuration is the greater of the selected duration and the declared
// minimum hours, never below 1.
func effectiveDuration(selected, minimumHours float64) float64 {
	effective := selected
	if minimumHours > effective {
		effective = minimumHours
	}
	if effective < 1 {
		effective = 1
	}
	return effective
}

// durationMultiplier clamps a base-price duration multiplier to at least 1.
func durationMultiplier(duration float64) float64 {
	if duration < 1 {
		return 1
	}
	return duration
}

func genericCatalogue(details models.ServiceDetails) []genericItem {
	var catalogue []genericItem

	for _, role := range details.StaffRoles {
		catalogue = append(catalogue, genericItem{
			identity:        identitySet(role.ID, role.Name, role.Title),
			price:           NormalizePrice(role.Price),
			minimumHours:    role.MinimumHours,
			minimumQuantity: role.MinimumQuantity,
		})
	}
	for _, rental := range details.RentalItems {
		catalogue = append(catalogue, genericItem{
			identity: identitySet(rental.ID, rental.Name, rental.Title),
			price:    NormalizePrice(rental.Price),
		})
	}
	for _, option := range details.VenueOptions {
		catalogue = append(catalogue, genericItem{
			identity: identitySet(option.ID, option.Name, option.Title),
			price:    NormalizePrice(option.Price),
		})
	}
	for _, item := range details.MenuItems {
		catalogue = append(catalogue, genericItem{
			identity: menuItemIdentity(item),
			price:    NormalizePrice(item.Price),
		})
	}

	return catalogue
}

func lookupGenericItem(catalogue []genericItem, key string) (genericItem, bool) {
	for _, item := range catalogue {
		if matches(item.identity, key) {
			return item, true
		}
	}
	return genericItem{}, false
}
