package pricing

import (
	"fmt"
	"strings"

	"gatherly/models"
)

// MaxDeliveryMiles caps any parsed range maximum. Configured labels above
// this are treated as 100-mile windows.
const MaxDeliveryMiles = 100

// DistanceWindow is a numeric [min, max] window parsed from a range label.
type DistanceWindow struct {
	Min float64
	Max float64
}

// ParseDistanceRange parses a textual distance-range label into a numeric
// window. Supported forms: "5 miles" (a single bound, read as 0-5),
// "0-10 miles", and dash variants using en/em dashes or the minus sign.
func ParseDistanceRange(label string) (DistanceWindow, bool) {
	normalized := strings.NewReplacer("–", "-", "—", "-", "−", "-").Replace(label)

	var numbers []float64
	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		if f := parsePriceString(current.String()); f >= 0 {
			numbers = append(numbers, f)
		}
		current.Reset()
	}
	for _, r := range normalized {
		if r >= '0' && r <= '9' || r == '.' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	switch {
	case len(numbers) == 0:
		return DistanceWindow{}, false
	case len(numbers) == 1:
		return DistanceWindow{Min: 0, Max: capMiles(numbers[0])}, true
	default:
		return DistanceWindow{Min: numbers[0], Max: capMiles(numbers[1])}, true
	}
}

func capMiles(max float64) float64 {
	if max > MaxDeliveryMiles {
		return MaxDeliveryMiles
	}
	return max
}

// ResolveDeliveryFee decides delivery eligibility and the applicable fee tier
// for one service. A nil distance means the actual distance is unavailable; in
// that case the first configured range applies, with the reason saying so.
func ResolveDeliveryFee(opts *models.DeliveryOptions, distance *float64) models.DeliveryFeeResult {
	if opts == nil || !opts.Delivery {
		return models.DeliveryFeeResult{Eligible: false, Fee: 0, Reason: "delivery not offered"}
	}
	if len(opts.DeliveryRanges) == 0 {
		return models.DeliveryFeeResult{Eligible: true, Fee: 0, Reason: "no delivery range specified"}
	}

	if distance == nil {
		first := opts.DeliveryRanges[0]
		return models.DeliveryFeeResult{
			Eligible: true,
			Fee:      NormalizePrice(first.Fee),
			Range:    first.Range,
			Reason:   "distance unavailable, defaulted to first delivery range",
		}
	}

	d := *distance
	maxServable := 0.0
	for _, r := range opts.DeliveryRanges {
		window, ok := ParseDistanceRange(r.Range)
		if !ok {
			continue
		}
		if window.Max > maxServable {
			maxServable = window.Max
		}
		if d >= window.Min && d <= window.Max {
			return models.DeliveryFeeResult{
				Eligible: true,
				Fee:      NormalizePrice(r.Fee),
				Range:    r.Range,
			}
		}
	}

	if maxServable == 0 {
		// Every configured range label failed to parse; naming a 0-mile
		// maximum would be misleading.
		return models.DeliveryFeeResult{Eligible: false, Fee: 0, Reason: "no parseable delivery ranges"}
	}
	if d > maxServable {
		return models.DeliveryFeeResult{
			Eligible: false,
			Fee:      0,
			Reason:   fmt.Sprintf("distance %.1f miles exceeds the maximum deliverable distance of %.0f miles", d, maxServable),
		}
	}

	// Distance fell into a gap between configured windows; take the first
	// range that reaches it rather than failing the whole order.
	for _, r := range opts.DeliveryRanges {
		window, ok := ParseDistanceRange(r.Range)
		if !ok {
			continue
		}
		if d <= window.Max {
			return models.DeliveryFeeResult{
				Eligible: true,
				Fee:      NormalizePrice(r.Fee),
				Range:    r.Range,
			}
		}
	}

	return models.DeliveryFeeResult{Eligible: false, Fee: 0, Reason: "no matching delivery range"}
}

// CheckDeliveryMinimum reports a non-fatal warning when a service's subtotal
// is below its configured delivery minimum. Delivery still proceeds.
func CheckDeliveryMinimum(svc models.ServiceSelection, subtotal float64) *models.MinimumOrderWarning {
	opts := svc.ServiceDetails.DeliveryOptions
	if opts == nil {
		return nil
	}
	minimum := NormalizePrice(opts.DeliveryMinimum)
	if minimum <= 0 || subtotal >= minimum {
		return nil
	}
	return &models.MinimumOrderWarning{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Minimum:     minimum,
		Subtotal:    subtotal,
		Shortfall:   minimum - subtotal,
	}
}

// ResolveOrderDelivery aggregates delivery fee resolution across every service
// in an order. A distance failure on any single service marks the aggregate
// ineligible with that service's reason, while fees from the remaining
// eligible services are still summed into the total.
func ResolveOrderDelivery(services []models.ServiceSelection, subtotals map[string]float64, distances map[string]float64) models.DeliveryDetails {
	details := models.DeliveryDetails{
		PerService: make(map[string]models.DeliveryFeeResult, len(services)),
	}

	anyOffers := false
	for _, svc := range services {
		opts := svc.ServiceDetails.DeliveryOptions
		if opts == nil || !opts.Delivery {
			details.PerService[svc.ID] = models.DeliveryFeeResult{Eligible: false, Reason: "delivery not offered"}
			continue
		}
		anyOffers = true

		var distance *float64
		if d, ok := distances[svc.ID]; ok {
			distance = &d
		}

		result := ResolveDeliveryFee(opts, distance)
		details.PerService[svc.ID] = result

		if result.Eligible {
			details.TotalFee += result.Fee
		} else {
			details.Eligible = false
			details.Reason = result.Reason
		}

		if warning := CheckDeliveryMinimum(svc, subtotals[svc.ID]); warning != nil {
			details.MinimumWarnings = append(details.MinimumWarnings, *warning)
		}
	}

	if !anyOffers {
		details.Eligible = false
		details.Reason = "delivery not offered"
		return details
	}
	if details.Reason == "" {
		details.Eligible = true
	}

	return details
}
