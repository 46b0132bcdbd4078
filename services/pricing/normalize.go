package pricing

import (
	"math"
	"strconv"
	"strings"

	"gatherly/models"
)

// NormalizePrice converts a loosely formatted price value into a non-negative
// float64. Accepted shapes: numbers, clean numeric strings, currency strings
// ("$25.00"), unit-suffixed strings ("25 per hour", "30/Person") and
// hyphenated ranges ("50-100", which resolves to its leading number).
// Anything unparseable degrades to 0; negatives are clamped to 0.
func NormalizePrice(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return clampNonNegative(v)
	case float32:
		return clampNonNegative(float64(v))
	case int:
		return clampNonNegative(float64(v))
	case int32:
		return clampNonNegative(float64(v))
	case int64:
		return clampNonNegative(float64(v))
	case string:
		return clampNonNegative(parsePriceString(v))
	default:
		return 0
	}
}

// parsePriceString strips every character except digits, dot and a leading
// minus, then parses the longest numeric prefix of what remains. This mirrors
// how upstream records were parsed historically: "$25 per hour" -> 25,
// "50-100" -> 50.
func parsePriceString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	end := 0
	seenDot := false
	for i, r := range cleaned {
		if r == '-' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end = i + 1
	}

	f, err := strconv.ParseFloat(cleaned[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

// NormalizeQuantity floors a raw quantity to an integer, clamped at 0.
func NormalizeQuantity(raw any) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return clampQuantity(v)
	case float32:
		return clampQuantity(float64(v))
	case int:
		return clampQuantity(float64(v))
	case int64:
		return clampQuantity(float64(v))
	case string:
		return clampQuantity(parsePriceString(v))
	default:
		return 0
	}
}

// NormalizeGuestCount floors a guest count to an integer of at least 1.
// It must never return 0: per-person figures divide by it.
func NormalizeGuestCount(guestCount int) int {
	if guestCount < 1 {
		return 1
	}
	return guestCount
}

// Round2 rounds to 2 decimal places. Internal computation keeps full float
// precision; rounding happens once, at display and payment boundaries.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ToCents converts a monetary amount to integer cents for payment providers.
func ToCents(f float64) int64 {
	return int64(math.Round(f * 100))
}

func clampNonNegative(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}

func clampQuantity(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	return int(math.Floor(f))
}

// identitySet collects every identity an item may be keyed by. Catalogues use
// id, itemId, name or title interchangeably, so matching stays lenient.
func identitySet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func menuItemIdentity(item models.MenuItem) map[string]struct{} {
	return identitySet(item.ID, item.ItemID, item.Name, item.Title)
}

func comboIdentity(combo models.Combo) map[string]struct{} {
	return identitySet(combo.ID, combo.ItemID, combo.Name, combo.Title)
}

func matches(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

// itemKeyForService strips the "<serviceId>_" prefix from a selection key when
// present, returning the bare item key.
func itemKeyForService(key, serviceID string) string {
	if serviceID != "" && strings.HasPrefix(key, serviceID+"_") {
		return strings.TrimPrefix(key, serviceID+"_")
	}
	return key
}
