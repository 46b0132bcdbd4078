package pricing

import (
	"strings"

	"gatherly/models"
)

// BaseItem is a catering combo entry carrying its own per-person base price.
type BaseItem struct {
	Name     string
	Quantity int
	Price    float64
	IsCombo  bool
}

// ComboCategoryItem is an item selected from within a named category of a
// combo. Its price is the full per-item charge, already inclusive of the
// combo-base contribution.
type ComboCategoryItem struct {
	Name             string
	Quantity         int
	Price            float64
	AdditionalCharge float64
}

// ExtractedItems holds the three buckets produced by the item extractor.
type ExtractedItems struct {
	BaseItems          []BaseItem
	AdditionalCharges  []models.CateringItemBreakdown
	ComboCategoryItems []ComboCategoryItem
}

// ExtractCateringItems resolves a selection map against a catering catalogue.
// Combos land in the base bucket, individual menu items are always treated as
// additional charges, and three-part keys resolve one level deeper into a
// combo category. Unknown keys and non-positive quantities are skipped
// silently: selection keys may be prefixed or bare, and catalogues key items
// by id, itemId, name or title, so strict matching would reject valid data.
func ExtractCateringItems(selections models.SelectionMap, serviceID string, details models.ServiceDetails) ExtractedItems {
	var out ExtractedItems

	for key, raw := range selections {
		if models.IsDurationKey(key) {
			continue
		}
		qty := NormalizeQuantity(raw)
		if qty <= 0 {
			continue
		}

		if item, ok := resolveComboCategoryItem(key, details.Combos); ok {
			item.Quantity = qty
			out.ComboCategoryItems = append(out.ComboCategoryItems, item)
			continue
		}

		itemKey := itemKeyForService(key, serviceID)

		if combo, ok := resolveCombo(itemKey, details.Combos); ok {
			out.BaseItems = append(out.BaseItems, BaseItem{
				Name:     comboName(combo),
				Quantity: qty,
				Price:    comboBasePrice(combo),
				IsCombo:  true,
			})
			continue
		}

		if item, ok := resolveMenuItem(itemKey, details.MenuItems); ok {
			out.AdditionalCharges = append(out.AdditionalCharges, menuItemCharge(item, qty))
			continue
		}
		// Unresolvable key: skip.
	}

	return out
}

// menuItemCharge builds the additional-charge line for an individual menu
// item. Without an explicit upcharge the item's own price becomes the
// additional charge and the base contribution is zero.
func menuItemCharge(item models.MenuItem, qty int) models.CateringItemBreakdown {
	price := NormalizePrice(item.Price)
	additional := NormalizePrice(item.AdditionalCharge)

	line := models.CateringItemBreakdown{
		Name:               menuItemName(item),
		Quantity:           qty,
		IsAdditionalCharge: true,
		IsMenuItem:         true,
	}
	if additional > 0 {
		line.UnitPrice = price
		line.AdditionalCharge = additional
	} else {
		line.AdditionalCharge = price
	}
	return line
}

func resolveCombo(key string, combos []models.Combo) (models.Combo, bool) {
	for _, combo := range combos {
		if matches(comboIdentity(combo), key) {
			return combo, true
		}
	}
	return models.Combo{}, false
}

func resolveMenuItem(key string, items []models.MenuItem) (models.MenuItem, bool) {
	for _, item := range items {
		if matches(menuItemIdentity(item), key) {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// resolveComboCategoryItem handles the "<comboId>_<categoryId>_<itemId>" key
// form. All three parts must resolve; otherwise the key is not treated as a
// combo-category selection.
func resolveComboCategoryItem(key string, combos []models.Combo) (ComboCategoryItem, bool) {
	parts := strings.SplitN(key, "_", 3)
	if len(parts) != 3 {
		return ComboCategoryItem{}, false
	}

	combo, ok := resolveCombo(parts[0], combos)
	if !ok {
		return ComboCategoryItem{}, false
	}

	var category *models.ComboCategory
	for i := range combo.Categories {
		c := &combo.Categories[i]
		if c.ID == parts[1] || c.Name == parts[1] {
			category = c
			break
		}
	}
	if category == nil {
		return ComboCategoryItem{}, false
	}

	item, ok := resolveMenuItem(parts[2], category.Items)
	if !ok {
		return ComboCategoryItem{}, false
	}

	return ComboCategoryItem{
		Name:             menuItemName(item),
		Price:            NormalizePrice(item.Price),
		AdditionalCharge: NormalizePrice(item.AdditionalCharge),
	}, true
}

func menuItemName(item models.MenuItem) string {
	if item.Name != "" {
		return item.Name
	}
	if item.Title != "" {
		return item.Title
	}
	return item.ID
}

func comboName(combo models.Combo) string {
	if combo.Name != "" {
		return combo.Name
	}
	if combo.Title != "" {
		return combo.Title
	}
	return combo.ID
}

// comboBasePrice prefers the explicit base price, falling back to the combo's
// plain price field.
func comboBasePrice(combo models.Combo) float64 {
	if p := NormalizePrice(combo.BasePrice); p > 0 {
		return p
	}
	return NormalizePrice(combo.Price)
}
