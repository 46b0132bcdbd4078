package pricing

import (
	"context"

	"gatherly/models"

	"go.uber.org/zap"
)

// defaultServiceFeeRate is the platform commission applied when no admin fee
// settings are supplied. Rates are fractions in [0, 1].
const defaultServiceFeeRate = 0.05

// TaxRateLookup resolves a free-text location into a tax rate. A nil result
// with a nil error means no rate is configured for the location, which is not
// an error: the order is simply priced without tax.
type TaxRateLookup interface {
	Lookup(ctx context.Context, location string) (*models.TaxRate, error)
}

// Engine is the order-level pricing calculator.
type Engine interface {
	CalculateOrderTotals(ctx context.Context, req models.QuoteRequest) models.OrderTotals
	BuildPricingSnapshot(ctx context.Context, invoiceID string, req models.QuoteRequest) models.InvoicePricingSnapshot
}

// DefaultPricingEngine implements Engine. TaxRates may be nil, in which case
// every order is priced without tax. FeeDefaults seeds the service fee when a
// request carries no settings; a nil FeeDefaults falls back to
// defaultServiceFeeRate.
type DefaultPricingEngine struct {
	TaxRates    TaxRateLookup
	FeeDefaults *models.AdminFeeSettings
	Logger      *zap.Logger
}

// CalculateOrderTotals composes per-service totals, the platform service fee,
// custom adjustments, delivery fees and tax into one order total. It never
// fails: degraded input contributes zero, and unavailable collaborators
// (tax rates, delivery configuration) degrade to explicit zero results with a
// descriptive reason instead of an error.
func (e *DefaultPricingEngine) CalculateOrderTotals(ctx context.Context, req models.QuoteRequest) models.OrderTotals {
	totals := models.OrderTotals{
		ServiceSubtotals:   make(map[string]float64, len(req.Services)),
		IsTaxExempt:        req.IsTaxExempt,
		IsServiceFeeWaived: req.IsServiceFeeWaived,
	}

	for _, svc := range req.Services {
		serviceTotal := CalculateServiceTotal(svc, req.Selections, req.GuestCount)
		totals.ServiceSubtotals[svc.ID] = serviceTotal
		totals.Subtotal += serviceTotal
	}

	totals.ServiceFee = serviceFee(totals.Subtotal, req.FeeSettings, e.FeeDefaults, req.IsServiceFeeWaived)

	taxableAdjustments, nonTaxableAdjustments := 0.0, 0.0
	for _, adj := range req.Adjustments {
		line := resolveAdjustment(adj, totals.Subtotal)
		totals.Adjustments = append(totals.Adjustments, line)
		if line.Taxable {
			taxableAdjustments += line.Amount
		} else {
			nonTaxableAdjustments += line.Amount
		}
	}
	totals.AdjustmentsTotal = taxableAdjustments + nonTaxableAdjustments

	totals.DeliveryDetails = ResolveOrderDelivery(req.Services, totals.ServiceSubtotals, req.Distances)
	totals.DeliveryFee = totals.DeliveryDetails.TotalFee

	totals.Tax, totals.TaxData = e.resolveTax(ctx, req, totals.Subtotal, totals.ServiceFee, totals.DeliveryFee, taxableAdjustments)

	totals.Total = totals.Subtotal + totals.ServiceFee + totals.DeliveryFee +
		taxableAdjustments + nonTaxableAdjustments + totals.Tax

	return totals
}

// serviceFee computes the platform commission: a percentage of the subtotal, a
// fixed amount, or both ("hybrid"). Request settings win over the operator
// defaults. A waived fee is always 0.
func serviceFee(subtotal float64, settings, defaults *models.AdminFeeSettings, waived bool) float64 {
	if waived {
		return 0
	}

	rate := defaultServiceFeeRate
	fixed := 0.0
	feeType := "percentage"

	apply := func(s *models.AdminFeeSettings) {
		if s == nil {
			return
		}
		if s.ServiceFeePercentage != nil {
			rate = clampNonNegative(*s.ServiceFeePercentage)
		}
		if s.ServiceFeeFixed != nil {
			fixed = clampNonNegative(*s.ServiceFeeFixed)
		}
		if s.ServiceFeeType != "" {
			feeType = s.ServiceFeeType
		}
	}
	apply(defaults)
	apply(settings)

	switch feeType {
	case "fixed":
		return fixed
	case "hybrid":
		return subtotal*rate + fixed
	default:
		return subtotal * rate
	}
}

// resolveAdjustment turns a CustomAdjustment into a signed line amount.
// Percentage adjustments apply to the subtotal only, never to fees or
// delivery; discounts negate the amount.
func resolveAdjustment(adj models.CustomAdjustment, subtotal float64) models.AdjustmentLine {
	var amount float64
	switch adj.Type {
	case models.AdjustmentTypePercentage:
		amount = subtotal * clampNonNegative(adj.Value) / 100
	default:
		amount = clampNonNegative(adj.Value)
	}
	if adj.Mode == models.AdjustmentModeDiscount {
		amount = -amount
	}
	return models.AdjustmentLine{
		Label:   adj.Label,
		Amount:  amount,
		Taxable: adj.Taxable,
	}
}

// resolveTax computes the order's tax amount. The taxable base is the
// subtotal plus service fee, delivery fee and taxable adjustments; non-taxable
// adjustments stay out of the base. A missing rate is not an error.
func (e *DefaultPricingEngine) resolveTax(ctx context.Context, req models.QuoteRequest, subtotal, fee, delivery, taxableAdjustments float64) (float64, models.TaxData) {
	if req.IsTaxExempt {
		return 0, models.TaxData{
			Rate:        0,
			Description: "Tax Exempt",
			Location:    req.DeliveryAddress,
		}
	}

	if e.TaxRates == nil || req.DeliveryAddress == "" {
		return 0, models.TaxData{Location: req.DeliveryAddress}
	}

	rate, err := e.TaxRates.Lookup(ctx, req.DeliveryAddress)
	if err != nil {
		if e.Logger != nil {
			e.Logger.Warn("tax rate lookup failed, pricing without tax",
				zap.String("location", req.DeliveryAddress), zap.Error(err))
		}
		return 0, models.TaxData{Location: req.DeliveryAddress}
	}
	if rate == nil || rate.Rate <= 0 {
		return 0, models.TaxData{Location: req.DeliveryAddress}
	}

	base := subtotal + fee + delivery + taxableAdjustments
	return base * rate.Rate, models.TaxData{
		Rate:         rate.Rate,
		Description:  rate.Description,
		Jurisdiction: rate.Jurisdiction,
		Location:     req.DeliveryAddress,
	}
}
