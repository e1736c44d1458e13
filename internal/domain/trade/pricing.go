package trade

import (
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// negotiationTolerance is the threshold under which a re-negotiated price is
// treated as unchanged, avoiding spurious audit churn.
var negotiationTolerance = decimal.NewFromFloat(0.01)

// PricingInput carries everything the pricing policy needs for one line.
// For manual lines Manual is true and ManualPrice is required; for
// catalog-backed lines the price fields are snapshots from the product row.
type PricingInput struct {
	Kind            OrderKind
	Manual          bool
	SellingPrice    *decimal.Decimal
	BuyingPrice     *decimal.Decimal
	ManualPrice     *decimal.Decimal
	NegotiatedPrice *decimal.Decimal
}

// LinePricing is the resolved price set for one order line.
// FinalPrice is authoritative for all totals; NegotiatedPrice is kept nil
// when it equals OriginalPrice so "never negotiated" and "negotiated back to
// the original number" stay distinguishable.
type LinePricing struct {
	BuyingPrice     *decimal.Decimal
	OriginalPrice   decimal.Decimal
	NegotiatedPrice *decimal.Decimal
	FinalPrice      decimal.Decimal
}

// ResolveLinePricing applies the pricing policy for one order line.
// Walk-in catalog lines prefer the selling price and fall back to the buying
// price; online catalog lines require a positive selling price; manual lines
// require a positive caller-supplied price.
func ResolveLinePricing(in PricingInput) (LinePricing, error) {
	original, err := resolveOriginalPrice(in)
	if err != nil {
		return LinePricing{}, err
	}

	final := original
	var negotiated *decimal.Decimal
	if in.NegotiatedPrice != nil {
		if !in.NegotiatedPrice.IsPositive() {
			return LinePricing{}, shared.NewDomainError("INVALID_PRICE", "negotiated price must be positive")
		}
		final = *in.NegotiatedPrice
		if !final.Equal(original) {
			n := final
			negotiated = &n
		}
	}

	return LinePricing{
		BuyingPrice:     in.BuyingPrice,
		OriginalPrice:   original,
		NegotiatedPrice: negotiated,
		FinalPrice:      final,
	}, nil
}

func resolveOriginalPrice(in PricingInput) (decimal.Decimal, error) {
	if in.Manual {
		if in.ManualPrice == nil || !in.ManualPrice.IsPositive() {
			return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "manual items require a positive price")
		}
		return *in.ManualPrice, nil
	}

	selling := derefOrZero(in.SellingPrice)
	if in.Kind.IsOnline() {
		if !selling.IsPositive() {
			return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "online orders require a positive selling price")
		}
		return selling, nil
	}

	if selling.IsPositive() {
		return selling, nil
	}
	buying := derefOrZero(in.BuyingPrice)
	if buying.IsPositive() {
		return buying, nil
	}
	return decimal.Zero, shared.NewDomainError("INVALID_PRICE", "product has no usable price")
}

// ResolveUnitPrice is the fallback chain every total computation uses:
// final price, then original price, then the catalog selling price, then
// zero. A zero value is treated as absent.
func ResolveUnitPrice(final, original, selling *decimal.Decimal) decimal.Decimal {
	for _, p := range []*decimal.Decimal{final, original, selling} {
		if p != nil && p.IsPositive() {
			return *p
		}
	}
	return decimal.Zero
}

// WithinNegotiationTolerance reports whether two prices are close enough to
// count as the same for negotiation no-op purposes.
func WithinNegotiationTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(negotiationTolerance)
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
