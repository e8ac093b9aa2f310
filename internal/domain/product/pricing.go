package product

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/xenking/snapbuy-client/internal/domain/customer"
)

var hundred = decimal.NewFromInt(100)

// Quote is the display price resolved for a product. It is advisory only:
// the charged total is computed by the remote order-creation endpoint.
type Quote struct {
	// UnitPrice is the resolved per-unit price, in the catalog's currency
	// unit, unrounded.
	UnitPrice decimal.Decimal
	// SavingsPercent is how far UnitPrice sits below the most expensive
	// breakpoint of a tiered table, clamped to zero. Always zero for flat
	// pricing. A zero value means there is no discount worth showing.
	SavingsPercent decimal.Decimal
}

// Resolve computes the display price of p for the requested quantity and the
// viewer's account status.
//
// Flat products resolve to the customer tier only when status is exactly
// accepted; quantity does not affect the unit price. Tiered products resolve
// to the cheapest breakpoint the quantity qualifies for, falling back to the
// breakpoint with the highest minimum quantity when none qualify.
//
// A missing or malformed pricing shape yields a zero quote rather than an
// error, so display paths stay total on bad catalog data.
func Resolve(p *Product, quantity int, status customer.Status) Quote {
	if p == nil {
		return Quote{}
	}
	switch p.Type {
	case KindSingle:
		return resolveFlat(p.Single, status)
	case KindMultiple:
		return resolveTiered(p.Multiple, quantity)
	default:
		return Quote{}
	}
}

func resolveFlat(prices *FlatPrices, status customer.Status) Quote {
	if prices == nil {
		return Quote{}
	}
	unit := prices.Client
	if status == customer.StatusAccepted {
		unit = prices.Customer
	}
	return Quote{UnitPrice: unit}
}

func resolveTiered(pricing *TierPricing, quantity int) Quote {
	if pricing == nil || len(pricing.Prices) == 0 {
		return Quote{}
	}

	// Cheapest-qualifying-tier policy: scan breakpoints from cheapest to
	// most expensive and take the first one the quantity qualifies for.
	byPrice := make([]Breakpoint, len(pricing.Prices))
	copy(byPrice, pricing.Prices)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price.LessThan(byPrice[j].Price)
	})

	unit := decimal.Decimal{}
	found := false
	for _, b := range byPrice {
		if b.Quantity <= quantity {
			unit = b.Price
			found = true
			break
		}
	}
	if !found {
		// Nothing qualifies: charge the worst (highest-minimum) tier
		// instead of failing.
		worst := pricing.Prices[0]
		for _, b := range pricing.Prices[1:] {
			if b.Quantity > worst.Quantity {
				worst = b
			}
		}
		unit = worst.Price
	}

	return Quote{
		UnitPrice:      unit,
		SavingsPercent: savings(byPrice[len(byPrice)-1].Price, unit),
	}
}

// savings is the discount of unit relative to the most expensive breakpoint,
// as a percentage clamped to zero.
func savings(maxPrice, unit decimal.Decimal) decimal.Decimal {
	if maxPrice.IsZero() {
		return decimal.Zero
	}
	s := maxPrice.Sub(unit).Div(maxPrice).Mul(hundred)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}
