package checkout

import (
	"github.com/noah-isme/backend-sticker/internal/pricing"
	"github.com/noah-isme/backend-sticker/internal/promo"
)

// Breakdown is the order summary shown to the customer and handed verbatim
// to payment initiation. Subtotal is the pre-tax items amount; the items
// total the customer saw already includes tax, so Subtotal+Tax reconstructs
// it exactly.
type Breakdown struct {
	Subtotal pricing.Cents `json:"subtotalCents"`
	Tax      pricing.Cents `json:"taxCents"`
	Shipping pricing.Cents `json:"shippingCents"`
	Discount pricing.Cents `json:"discountCents"`
	Total    pricing.Cents `json:"totalCents"`
}

// Assemble combines the tax-inclusive items total, the tax rate in basis
// points, the shipping cost, and the applied promotions into the final
// breakdown. Deterministic, no I/O, and the total never goes negative.
func Assemble(items pricing.Cents, taxBps int64, shipping pricing.Cents, promos []promo.Promotion) Breakdown {
	items = items.ClampNonNegative()
	shipping = shipping.ClampNonNegative()

	// Tax is carved out of the tax-inclusive items total, not added on top.
	subtotal := items.ExclusiveOfTax(taxBps)
	discount := promo.Total(promos, items, shipping)
	return Breakdown{
		Subtotal: subtotal,
		Tax:      items - subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    (items + shipping - discount).ClampNonNegative(),
	}
}
