package pricing

// Tier is one quantity/discount pair of the static discount schedule.
// The tier list is ordered ascending by quantity and the discount is
// non-decreasing with tier size.
type Tier struct {
	Qty         int   `json:"qty"`
	DiscountBps int64 `json:"discountBps"`
}

// TierPrice is one row of the price matrix shown on the product page.
type TierPrice struct {
	Qty         int   `json:"qty"`
	DiscountBps int64 `json:"discountBps"`
	Unit        Cents `json:"unitCents"`
	LineTotal   Cents `json:"lineTotalCents"`
}

// Matrix expands a full-price unit across the table's quantity tiers.
// Rounding happens once per tier on the discounted unit price; the line
// total is then an exact integer multiple, so no residual cents appear
// across the matrix. Output order is the tier order.
func (t Table) Matrix(unit Cents) []TierPrice {
	out := make([]TierPrice, 0, len(t.Tiers))
	for _, tier := range t.Tiers {
		keep := int64(10_000) - tier.DiscountBps
		if keep < 0 {
			keep = 0
		}
		discounted := unit.MulBps(keep)
		out = append(out, TierPrice{
			Qty:         tier.Qty,
			DiscountBps: tier.DiscountBps,
			Unit:        discounted,
			LineTotal:   discounted * Cents(tier.Qty),
		})
	}
	return out
}
