package cart

import (
	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// Line is one configured product the customer intends to purchase. UnitPrice
// is the price the line was quoted at; a later price change never retroactively
// touches an existing line (first write wins).
type Line struct {
	ProductID string                `json:"productId"`
	Config    pricing.Configuration `json:"config"`
	Qty       int                   `json:"qty"`
	UnitPrice pricing.Cents         `json:"unitPriceCents"`
	Subtotal  pricing.Cents         `json:"subtotalCents"`
}

// mergesWith reports whether two lines describe the same configuration for
// merge purposes. Quantity is deliberately excluded from the identity tuple.
func (l Line) mergesWith(o Line) bool {
	return l.ProductID == o.ProductID &&
		l.Config.Support == o.Config.Support &&
		l.Config.Shape == o.Config.Shape &&
		l.Config.WidthCm == o.Config.WidthCm &&
		l.Config.HeightCm == o.Config.HeightCm &&
		l.Config.DiameterCm == o.Config.DiameterCm &&
		l.UnitPrice == o.UnitPrice
}

// Cart is the session-scoped list of lines. It carries no derived totals;
// those are always recomputed from Lines so they cannot drift.
type Cart struct {
	ID         string   `json:"id"`
	AnonID     string   `json:"anonId,omitempty"`
	Lines      []Line   `json:"lines"`
	PromoCodes []string `json:"promoCodes,omitempty"`
}

// Add merges the new line into an existing identical-configuration line,
// keeping the existing line's position and quoted price, or appends it.
func (c *Cart) Add(line Line) {
	for i, existing := range c.Lines {
		if existing.mergesWith(line) {
			c.Lines[i].Qty += line.Qty
			c.Lines[i].Subtotal += line.Subtotal
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// Remove drops the line at index. Out-of-range indices are a no-op so the UI
// stays resilient to stale indices from concurrent renders; the return value
// reports whether a line was removed.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return true
}

// Clear empties the cart. Applied promotion codes go with the lines.
func (c *Cart) Clear() {
	c.Lines = nil
	c.PromoCodes = nil
}

// TotalItems sums line quantities.
func (c Cart) TotalItems() int {
	var n int
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// TotalCents sums line subtotals.
func (c Cart) TotalCents() pricing.Cents {
	var total pricing.Cents
	for _, l := range c.Lines {
		total += l.Subtotal
	}
	return total
}

// ApplyPromo records a promotion code on the cart. Reapplying an already
// applied code is a no-op.
func (c *Cart) ApplyPromo(code string) {
	for _, existing := range c.PromoCodes {
		if existing == code {
			return
		}
	}
	c.PromoCodes = append(c.PromoCodes, code)
}

// RemovePromo detaches a promotion code if present.
func (c *Cart) RemovePromo(code string) {
	for i, existing := range c.PromoCodes {
		if existing == code {
			c.PromoCodes = append(c.PromoCodes[:i], c.PromoCodes[i+1:]...)
			return
		}
	}
}
