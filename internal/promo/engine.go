package promo

import (
	"strings"

	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// Kind is the application method of a promotion.
type Kind string

// Application methods.
const (
	KindPercent Kind = "percentage"
	KindFixed   Kind = "fixed"
)

// Target selects which part of the order a promotion discounts.
type Target string

// Discount targets.
const (
	TargetOrder    Target = "order"
	TargetItems    Target = "items"
	TargetShipping Target = "shipping"
)

// Promotion is a resolved, ready-to-apply discount rule. PercentBps carries
// the percentage in basis points; Amount carries a fixed discount in major
// units, converted to Cents only inside DiscountFor.
type Promotion struct {
	Code       string        `json:"code"`
	Kind       Kind          `json:"kind"`
	Target     Target        `json:"target"`
	PercentBps int64         `json:"percentBps,omitempty"`
	Amount     pricing.Major `json:"amount,omitempty"`
}

// New builds a Promotion from the loosely-typed payload an external
// validation call returns: type and target strings plus a numeric value,
// percent values expressed in whole percent and fixed values in major units.
func New(code, kind, target string, value float64) Promotion {
	p := Promotion{
		Code:   strings.TrimSpace(code),
		Kind:   Kind(strings.ToLower(strings.TrimSpace(kind))),
		Target: Target(strings.ToLower(strings.TrimSpace(target))),
	}
	switch p.Kind {
	case KindPercent:
		p.PercentBps = int64(value * 100)
	case KindFixed:
		p.Amount = pricing.Major(value)
	}
	return p
}

// DiscountFor computes the discount a single promotion yields against the
// original, pre-discount amounts. A fixed discount never exceeds the amount
// it targets. A promotion with an unknown kind or target discounts nothing:
// malformed promotion data degrades instead of breaking checkout.
func DiscountFor(p Promotion, items, shipping pricing.Cents) pricing.Cents {
	var base pricing.Cents
	switch p.Target {
	case TargetOrder:
		base = items + shipping
	case TargetItems:
		base = items
	case TargetShipping:
		base = shipping
	default:
		return 0
	}
	if base <= 0 {
		return 0
	}
	switch p.Kind {
	case KindPercent:
		if p.PercentBps <= 0 {
			return 0
		}
		return base.MulBps(p.PercentBps)
	case KindFixed:
		d := pricing.CentsFromMajor(p.Amount)
		if d > base {
			d = base
		}
		return d
	default:
		return 0
	}
}

// Total sums the discounts of simultaneously applied promotions. Each is
// evaluated independently against the original amounts; discounts do not
// compound and there is no cross-promotion cap, the grand total is clamped
// at zero by the assembler instead.
func Total(promos []Promotion, items, shipping pricing.Cents) pricing.Cents {
	var sum pricing.Cents
	for _, p := range promos {
		sum += DiscountFor(p, items, shipping)
	}
	return sum
}
