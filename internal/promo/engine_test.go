package promo

import (
	"testing"

	"github.com/noah-isme/backend-sticker/internal/pricing"
)

func TestDiscountForPercentItems(t *testing.T) {
	p := New("SAVE10", "percentage", "items", 10)
	if got := DiscountFor(p, 10_000, 500); got != 1_000 {
		t.Fatalf("expected 1000, got %d", got)
	}
}

func TestDiscountForFreeShipping(t *testing.T) {
	p := New("FREESHIP", "percentage", "shipping", 100)
	if got := DiscountFor(p, 10_000, 500); got != 500 {
		t.Fatalf("expected full shipping discount of 500, got %d", got)
	}
}

func TestDiscountForFixedClamped(t *testing.T) {
	// 5 euros against 3 euros of shipping clamps to the target amount.
	p := New("SHIP5", "fixed", "shipping", 5)
	if got := DiscountFor(p, 10_000, 300); got != 300 {
		t.Fatalf("expected clamp to 300, got %d", got)
	}
	if got := DiscountFor(p, 10_000, 900); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
}

func TestDiscountForFixedOrderTarget(t *testing.T) {
	p := New("MINUS5", "fixed", "order", 5)
	if got := DiscountFor(p, 10_000, 500); got != 500 {
		t.Fatalf("expected 500 cents off the order, got %d", got)
	}
}

func TestDiscountForMalformed(t *testing.T) {
	cases := []Promotion{
		{Code: "A", Kind: "bogus", Target: TargetOrder, PercentBps: 1000},
		{Code: "B", Kind: KindPercent, Target: "elsewhere", PercentBps: 1000},
		{Code: "C", Kind: KindPercent, Target: TargetItems},
		{},
	}
	for _, p := range cases {
		if got := DiscountFor(p, 10_000, 500); got != 0 {
			t.Fatalf("promotion %q: expected zero discount, got %d", p.Code, got)
		}
	}
}

func TestTotalStacksIndependently(t *testing.T) {
	promos := []Promotion{
		New("SAVE10", "percentage", "items", 10),
		New("FREESHIP", "percentage", "shipping", 100),
	}
	var items pricing.Cents = 10_000
	var shipping pricing.Cents = 500
	if got := Total(promos, items, shipping); got != 1_500 {
		t.Fatalf("expected stacked discount 1500, got %d", got)
	}
}

func TestTotalAgainstOriginalAmounts(t *testing.T) {
	// Two 50% order promotions each discount half of the original total,
	// they do not compound against each other's remainder.
	promos := []Promotion{
		New("HALF1", "percentage", "order", 50),
		New("HALF2", "percentage", "order", 50),
	}
	if got := Total(promos, 8_000, 2_000); got != 10_000 {
		t.Fatalf("expected 10000, got %d", got)
	}
}
