package checkout

import (
	"testing"

	"github.com/noah-isme/backend-sticker/internal/pricing"
	"github.com/noah-isme/backend-sticker/internal/promo"
)

func TestAssembleTaxSplit(t *testing.T) {
	// 120.00 inclusive of 20% VAT splits into 100.00 + 20.00.
	b := Assemble(12_000, 2000, 0, nil)
	if b.Subtotal != 10_000 {
		t.Fatalf("expected subtotal 10000, got %d", b.Subtotal)
	}
	if b.Tax != 2_000 {
		t.Fatalf("expected tax 2000, got %d", b.Tax)
	}
	if b.Subtotal+b.Tax != 12_000 {
		t.Fatalf("subtotal+tax must reconstruct the items total, got %d", b.Subtotal+b.Tax)
	}
}

func TestAssembleZeroTaxRate(t *testing.T) {
	b := Assemble(12_000, 0, 500, nil)
	if b.Subtotal != 12_000 || b.Tax != 0 {
		t.Fatalf("expected untouched subtotal, got %+v", b)
	}
	if b.Total != 12_500 {
		t.Fatalf("expected total 12500, got %d", b.Total)
	}
}

func TestAssembleStackedPromotionsScenario(t *testing.T) {
	promos := []promo.Promotion{
		promo.New("SAVE10", "percentage", "items", 10),
		promo.New("FREESHIP", "percentage", "shipping", 100),
	}
	b := Assemble(10_000, 2000, 500, promos)
	if b.Discount != 1_500 {
		t.Fatalf("expected discount 1500, got %d", b.Discount)
	}
	if b.Total != 9_000 {
		t.Fatalf("expected total 9000, got %d", b.Total)
	}
}

func TestAssembleNeverNegative(t *testing.T) {
	promos := []promo.Promotion{
		promo.New("WOW1", "percentage", "order", 100),
		promo.New("WOW2", "percentage", "order", 100),
		promo.New("GIFT", "fixed", "order", 500),
	}
	b := Assemble(3_000, 2000, 700, promos)
	if b.Total != 0 {
		t.Fatalf("expected total clamped to zero, got %d", b.Total)
	}
	if b.Discount <= 0 {
		t.Fatalf("expected positive discount, got %d", b.Discount)
	}
}

func TestAssembleClampsNegativeInputs(t *testing.T) {
	b := Assemble(-500, 2000, -300, nil)
	if b.Total != 0 || b.Subtotal != 0 || b.Shipping != 0 {
		t.Fatalf("negative inputs must clamp, got %+v", b)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	promos := []promo.Promotion{promo.New("SAVE10", "percentage", "items", 10)}
	first := Assemble(35_300, 2000, 590, promos)
	for i := 0; i < 5; i++ {
		if got := Assemble(35_300, 2000, 590, promos); got != first {
			t.Fatalf("assembler not deterministic: %+v != %+v", got, first)
		}
	}
	var wantDiscount pricing.Cents = 3_530
	if first.Discount != wantDiscount {
		t.Fatalf("expected discount %d, got %d", wantDiscount, first.Discount)
	}
}
