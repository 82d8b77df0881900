package cart

import (
	"testing"

	"github.com/noah-isme/backend-sticker/internal/pricing"
)

func squareLine(qty int) Line {
	cfg := pricing.Configuration{
		Shape:    pricing.ShapeSquare,
		Support:  pricing.SupportClearVinyl,
		WidthCm:  10,
		HeightCm: 10,
	}
	return Line{
		ProductID: "sticker-custom",
		Config:    cfg,
		Qty:       qty,
		UnitPrice: 557,
		Subtotal:  557 * pricing.Cents(qty),
	}
}

func TestAddMergesIdenticalConfiguration(t *testing.T) {
	var c Cart
	c.Add(squareLine(30))
	c.Add(squareLine(20))
	if len(c.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(c.Lines))
	}
	if c.Lines[0].Qty != 50 {
		t.Fatalf("expected merged qty 50, got %d", c.Lines[0].Qty)
	}
	want := 557 * pricing.Cents(50)
	if c.Lines[0].Subtotal != want {
		t.Fatalf("expected merged subtotal %d, got %d", want, c.Lines[0].Subtotal)
	}
}

func TestAddKeepsPositionOnMerge(t *testing.T) {
	var c Cart
	c.Add(squareLine(10))
	other := squareLine(5)
	other.Config.Support = pricing.SupportWhiteVinyl
	c.Add(other)
	c.Add(squareLine(10))
	if len(c.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(c.Lines))
	}
	if c.Lines[0].Config.Support != pricing.SupportClearVinyl {
		t.Fatal("merged line lost its original position")
	}
	if c.Lines[0].Qty != 20 {
		t.Fatalf("expected qty 20 in first line, got %d", c.Lines[0].Qty)
	}
}

func TestAddDifferentPriceAppends(t *testing.T) {
	var c Cart
	c.Add(squareLine(10))
	repriced := squareLine(10)
	repriced.UnitPrice = 600
	repriced.Subtotal = 6000
	c.Add(repriced)
	if len(c.Lines) != 2 {
		t.Fatalf("unit price is part of the identity tuple, expected two lines, got %d", len(c.Lines))
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	var c Cart
	c.Add(squareLine(10))
	if c.Remove(5) || c.Remove(-1) {
		t.Fatal("out-of-range remove must report false")
	}
	if len(c.Lines) != 1 {
		t.Fatalf("expected line to survive, got %d lines", len(c.Lines))
	}
}

func TestRemoveThenReAdd(t *testing.T) {
	var c Cart
	c.Add(squareLine(30))
	if !c.Remove(0) {
		t.Fatal("expected remove to succeed")
	}
	c.Add(squareLine(30))
	if len(c.Lines) != 1 || c.Lines[0].Qty != 30 {
		t.Fatalf("re-added line not equivalent: %+v", c.Lines)
	}
}

func TestTotalsRecomputed(t *testing.T) {
	var c Cart
	c.Add(squareLine(30))
	c.Add(squareLine(20))
	if c.TotalItems() != 50 {
		t.Fatalf("expected 50 items, got %d", c.TotalItems())
	}
	if c.TotalCents() != 557*50 {
		t.Fatalf("expected total %d, got %d", 557*50, c.TotalCents())
	}
	c.Clear()
	if c.TotalItems() != 0 || c.TotalCents() != 0 {
		t.Fatal("cleared cart must total zero")
	}
}

func TestApplyPromoIdempotent(t *testing.T) {
	var c Cart
	c.ApplyPromo("SAVE10")
	c.ApplyPromo("SAVE10")
	c.ApplyPromo("FREESHIP")
	if len(c.PromoCodes) != 2 {
		t.Fatalf("expected two codes, got %v", c.PromoCodes)
	}
	c.RemovePromo("SAVE10")
	if len(c.PromoCodes) != 1 || c.PromoCodes[0] != "FREESHIP" {
		t.Fatalf("unexpected codes after removal: %v", c.PromoCodes)
	}
}
