package pricing

import (
	"math"
	"testing"
)

func TestAreaCircle(t *testing.T) {
	cfg := Configuration{Shape: ShapeCircle, Support: SupportWhiteVinyl, DiameterCm: 10}
	want := math.Pi * 25
	if got := cfg.Area(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected area %f, got %f", want, got)
	}
}

func TestAreaRectangle(t *testing.T) {
	cfg := Configuration{Shape: ShapeRectangle, Support: SupportWhiteVinyl, WidthCm: 4, HeightCm: 6}
	if got := cfg.Area(); got != 24 {
		t.Fatalf("expected area 24, got %f", got)
	}
}

func TestAreaMissingDimensions(t *testing.T) {
	cfg := Configuration{Shape: ShapeCircle, Support: SupportWhiteVinyl}
	if got := cfg.Area(); got != 0 {
		t.Fatalf("expected zero area, got %f", got)
	}
	if cfg.Complete() {
		t.Fatal("configuration without diameter must not be complete")
	}
}

func TestUnitPriceCircleScenario(t *testing.T) {
	// 10cm white vinyl circle at 0.045/cm²: area ≈78.54cm², base ≈3.534.
	table := DefaultTable()
	cfg := Configuration{Shape: ShapeCircle, Support: SupportWhiteVinyl, DiameterCm: 10}
	if got := table.UnitPrice(cfg); got != 353 {
		t.Fatalf("expected 353 cents, got %d", got)
	}
}

func TestUnitPriceZeroArea(t *testing.T) {
	table := DefaultTable()
	cfg := Configuration{Shape: ShapeRectangle, Support: SupportWhiteVinyl}
	if got := table.UnitPrice(cfg); got != 0 {
		t.Fatalf("expected zero price for zero area, got %d", got)
	}
}

func TestUnitPriceFloor(t *testing.T) {
	table := DefaultTable()
	cfg := Configuration{Shape: ShapeSquare, Support: SupportWhiteVinyl, WidthCm: 1, HeightCm: 1}
	// 0.045 for 1cm² is far below the 0.20 floor.
	if got := table.UnitPrice(cfg); got != 20 {
		t.Fatalf("expected floor of 20 cents, got %d", got)
	}
}

func TestUnitPriceMonotonicInArea(t *testing.T) {
	table := DefaultTable()
	var prev Cents
	for side := 1.0; side <= 30; side++ {
		cfg := Configuration{Shape: ShapeSquare, Support: SupportClearVinyl, WidthCm: side, HeightCm: side}
		price := table.UnitPrice(cfg)
		if price < prev {
			t.Fatalf("price decreased at side %f: %d < %d", side, price, prev)
		}
		prev = price
	}
}

func TestMatrixTier100(t *testing.T) {
	table := DefaultTable()
	rows := table.Matrix(353)
	var row TierPrice
	for _, r := range rows {
		if r.Qty == 100 {
			row = r
		}
	}
	if row.Qty != 100 {
		t.Fatal("tier 100 missing from matrix")
	}
	if row.Unit != 289 {
		t.Fatalf("expected 289 cents after 18%% discount, got %d", row.Unit)
	}
	if row.LineTotal != 28_900 {
		t.Fatalf("expected line total 28900, got %d", row.LineTotal)
	}
}

func TestMatrixExactTotals(t *testing.T) {
	table := DefaultTable()
	for _, unit := range []Cents{1, 20, 353, 999, 12_345} {
		prevQty := 0
		for _, row := range table.Matrix(unit) {
			if row.LineTotal != row.Unit*Cents(row.Qty) {
				t.Fatalf("unit %d qty %d: line total %d != %d", unit, row.Qty, row.LineTotal, row.Unit*Cents(row.Qty))
			}
			if row.Qty <= prevQty {
				t.Fatalf("matrix not ascending at qty %d", row.Qty)
			}
			prevQty = row.Qty
		}
	}
}

func TestMulBpsHalfUp(t *testing.T) {
	// 25 × 50% = 12.5, half-up rounds to 13.
	if got := Cents(25).MulBps(5000); got != 13 {
		t.Fatalf("expected 13, got %d", got)
	}
	if got := Cents(353).MulBps(8200); got != 289 {
		t.Fatalf("expected 289, got %d", got)
	}
}

func TestCentsFromMajor(t *testing.T) {
	cases := []struct {
		in   Major
		want Cents
	}{
		{0, 0},
		{-4, 0},
		{0.20, 20},
		{3.534, 353},
		{12, 1200},
	}
	for _, tc := range cases {
		if got := CentsFromMajor(tc.in); got != tc.want {
			t.Fatalf("CentsFromMajor(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
