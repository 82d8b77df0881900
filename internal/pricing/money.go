package pricing

import "math"

// Cents is a monetary amount in integer minor currency units. Every
// computation inside the engine happens in Cents; floating point money never
// crosses a package boundary except as Major.
type Cents int64

// Major is a monetary amount in major currency units (euros). It exists only
// at the edges: promotion values and shipping prices arrive in euros and are
// converted exactly once before entering any calculation.
type Major float64

// CentsFromMajor converts a major-unit amount to Cents, rounding half-up.
// Negative inputs convert to zero.
func CentsFromMajor(v Major) Cents {
	if v <= 0 {
		return 0
	}
	return Cents(math.Floor(float64(v)*100 + 0.5))
}

// Major converts back to major units for display payloads.
func (c Cents) Major() Major {
	return Major(c) / 100
}

// MulBps scales the amount by a basis-point factor, rounding half-up.
// Non-positive inputs yield zero.
func (c Cents) MulBps(bps int64) Cents {
	if c <= 0 || bps <= 0 {
		return 0
	}
	return Cents(roundHalfUpDiv(int64(c)*bps, 10_000))
}

// roundHalfUpDiv divides num by den with half-up rounding. Both operands must
// be non-negative; den must be positive.
func roundHalfUpDiv(num, den int64) int64 {
	if num <= 0 || den <= 0 {
		return 0
	}
	return (num + den/2) / den
}

// ExclusiveOfTax returns the pre-tax portion of a tax-inclusive amount,
// given the tax rate in basis points, rounding half-up in a single step.
func (c Cents) ExclusiveOfTax(taxBps int64) Cents {
	if c <= 0 {
		return 0
	}
	if taxBps <= 0 {
		return c
	}
	return Cents(roundHalfUpDiv(int64(c)*10_000, 10_000+taxBps))
}

// ClampNonNegative floors the amount at zero.
func (c Cents) ClampNonNegative() Cents {
	if c < 0 {
		return 0
	}
	return c
}
