package pricing

import "math"

// Shape identifies the cut applied to a sticker.
type Shape string

// Supported shapes. Rectangle and square share the width/height dimensions,
// die-cut contours are priced on their bounding box.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeSquare    Shape = "carre"
	ShapeCircle    Shape = "rond"
	ShapeDieCut    Shape = "decoupe"
)

// Support identifies the vinyl finish a sticker is printed on.
type Support string

// Supported vinyl finishes.
const (
	SupportWhiteVinyl  Support = "vinyle_blanc"
	SupportClearVinyl  Support = "vinyle_transparent"
	SupportHoloVinyl   Support = "vinyle_holographique"
	SupportMirrorVinyl Support = "vinyle_miroir"
)

// Configuration is an immutable description of a single sticker design
// request. Only the dimension fields relevant to Shape are meaningful; the
// others are ignored.
type Configuration struct {
	Shape      Shape   `json:"shape"`
	Support    Support `json:"support"`
	WidthCm    float64 `json:"widthCm,omitempty"`
	HeightCm   float64 `json:"heightCm,omitempty"`
	DiameterCm float64 `json:"diameterCm,omitempty"`
}

// Area returns the printed surface in cm². A configuration missing the
// dimensions its shape requires has area zero; callers decide whether that
// means "incomplete", the function never errors.
func (c Configuration) Area() float64 {
	switch c.Shape {
	case ShapeCircle:
		if c.DiameterCm <= 0 {
			return 0
		}
		r := c.DiameterCm / 2
		return math.Pi * r * r
	case ShapeRectangle, ShapeSquare, ShapeDieCut:
		if c.WidthCm <= 0 || c.HeightCm <= 0 {
			return 0
		}
		return c.WidthCm * c.HeightCm
	default:
		return 0
	}
}

// Complete reports whether the configuration carries every field needed to
// price it. Display layers must refuse to sell incomplete configurations
// instead of treating their zero price as a free item.
func (c Configuration) Complete() bool {
	return c.Shape != "" && c.Support != "" && c.Area() > 0
}

// Table is the static pricing configuration: per-cm² base rate, the minimum
// sellable unit price, material and shape multipliers, and the quantity tier
// schedule. It is passed in by the owner rather than read from package
// globals so tests can substitute alternate tables.
type Table struct {
	BaseRatePerCm2 float64
	MinUnitPrice   Major
	Materials      map[Support]float64
	Shapes         map[Shape]float64
	Tiers          []Tier
}

// DefaultTable returns the production pricing schedule.
func DefaultTable() Table {
	return Table{
		BaseRatePerCm2: 0.045,
		MinUnitPrice:   0.20,
		Materials: map[Support]float64{
			SupportWhiteVinyl:  1.0,
			SupportClearVinyl:  1.1,
			SupportHoloVinyl:   1.3,
			SupportMirrorVinyl: 1.4,
		},
		Shapes: map[Shape]float64{
			ShapeRectangle: 1.0,
			ShapeSquare:    1.0,
			ShapeCircle:    1.0,
			ShapeDieCut:    1.2,
		},
		Tiers: []Tier{
			{Qty: 25, DiscountBps: 0},
			{Qty: 50, DiscountBps: 1000},
			{Qty: 100, DiscountBps: 1800},
			{Qty: 200, DiscountBps: 2500},
			{Qty: 500, DiscountBps: 3200},
			{Qty: 1000, DiscountBps: 3800},
		},
	}
}

// UnitPrice computes the full price of one unit of the configuration in
// Cents. A zero-area configuration prices at zero; otherwise the computed
// price is floored at MinUnitPrice before conversion. Pure function of the
// configuration and the table.
func (t Table) UnitPrice(cfg Configuration) Cents {
	area := cfg.Area()
	if area <= 0 {
		return 0
	}
	base := t.BaseRatePerCm2 * area * t.material(cfg.Support) * t.shape(cfg.Shape)
	if base < float64(t.MinUnitPrice) {
		base = float64(t.MinUnitPrice)
	}
	return CentsFromMajor(Major(base))
}

func (t Table) material(s Support) float64 {
	if m, ok := t.Materials[s]; ok && m > 0 {
		return m
	}
	return 1
}

func (t Table) shape(s Shape) float64 {
	if m, ok := t.Shapes[s]; ok && m > 0 {
		return m
	}
	return 1
}
