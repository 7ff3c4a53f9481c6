// Package effect manages the lifecycle of live jutsu effect instances and
// produces declarative per-frame animation parameters for an external
// renderer. Nothing in this package touches pixels.
package effect

import "time"

// Shape identifies how the renderer should draw an effect.
type Shape string

const (
	ShapeCircle    Shape = "circle"
	ShapeLightning Shape = "lightning"
	ShapeClone     Shape = "clone"
	ShapeWave      Shape = "wave"
	ShapeRectangle Shape = "rectangle"
	ShapeSpiral    Shape = "spiral"
	ShapeHexagon   Shape = "hexagon"
	ShapeBurst     Shape = "burst"
)

// DefaultDuration is the lifetime of an effect instance unless its spec
// overrides it.
const DefaultDuration = 1500 * time.Millisecond

// Spec describes one effect type: its shape, color, and lifetime.
type Spec struct {
	ID       string        `json:"id"`
	Shape    Shape         `json:"shape"`
	Color    [3]uint8      `json:"color"` // RGB
	Duration time.Duration `json:"duration"`
}

// Catalog maps effect ids to their specs. Immutable after construction.
type Catalog struct {
	specs map[string]Spec
}

// NewCatalog builds a catalog from the given specs. Specs without a duration
// get DefaultDuration.
func NewCatalog(specs []Spec) *Catalog {
	c := &Catalog{specs: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		if s.Duration <= 0 {
			s.Duration = DefaultDuration
		}
		c.specs[s.ID] = s
	}
	return c
}

// Get returns the spec for an effect id.
func (c *Catalog) Get(id string) (Spec, bool) {
	s, ok := c.specs[id]
	return s, ok
}

// DefaultCatalog returns the built-in effect table matching the default
// jutsu definitions.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Spec{
		{ID: "fireball", Shape: ShapeCircle, Color: [3]uint8{255, 69, 0}},
		{ID: "shadow_clone", Shape: ShapeClone, Color: [3]uint8{128, 128, 128}},
		{ID: "chidori", Shape: ShapeLightning, Color: [3]uint8{0, 255, 255}},
		{ID: "water_dragon", Shape: ShapeWave, Color: [3]uint8{0, 0, 255}},
		{ID: "rock_barrier", Shape: ShapeRectangle, Color: [3]uint8{139, 69, 19}},
		{ID: "air_bullet", Shape: ShapeSpiral, Color: [3]uint8{255, 255, 255}},
		{ID: "crystal_mirror", Shape: ShapeHexagon, Color: [3]uint8{200, 200, 255}},
		{ID: "chakra_strike", Shape: ShapeBurst, Color: [3]uint8{255, 0, 255}},
	})
}
