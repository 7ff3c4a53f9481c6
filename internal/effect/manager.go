package effect

import (
	"math"
	"math/rand"
	"time"
)

// MaxLive bounds the number of concurrently live effect instances. Spawns
// beyond the bound are dropped rather than evicting older instances.
const MaxLive = 32

// numBolts is the number of lightning bolt strands per instance.
const numBolts = 5

// Handle identifies a live instance: a slot index plus a generation tag so a
// stale handle never aliases a recycled slot.
type Handle struct {
	Index      int
	Generation uint32
}

// RenderItem is the declarative per-instance output handed to the renderer
// each frame.
type RenderItem struct {
	EffectID string   `json:"effectId"`
	Shape    Shape    `json:"shape"`
	Color    [3]uint8 `json:"color"`
	Progress float64  `json:"progress"` // 0..1 of lifetime
	Alpha    float64  `json:"alpha"`    // fades out as the effect ages
	Radius   float64  `json:"radius"`   // normalized growth, 0..1

	// Shape-specific parameters.
	Phase    float64   `json:"phase,omitempty"`    // wave and spiral phase, radians
	Bolts    []float64 `json:"bolts,omitempty"`    // lightning strand offsets
	Orbiters []float64 `json:"orbiters,omitempty"` // clone orbit angles, radians
	Rays     int       `json:"rays,omitempty"`     // burst ray count
}

type instance struct {
	spec      Spec
	spawnedAt time.Time
	jitter    [numBolts]float64 // seeded per instance at spawn
}

type slot struct {
	used bool
	gen  uint32
	inst instance
}

// Manager owns the set of live effect instances in a fixed-capacity,
// generation-tagged slot array. It is owned by the frame-processing loop and
// is not safe for concurrent use.
type Manager struct {
	catalog *Catalog
	slots   [MaxLive]slot
	live    int
	rng     *rand.Rand
}

// NewManager creates a Manager over the given catalog. The seed feeds the
// per-instance bolt geometry so replays with the same seed are identical.
func NewManager(catalog *Catalog, seed int64) *Manager {
	return &Manager{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Spawn creates a new effect instance for the given effect id. It reports
// whether a slot was taken: unknown ids and a full arena both leave the
// manager untouched.
func (m *Manager) Spawn(effectID string, now time.Time) (Handle, bool) {
	spec, ok := m.catalog.Get(effectID)
	if !ok {
		return Handle{}, false
	}
	if m.live >= MaxLive {
		return Handle{}, false
	}

	for i := range m.slots {
		if m.slots[i].used {
			continue
		}

		inst := instance{spec: spec, spawnedAt: now}
		for b := range inst.jitter {
			// Strand amplitude in [30, 70).
			inst.jitter[b] = 30 + m.rng.Float64()*40
		}

		m.slots[i].used = true
		m.slots[i].inst = inst
		m.live++
		return Handle{Index: i, Generation: m.slots[i].gen}, true
	}

	return Handle{}, false
}

// Live reports whether a handle still refers to a live instance.
func (m *Manager) Live(h Handle) bool {
	if h.Index < 0 || h.Index >= MaxLive {
		return false
	}
	s := &m.slots[h.Index]
	return s.used && s.gen == h.Generation
}

// LiveCount returns the number of live instances.
func (m *Manager) LiveCount() int {
	return m.live
}

// Advance retires instances whose lifetime has elapsed and returns the render
// list for the surviving ones. Each instance is removed exactly once, on the
// first call where its elapsed lifetime exceeds its duration. Animation
// parameters are pure functions of elapsed time, shape, and the instance's
// spawn-seeded jitter.
func (m *Manager) Advance(now time.Time) []RenderItem {
	items := make([]RenderItem, 0, m.live)

	for i := range m.slots {
		s := &m.slots[i]
		if !s.used {
			continue
		}

		elapsed := now.Sub(s.inst.spawnedAt)
		if elapsed > s.inst.spec.Duration {
			s.used = false
			s.gen++
			m.live--
			continue
		}

		progress := elapsed.Seconds() / s.inst.spec.Duration.Seconds()
		if progress < 0 {
			progress = 0
		}
		items = append(items, renderInstance(&s.inst, progress))
	}

	return items
}

// renderInstance computes the animation parameters for one instance at the
// given lifetime progress.
func renderInstance(inst *instance, progress float64) RenderItem {
	item := RenderItem{
		EffectID: inst.spec.ID,
		Shape:    inst.spec.Shape,
		Color:    inst.spec.Color,
		Progress: progress,
		Alpha:    1 - progress,
		Radius:   progress,
	}

	switch inst.spec.Shape {
	case ShapeLightning:
		item.Bolts = make([]float64, numBolts)
		for b := 0; b < numBolts; b++ {
			item.Bolts[b] = inst.jitter[b] * math.Sin(progress*10+float64(b))
		}
	case ShapeClone:
		item.Orbiters = make([]float64, 3)
		for c := 0; c < 3; c++ {
			deg := float64(c)*120 + progress*360
			item.Orbiters[c] = deg * math.Pi / 180
		}
	case ShapeWave:
		item.Phase = progress * 10
	case ShapeSpiral:
		item.Phase = progress * 4 * math.Pi
	case ShapeBurst:
		item.Rays = 8
	}

	return item
}
