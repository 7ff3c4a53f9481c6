package effect

import (
	"math"
	"testing"
	"time"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestManager_SpawnAndExpire(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)

	h, ok := m.Spawn("fireball", baseTime)
	if !ok {
		t.Fatal("spawn failed")
	}
	if !m.Live(h) {
		t.Fatal("handle not live after spawn")
	}

	// Present at 1.4s of a 1.5s lifetime.
	items := m.Advance(baseTime.Add(1400 * time.Millisecond))
	if len(items) != 1 {
		t.Fatalf("render list at 1.4s has %d items, want 1", len(items))
	}
	if items[0].EffectID != "fireball" {
		t.Errorf("effect id = %q, want fireball", items[0].EffectID)
	}

	// Absent at 1.6s.
	items = m.Advance(baseTime.Add(1600 * time.Millisecond))
	if len(items) != 0 {
		t.Fatalf("render list at 1.6s has %d items, want 0", len(items))
	}
	if m.Live(h) {
		t.Error("handle still live after expiry")
	}
	if m.LiveCount() != 0 {
		t.Errorf("live count = %d, want 0", m.LiveCount())
	}
}

func TestManager_RemovedExactlyOnce(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)
	m.Spawn("fireball", baseTime)

	m.Advance(baseTime.Add(2 * time.Second))
	if m.LiveCount() != 0 {
		t.Fatalf("live count after expiry = %d, want 0", m.LiveCount())
	}

	// Advancing again must not double-free.
	m.Advance(baseTime.Add(3 * time.Second))
	if m.LiveCount() != 0 {
		t.Errorf("live count went negative or revived: %d", m.LiveCount())
	}
}

func TestManager_SlotRecycledWithNewGeneration(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)

	h1, _ := m.Spawn("fireball", baseTime)
	m.Advance(baseTime.Add(2 * time.Second)) // expire

	h2, ok := m.Spawn("chidori", baseTime.Add(2*time.Second))
	if !ok {
		t.Fatal("respawn into recycled slot failed")
	}
	if h2.Index != h1.Index {
		t.Fatalf("expected slot reuse, got index %d vs %d", h2.Index, h1.Index)
	}
	if h2.Generation == h1.Generation {
		t.Error("recycled slot kept its generation tag")
	}
	if m.Live(h1) {
		t.Error("stale handle reports live")
	}
	if !m.Live(h2) {
		t.Error("fresh handle reports dead")
	}
}

func TestManager_CapacityBound(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)

	for i := 0; i < MaxLive; i++ {
		if _, ok := m.Spawn("fireball", baseTime); !ok {
			t.Fatalf("spawn %d failed below capacity", i)
		}
	}

	if _, ok := m.Spawn("fireball", baseTime); ok {
		t.Error("spawn beyond capacity succeeded")
	}
	if m.LiveCount() != MaxLive {
		t.Errorf("live count = %d, want %d", m.LiveCount(), MaxLive)
	}
}

func TestManager_UnknownEffectID(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)

	if _, ok := m.Spawn("rasengan", baseTime); ok {
		t.Error("spawn with unknown effect id succeeded")
	}
	if m.LiveCount() != 0 {
		t.Errorf("live count = %d, want 0", m.LiveCount())
	}
}

func TestManager_AnimationParameters(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)

	m.Spawn("fireball", baseTime)      // circle
	m.Spawn("chidori", baseTime)       // lightning
	m.Spawn("shadow_clone", baseTime)  // clone
	m.Spawn("water_dragon", baseTime)  // wave
	m.Spawn("chakra_strike", baseTime) // burst

	items := m.Advance(baseTime.Add(750 * time.Millisecond)) // progress 0.5
	if len(items) != 5 {
		t.Fatalf("render list has %d items, want 5", len(items))
	}

	byID := make(map[string]RenderItem, len(items))
	for _, it := range items {
		byID[it.EffectID] = it
	}

	fire := byID["fireball"]
	if math.Abs(fire.Progress-0.5) > 1e-9 {
		t.Errorf("fireball progress = %f, want 0.5", fire.Progress)
	}
	if math.Abs(fire.Radius-0.5) > 1e-9 {
		t.Errorf("fireball radius = %f, want 0.5", fire.Radius)
	}
	if math.Abs(fire.Alpha-0.5) > 1e-9 {
		t.Errorf("fireball alpha = %f, want 0.5", fire.Alpha)
	}

	if got := len(byID["chidori"].Bolts); got != numBolts {
		t.Errorf("chidori bolt count = %d, want %d", got, numBolts)
	}
	if got := len(byID["shadow_clone"].Orbiters); got != 3 {
		t.Errorf("shadow clone orbiter count = %d, want 3", got)
	}
	if byID["water_dragon"].Phase == 0 {
		t.Error("water dragon phase not advancing")
	}
	if byID["chakra_strike"].Rays != 8 {
		t.Errorf("chakra strike rays = %d, want 8", byID["chakra_strike"].Rays)
	}
}

func TestManager_RadiusMonotonic(t *testing.T) {
	m := NewManager(DefaultCatalog(), 1)
	m.Spawn("fireball", baseTime)

	prev := -1.0
	for ms := 0; ms <= 1400; ms += 100 {
		items := m.Advance(baseTime.Add(time.Duration(ms) * time.Millisecond))
		if len(items) != 1 {
			t.Fatalf("at %dms render list has %d items, want 1", ms, len(items))
		}
		if items[0].Radius < prev {
			t.Fatalf("radius shrank at %dms: %f -> %f", ms, prev, items[0].Radius)
		}
		prev = items[0].Radius
	}
}

func TestManager_SeededBoltsReplayIdentically(t *testing.T) {
	render := func(seed int64) []float64 {
		m := NewManager(DefaultCatalog(), seed)
		m.Spawn("chidori", baseTime)
		items := m.Advance(baseTime.Add(500 * time.Millisecond))
		if len(items) != 1 {
			t.Fatalf("render list has %d items, want 1", len(items))
		}
		return items[0].Bolts
	}

	a := render(42)
	b := render(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bolt %d diverged between identical seeds: %f vs %f", i, a[i], b[i])
		}
	}

	c := render(7)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical bolt geometry")
	}
}
