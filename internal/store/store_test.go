package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hokage/jutsu/internal/chakra"
	"github.com/hokage/jutsu/internal/gesture"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	tables := []string{"jutsus", "activations", "settings"}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing after migrations: %v", table, err)
		}
	}
}

func TestJutsuRepository_SeedAndList(t *testing.T) {
	s := newTestStore(t)

	defaults := chakra.DefaultDefinitions()
	if err := s.Jutsus().SeedDefaults(defaults); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}

	defs, err := s.Jutsus().List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(defs) != len(defaults) {
		t.Fatalf("List() returned %d definitions, want %d", len(defs), len(defaults))
	}

	// Seeding again must not duplicate or overwrite.
	if err := s.Jutsus().SeedDefaults(defaults); err != nil {
		t.Fatalf("second SeedDefaults() error = %v", err)
	}
	defs, err = s.Jutsus().List()
	if err != nil {
		t.Fatalf("List() after reseed error = %v", err)
	}
	if len(defs) != len(defaults) {
		t.Errorf("reseed changed row count to %d", len(defs))
	}
}

func TestJutsuRepository_GetByGesture(t *testing.T) {
	s := newTestStore(t)

	if err := s.Jutsus().SeedDefaults(chakra.DefaultDefinitions()); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}

	def, err := s.Jutsus().GetByGesture(gesture.Fist)
	if err != nil {
		t.Fatalf("GetByGesture() error = %v", err)
	}

	if def.Name != "Fire Style: Fireball Jutsu" {
		t.Errorf("name = %q", def.Name)
	}
	if def.Cost != 30 {
		t.Errorf("cost = %d, want 30", def.Cost)
	}
	if def.Cooldown != 2*time.Second {
		t.Errorf("cooldown = %v, want 2s", def.Cooldown)
	}
	if def.EffectID != "fireball" {
		t.Errorf("effect id = %q, want fireball", def.EffectID)
	}
}

func TestJutsuRepository_Update(t *testing.T) {
	s := newTestStore(t)

	if err := s.Jutsus().SeedDefaults(chakra.DefaultDefinitions()); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}

	updated := chakra.Definition{
		Gesture:  gesture.Point,
		Name:     "Gentle Fist: Twin Lion Strike",
		Cost:     20,
		Cooldown: 2 * time.Second,
		EffectID: "chakra_strike",
		SoundID:  "chakra_strike",
	}
	if err := s.Jutsus().Update(updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	def, err := s.Jutsus().GetByGesture(gesture.Point)
	if err != nil {
		t.Fatalf("GetByGesture() error = %v", err)
	}
	if def.Name != updated.Name || def.Cost != 20 {
		t.Errorf("update not persisted: %+v", def)
	}
}

func TestJutsuRepository_NotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Jutsus().GetByGesture(gesture.Fist); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByGesture() error = %v, want ErrNotFound", err)
	}

	err := s.Jutsus().Update(chakra.Definition{
		Gesture: gesture.Fist, Name: "x", Cost: 1, Cooldown: time.Second,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestActivationRepository_CreateAndRecent(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		err := s.Activations().Create(&Activation{
			ID:          uuid.NewString(),
			Gesture:     gesture.Fist,
			JutsuName:   "Fire Style: Fireball Jutsu",
			ChakraAfter: float64(70 - i*10),
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Create() %d error = %v", i, err)
		}
	}

	recent, err := s.Activations().Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Recent(3) returned %d rows", len(recent))
	}

	// Newest first.
	if !recent[0].CreatedAt.After(recent[1].CreatedAt) {
		t.Errorf("activations not ordered newest first: %v then %v", recent[0].CreatedAt, recent[1].CreatedAt)
	}
	if recent[0].Gesture != gesture.Fist {
		t.Errorf("gesture = %v, want Fist", recent[0].Gesture)
	}
}

func TestActivationRepository_CountByGesture(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		s.Activations().Create(&Activation{ID: uuid.NewString(), Gesture: gesture.Peace, JutsuName: "Chidori", ChakraAfter: 10})
	}
	s.Activations().Create(&Activation{ID: uuid.NewString(), Gesture: gesture.Fist, JutsuName: "Fireball", ChakraAfter: 70})

	counts, err := s.Activations().CountByGesture()
	if err != nil {
		t.Fatalf("CountByGesture() error = %v", err)
	}
	if counts[gesture.Peace] != 3 || counts[gesture.Fist] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestSettingsRepository_GetSet(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Settings().Get("detection_enabled"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on empty settings error = %v, want ErrNotFound", err)
	}

	if err := s.Settings().Set("detection_enabled", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Settings().Set("detection_enabled", "false"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	v, err := s.Settings().Get("detection_enabled")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "false" {
		t.Errorf("value = %q, want false", v)
	}
}
