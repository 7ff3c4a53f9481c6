package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/hokage/jutsu/internal/chakra"
	"github.com/hokage/jutsu/internal/gesture"
)

// JutsuRepository provides access to the persisted jutsu definition table.
type JutsuRepository struct {
	db *sql.DB
}

// Jutsus returns the jutsu repository for this store.
func (s *Store) Jutsus() *JutsuRepository {
	return &JutsuRepository{db: s.db}
}

// SeedDefaults inserts the given definitions for any gesture that has no row
// yet. Existing rows are left untouched so user edits survive restarts.
func (r *JutsuRepository) SeedDefaults(defs []chakra.Definition) error {
	for _, d := range defs {
		_, err := r.db.Exec(
			`INSERT OR IGNORE INTO jutsus (gesture, name, cost, cooldown_ms, effect_id, sound_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.Gesture.String(), d.Name, d.Cost, d.Cooldown.Milliseconds(), d.EffectID, d.SoundID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByGesture retrieves the definition bound to a gesture.
func (r *JutsuRepository) GetByGesture(g gesture.Gesture) (*chakra.Definition, error) {
	var (
		gestureKey string
		cooldownMs int64
		def        chakra.Definition
	)

	err := r.db.QueryRow(
		`SELECT gesture, name, cost, cooldown_ms, effect_id, sound_id
		 FROM jutsus WHERE gesture = ?`,
		g.String(),
	).Scan(&gestureKey, &def.Name, &def.Cost, &cooldownMs, &def.EffectID, &def.SoundID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	parsed, err := gesture.ParseGesture(gestureKey)
	if err != nil {
		return nil, err
	}
	def.Gesture = parsed
	def.Cooldown = time.Duration(cooldownMs) * time.Millisecond

	return &def, nil
}

// List retrieves all jutsu definitions ordered by gesture key.
func (r *JutsuRepository) List() ([]chakra.Definition, error) {
	rows, err := r.db.Query(
		`SELECT gesture, name, cost, cooldown_ms, effect_id, sound_id
		 FROM jutsus ORDER BY gesture`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []chakra.Definition
	for rows.Next() {
		var (
			gestureKey string
			cooldownMs int64
			def        chakra.Definition
		)
		if err := rows.Scan(&gestureKey, &def.Name, &def.Cost, &cooldownMs, &def.EffectID, &def.SoundID); err != nil {
			return nil, err
		}

		parsed, err := gesture.ParseGesture(gestureKey)
		if err != nil {
			return nil, err
		}
		def.Gesture = parsed
		def.Cooldown = time.Duration(cooldownMs) * time.Millisecond
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}

// Update replaces the stored definition for its gesture.
func (r *JutsuRepository) Update(def chakra.Definition) error {
	result, err := r.db.Exec(
		`UPDATE jutsus SET name = ?, cost = ?, cooldown_ms = ?, effect_id = ?, sound_id = ?, updated_at = ?
		 WHERE gesture = ?`,
		def.Name, def.Cost, def.Cooldown.Milliseconds(), def.EffectID, def.SoundID, time.Now(), def.Gesture.String(),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
