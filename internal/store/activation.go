package store

import (
	"database/sql"
	"time"

	"github.com/hokage/jutsu/internal/gesture"
)

// Activation is one admitted jutsu activation, recorded for the history API.
type Activation struct {
	ID          string
	Gesture     gesture.Gesture
	JutsuName   string
	ChakraAfter float64
	CreatedAt   time.Time
}

// ActivationRepository records and queries admitted activations.
type ActivationRepository struct {
	db *sql.DB
}

// Activations returns the activation repository for this store.
func (s *Store) Activations() *ActivationRepository {
	return &ActivationRepository{db: s.db}
}

// Create inserts a new activation record.
func (r *ActivationRepository) Create(a *Activation) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO activations (id, gesture, jutsu_name, chakra_after, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Gesture.String(), a.JutsuName, a.ChakraAfter, a.CreatedAt,
	)
	return err
}

// Recent retrieves the most recent activations, newest first.
func (r *ActivationRepository) Recent(limit int) ([]*Activation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, gesture, jutsu_name, chakra_after, created_at
		 FROM activations ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activations []*Activation
	for rows.Next() {
		a := &Activation{}
		var gestureKey string

		if err := rows.Scan(&a.ID, &gestureKey, &a.JutsuName, &a.ChakraAfter, &a.CreatedAt); err != nil {
			return nil, err
		}

		parsed, err := gesture.ParseGesture(gestureKey)
		if err != nil {
			return nil, err
		}
		a.Gesture = parsed
		activations = append(activations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activations, nil
}

// CountByGesture returns how many activations each gesture has recorded.
func (r *ActivationRepository) CountByGesture() (map[gesture.Gesture]int, error) {
	rows, err := r.db.Query(
		`SELECT gesture, COUNT(*) FROM activations GROUP BY gesture`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[gesture.Gesture]int)
	for rows.Next() {
		var (
			gestureKey string
			n          int
		)
		if err := rows.Scan(&gestureKey, &n); err != nil {
			return nil, err
		}

		parsed, err := gesture.ParseGesture(gestureKey)
		if err != nil {
			return nil, err
		}
		counts[parsed] = n
	}

	return counts, rows.Err()
}
