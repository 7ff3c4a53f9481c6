package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Jutsus table - the editable jutsu definition for each gesture
		`CREATE TABLE IF NOT EXISTS jutsus (
			gesture TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			cost INTEGER NOT NULL CHECK(cost > 0),
			cooldown_ms INTEGER NOT NULL CHECK(cooldown_ms > 0),
			effect_id TEXT NOT NULL,
			sound_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Activations table - history of admitted activations
		`CREATE TABLE IF NOT EXISTS activations (
			id TEXT PRIMARY KEY,
			gesture TEXT NOT NULL,
			jutsu_name TEXT NOT NULL,
			chakra_after REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activations_created_at ON activations(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_activations_gesture ON activations(gesture)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
