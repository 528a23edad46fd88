package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Mappings table - binds a gesture, swipe or circle trigger to an action
		`CREATE TABLE IF NOT EXISTS mappings (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL CHECK(kind IN ('gesture', 'swipe', 'circle')),
			trigger_key TEXT NOT NULL,
			action TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(kind, trigger_key)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_mappings_kind ON mappings(kind)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
