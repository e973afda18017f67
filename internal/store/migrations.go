package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Completed workouts, one row per finished session
		`CREATE TABLE IF NOT EXISTS workout_log (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			level TEXT,
			calories INTEGER NOT NULL,
			exercises INTEGER NOT NULL,
			completed_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_workout_log_completed_at ON workout_log(completed_at)`,

		// Coach questions and the answers shown
		`CREATE TABLE IF NOT EXISTS tip_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			prompt TEXT NOT NULL,
			response TEXT NOT NULL,
			asked_at TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
