package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id             TEXT PRIMARY KEY,
		project_name   TEXT NOT NULL,
		location       TEXT NOT NULL DEFAULT '',
		project_type   TEXT NOT NULL
		               CHECK(project_type IN ('residential','renovation','commercial','addition')),
		square_footage INTEGER NOT NULL,
		stories        INTEGER NOT NULL,
		weeks          INTEGER NOT NULL,
		start_date     TEXT NOT NULL,
		cost_low       INTEGER NOT NULL,
		cost_high      INTEGER NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_weeks (
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		week        INTEGER NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		tasks       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (schedule_id, week)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_materials (
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		task        TEXT NOT NULL,
		materials   TEXT NOT NULL,
		PRIMARY KEY (schedule_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_weeks_schedule ON schedule_weeks(schedule_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_materials_schedule ON schedule_materials(schedule_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_created ON schedules(created_at)`,
}
