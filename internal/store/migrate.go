package store

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     TEXT NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_events_purpose ON llm_request_events(purpose)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence        INTEGER NOT NULL UNIQUE,
		timestamp       TEXT NOT NULL,
		session_id      TEXT NOT NULL,
		user_id         TEXT NOT NULL,
		skill           TEXT NOT NULL,
		question_type   TEXT NOT NULL DEFAULT '',
		difficulty      TEXT NOT NULL DEFAULT '',
		source          TEXT NOT NULL DEFAULT '',
		question_text   TEXT NOT NULL,
		correct_answer  TEXT NOT NULL DEFAULT '',
		submitted       TEXT NOT NULL,
		correct         INTEGER NOT NULL,
		score           INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_skill ON answer_events(skill)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_events_user ON answer_events(user_id)`,
}

// migrate runs all schema statements. Every statement is idempotent.
func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
