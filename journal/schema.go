// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	created DATETIME NOT NULL,
	params TEXT NOT NULL,
	weeks INTEGER NOT NULL,
	final_pot REAL NOT NULL,
	final_vault REAL NOT NULL,
	final_spend REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS weeks (
	run_id TEXT NOT NULL,
	week INTEGER NOT NULL,
	pot REAL NOT NULL,
	vault REAL NOT NULL,
	spend REAL NOT NULL,
	profit REAL NOT NULL,
	withdrawal REAL NOT NULL,
	PRIMARY KEY (run_id, week)
);

CREATE INDEX IF NOT EXISTS idx_weeks_run ON weeks(run_id);
`
