package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, kind, created, params, weeks, final_pot, final_vault, final_spend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Kind, r.Created, string(r.Params), r.Weeks,
		r.FinalPot, r.FinalVault, r.FinalSpend,
	)
	return err
}

// RecordWeeks inserts all rows in one transaction so a run's history is
// either fully journaled or absent.
func (j *SQLite) RecordWeeks(rows []WeekRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO weeks
		(run_id, week, pot, vault, spend, profit, withdrawal)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, w := range rows {
		if _, err := stmt.Exec(
			w.RunID, w.Week, w.Pot, w.Vault, w.Spend, w.Profit, w.Withdrawal,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert week %d: %w", w.Week, err)
		}
	}

	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
