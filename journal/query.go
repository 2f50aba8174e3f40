package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var params string

	row := j.db.QueryRow(`
		SELECT run_id, kind, created, params, weeks, final_pot, final_vault, final_spend
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Kind,
		&rec.Created,
		&params,
		&rec.Weeks,
		&rec.FinalPot,
		&rec.FinalVault,
		&rec.FinalSpend,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	rec.Params = []byte(params)
	return rec, nil
}

// ListRuns returns the most recent runs, newest first, at most limit rows
// (all runs when limit <= 0).
func (j *SQLite) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := j.db.Query(`
		SELECT run_id, kind, created, params, weeks, final_pot, final_vault, final_spend
		FROM runs
		ORDER BY created DESC, run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var params string
		if err := rows.Scan(
			&rec.RunID,
			&rec.Kind,
			&rec.Created,
			&params,
			&rec.Weeks,
			&rec.FinalPot,
			&rec.FinalVault,
			&rec.FinalSpend,
		); err != nil {
			return nil, err
		}
		rec.Params = []byte(params)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWeeks returns a run's weekly rows in week order.
func (j *SQLite) ListWeeks(runID string) ([]WeekRow, error) {
	rows, err := j.db.Query(`
		SELECT run_id, week, pot, vault, spend, profit, withdrawal
		FROM weeks
		WHERE run_id = ?
		ORDER BY week ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WeekRow
	for rows.Next() {
		var w WeekRow
		if err := rows.Scan(
			&w.RunID,
			&w.Week,
			&w.Pot,
			&w.Vault,
			&w.Spend,
			&w.Profit,
			&w.Withdrawal,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
