// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs   *csv.Writer
	weeks  *csv.Writer
	rf, wf *os.File
}

func NewCSV(runsPath, weeksPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	wf, err := os.Create(weeksPath)
	if err != nil {
		rf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	ww := csv.NewWriter(wf)

	if err := rw.Write([]string{"run_id", "kind", "created", "params", "weeks", "final_pot", "final_vault", "final_spend"}); err != nil {
		return nil, err
	}
	if err := ww.Write([]string{"run_id", "week", "pot", "vault", "spend", "profit", "withdrawal"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	ww.Flush()
	if err := ww.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, ww, rf, wf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Kind,
		r.Created.Format(time.RFC3339),
		string(r.Params),
		strconv.Itoa(r.Weeks),
		f(r.FinalPot),
		f(r.FinalVault),
		f(r.FinalSpend),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordWeeks(rows []WeekRow) error {
	for _, w := range rows {
		err := j.weeks.Write([]string{
			w.RunID,
			strconv.Itoa(w.Week),
			f(w.Pot),
			f(w.Vault),
			f(w.Spend),
			f(w.Profit),
			f(w.Withdrawal),
		})
		if err != nil {
			return err
		}
	}

	j.weeks.Flush()
	return j.weeks.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.weeks.Flush()
	if err := j.weeks.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.wf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
