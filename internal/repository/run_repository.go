package repository

import (
	"database/sql"
	"fmt"

	"github.com/locatotal/presence-backend-go/internal/database"
	"github.com/locatotal/presence-backend-go/internal/models"
)

// RunRepository handles database operations for analysis runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// SaveRun persists a run with its work periods and date totals in one
// transaction.
func (r *RunRepository) SaveRun(run models.Run) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO runs (id, created_at, sample_count, total_seconds) VALUES (?, ?, ?, ?)",
			run.ID, run.CreatedAt, run.SampleCount, run.TotalSeconds,
		)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, p := range run.Periods {
			if _, err := tx.Exec(
				"INSERT INTO run_periods (run_id, start, stop) VALUES (?, ?, ?)",
				run.ID, p.Start, p.Stop,
			); err != nil {
				return fmt.Errorf("failed to insert run period: %w", err)
			}
		}

		for _, t := range run.DateTotals {
			if _, err := tx.Exec(
				"INSERT INTO run_date_totals (run_id, date, seconds) VALUES (?, ?, ?)",
				run.ID, t.Date.String(), t.Seconds,
			); err != nil {
				return fmt.Errorf("failed to insert run date total: %w", err)
			}
		}

		return nil
	})
}

// GetRun fetches a run with its periods and date totals. Returns nil
// when the run does not exist.
func (r *RunRepository) GetRun(id string) (*models.Run, error) {
	var run models.Run
	err := r.db.QueryRow(
		"SELECT id, created_at, sample_count, total_seconds FROM runs WHERE id = ?", id,
	).Scan(&run.ID, &run.CreatedAt, &run.SampleCount, &run.TotalSeconds)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	periods, err := r.getPeriods(id)
	if err != nil {
		return nil, err
	}
	run.Periods = periods

	totals, err := r.getDateTotals(id)
	if err != nil {
		return nil, err
	}
	run.DateTotals = totals

	return &run, nil
}

// GetRuns lists runs newest first, without their periods and totals.
func (r *RunRepository) GetRuns(filter models.RunFilter) ([]models.Run, int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count runs: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	offset := (filter.Page - 1) * filter.PageSize

	rows, err := r.db.Query(
		"SELECT id, created_at, sample_count, total_seconds FROM runs ORDER BY created_at DESC LIMIT ? OFFSET ?",
		filter.PageSize, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.SampleCount, &run.TotalSeconds); err != nil {
			return nil, 0, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, total, rows.Err()
}

func (r *RunRepository) getPeriods(runID string) ([]models.Timeframe, error) {
	rows, err := r.db.Query("SELECT start, stop FROM run_periods WHERE run_id = ? ORDER BY start ASC, id ASC", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run periods: %w", err)
	}
	defer rows.Close()

	var periods []models.Timeframe
	for rows.Next() {
		var p models.Timeframe
		if err := rows.Scan(&p.Start, &p.Stop); err != nil {
			return nil, fmt.Errorf("failed to scan run period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *RunRepository) getDateTotals(runID string) ([]models.DateTotal, error) {
	rows, err := r.db.Query("SELECT date, seconds FROM run_date_totals WHERE run_id = ? ORDER BY id ASC", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run date totals: %w", err)
	}
	defer rows.Close()

	var totals []models.DateTotal
	for rows.Next() {
		var dateStr string
		var seconds int64
		if err := rows.Scan(&dateStr, &seconds); err != nil {
			return nil, fmt.Errorf("failed to scan run date total: %w", err)
		}
		date, err := models.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date %q: %w", dateStr, err)
		}
		totals = append(totals, models.DateTotal{Date: date, Seconds: seconds})
	}

	return totals, rows.Err()
}
