package repository

import (
	"database/sql"
	"fmt"

	"github.com/locatotal/presence-backend-go/internal/database"
	"github.com/locatotal/presence-backend-go/internal/models"
)

// SampleRepository handles database operations for location samples
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// InsertSamples stores a batch of samples in one transaction.
func (r *SampleRepository) InsertSamples(samples []models.Sample) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO samples (time, lat, long) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare sample insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range samples {
			if _, err := stmt.Exec(s.Time, s.Point.Lat, s.Point.Long); err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
		}
		return nil
	})
}

// GetSamples retrieves samples with time filtering and pagination,
// ordered by timestamp ascending.
func (r *SampleRepository) GetSamples(filter models.SampleFilter) ([]models.Sample, int64, error) {
	where := " WHERE 1=1"
	var args []interface{}
	if filter.StartTime > 0 {
		where += " AND time >= ?"
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		where += " AND time <= ?"
		args = append(args, filter.EndTime)
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM samples"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count samples: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := "SELECT time, lat, long FROM samples" + where + " ORDER BY time ASC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var s models.Sample
		if err := rows.Scan(&s.Time, &s.Point.Lat, &s.Point.Long); err != nil {
			return nil, 0, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, total, rows.Err()
}

// GetAllOrdered returns every stored sample in timestamp order, the
// shape the presence pipeline consumes.
func (r *SampleRepository) GetAllOrdered() ([]models.Sample, error) {
	rows, err := r.db.Query("SELECT time, lat, long FROM samples ORDER BY time ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var s models.Sample
		if err := rows.Scan(&s.Time, &s.Point.Lat, &s.Point.Long); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// DeleteAll removes every stored sample, typically before re-ingesting
// a fresh export.
func (r *SampleRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM samples"); err != nil {
		return fmt.Errorf("failed to delete samples: %w", err)
	}
	return nil
}
