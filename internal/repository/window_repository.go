package repository

import (
	"database/sql"
	"fmt"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// WindowRepository handles database operations for allowed detection
// windows
type WindowRepository struct {
	db *sql.DB
}

// NewWindowRepository creates a new window repository
func NewWindowRepository(db *sql.DB) *WindowRepository {
	return &WindowRepository{db: db}
}

// CreateWindow stores a window and returns it with its assigned ID.
func (r *WindowRepository) CreateWindow(w models.Window) (models.Window, error) {
	res, err := r.db.Exec("INSERT INTO windows (start, stop) VALUES (?, ?)", w.Start, w.Stop)
	if err != nil {
		return models.Window{}, fmt.Errorf("failed to insert window: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Window{}, fmt.Errorf("failed to read window id: %w", err)
	}
	w.ID = id
	return w, nil
}

// GetWindows returns all windows, oldest first.
func (r *WindowRepository) GetWindows() ([]models.Window, error) {
	rows, err := r.db.Query("SELECT id, start, stop FROM windows ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query windows: %w", err)
	}
	defer rows.Close()

	var windows []models.Window
	for rows.Next() {
		var w models.Window
		if err := rows.Scan(&w.ID, &w.Start, &w.Stop); err != nil {
			return nil, fmt.Errorf("failed to scan window: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, rows.Err()
}

// DeleteWindow removes a window by ID. Returns sql.ErrNoRows when the
// window does not exist.
func (r *WindowRepository) DeleteWindow(id int64) error {
	res, err := r.db.Exec("DELETE FROM windows WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete window: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
