package repository

import (
	"database/sql"
	"fmt"

	"github.com/locatotal/presence-backend-go/internal/models"
)

// RegionRepository handles database operations for regions of interest
type RegionRepository struct {
	db *sql.DB
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *sql.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// CreateRegion stores a region and returns it with its assigned ID.
func (r *RegionRepository) CreateRegion(region models.Region) (models.Region, error) {
	res, err := r.db.Exec(
		"INSERT INTO regions (name, lat, long, radius) VALUES (?, ?, ?, ?)",
		region.Name, region.Lat, region.Long, region.Radius,
	)
	if err != nil {
		return models.Region{}, fmt.Errorf("failed to insert region: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Region{}, fmt.Errorf("failed to read region id: %w", err)
	}
	region.ID = id
	return region, nil
}

// GetRegions returns all regions, oldest first.
func (r *RegionRepository) GetRegions() ([]models.Region, error) {
	rows, err := r.db.Query("SELECT id, name, lat, long, radius, created_at FROM regions ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []models.Region
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.Lat, &region.Long, &region.Radius, &region.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}

	return regions, rows.Err()
}

// DeleteRegion removes a region by ID. Returns sql.ErrNoRows when the
// region does not exist.
func (r *RegionRepository) DeleteRegion(id int64) error {
	res, err := r.db.Exec("DELETE FROM regions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete region: %w", err)
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
