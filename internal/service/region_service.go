package service

import (
	"errors"

	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/repository"
	"github.com/locatotal/presence-backend-go/internal/spatial"
)

// RegionService handles business logic for regions of interest
type RegionService struct {
	repo *repository.RegionRepository
}

// NewRegionService creates a new region service
func NewRegionService(repo *repository.RegionRepository) *RegionService {
	return &RegionService{repo: repo}
}

// CreateRegion validates and stores a region. The radius is in decimal
// degrees and must be positive; a zero-radius circle can never contain
// a sample under the strict boundary rule.
func (s *RegionService) CreateRegion(region models.Region) (models.Region, error) {
	if region.Radius <= 0 {
		return models.Region{}, errors.New("region radius must be positive")
	}

	created, err := s.repo.CreateRegion(region)
	if err != nil {
		return models.Region{}, err
	}
	created.RadiusMeters = spatial.ApproxRadiusMeters(created.Lat, created.Long, created.Radius)
	return created, nil
}

// GetRegions lists all regions, each annotated with its approximate
// metric radius.
func (s *RegionService) GetRegions() ([]models.Region, error) {
	regions, err := s.repo.GetRegions()
	if err != nil {
		return nil, err
	}
	for i := range regions {
		regions[i].RadiusMeters = spatial.ApproxRadiusMeters(regions[i].Lat, regions[i].Long, regions[i].Radius)
	}
	return regions, nil
}

// DeleteRegion removes a region by ID
func (s *RegionService) DeleteRegion(id int64) error {
	return s.repo.DeleteRegion(id)
}
