package service

import (
	"fmt"
	"io"
	"log"

	"github.com/locatotal/presence-backend-go/internal/ingest"
	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/repository"
)

// IngestService handles business logic for loading location exports
type IngestService struct {
	repo *repository.SampleRepository
}

// NewIngestService creates a new ingest service
func NewIngestService(repo *repository.SampleRepository) *IngestService {
	return &IngestService{repo: repo}
}

// IngestExport decodes a location-history export, normalizes every
// record and stores the resulting samples. When replace is set the
// previous sample set is dropped first. Returns the number of samples
// stored; a single malformed record fails the whole ingest.
func (s *IngestService) IngestExport(r io.Reader, replace bool) (int, error) {
	samples, err := ingest.ReadExport(r)
	if err != nil {
		return 0, err
	}

	if replace {
		if err := s.repo.DeleteAll(); err != nil {
			return 0, err
		}
	}

	if err := s.repo.InsertSamples(samples); err != nil {
		return 0, fmt.Errorf("failed to store samples: %w", err)
	}

	log.Printf("Ingested %d samples (replace=%v)", len(samples), replace)
	return len(samples), nil
}

// GetSamples retrieves stored samples with filtering and pagination
func (s *IngestService) GetSamples(filter models.SampleFilter) ([]models.Sample, int64, error) {
	return s.repo.GetSamples(filter)
}
