package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/presence"
	"github.com/locatotal/presence-backend-go/internal/repository"
)

// AnalysisService orchestrates presence analysis runs: it loads the
// current samples, regions and windows, executes the pipeline and
// persists the outcome as a run.
type AnalysisService struct {
	samples *repository.SampleRepository
	regions *repository.RegionRepository
	windows *repository.WindowRepository
	runs    *repository.RunRepository
	diag    presence.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	samples *repository.SampleRepository,
	regions *repository.RegionRepository,
	windows *repository.WindowRepository,
	runs *repository.RunRepository,
	diag presence.Logger,
) *AnalysisService {
	if diag == nil {
		diag = presence.NopLogger{}
	}
	return &AnalysisService{samples: samples, regions: regions, windows: windows, runs: runs, diag: diag}
}

// RunAnalysis executes the full pipeline against the stored data and
// persists the result. Configuration problems (no regions) surface
// before any classification happens.
func (s *AnalysisService) RunAnalysis() (models.Run, error) {
	storedRegions, err := s.regions.GetRegions()
	if err != nil {
		return models.Run{}, err
	}
	regionPoints := make([]models.GeoPoint, 0, len(storedRegions))
	for _, region := range storedRegions {
		regionPoints = append(regionPoints, region.Point())
	}

	storedWindows, err := s.windows.GetWindows()
	if err != nil {
		return models.Run{}, err
	}
	windows := make([]models.Timeframe, 0, len(storedWindows))
	for _, w := range storedWindows {
		windows = append(windows, w.Timeframe())
	}

	samples, err := s.samples.GetAllOrdered()
	if err != nil {
		return models.Run{}, err
	}

	result, err := presence.Run(samples, regionPoints, windows, s.diag)
	if err != nil {
		return models.Run{}, err
	}

	run := models.Run{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().Unix(),
		SampleCount:  result.SampleCount,
		TotalSeconds: result.TotalSeconds,
		Periods:      result.Periods,
		DateTotals:   result.DateTotals,
	}
	if err := s.runs.SaveRun(run); err != nil {
		return models.Run{}, err
	}

	log.Printf("Analysis run %s: %d samples, %d periods, %d seconds total",
		run.ID, run.SampleCount, len(run.Periods), run.TotalSeconds)
	return run, nil
}

// GetRun fetches a persisted run by ID; nil when not found.
func (s *AnalysisService) GetRun(id string) (*models.Run, error) {
	return s.runs.GetRun(id)
}

// GetRuns lists persisted runs
func (s *AnalysisService) GetRuns(filter models.RunFilter) ([]models.Run, int64, error) {
	return s.runs.GetRuns(filter)
}
