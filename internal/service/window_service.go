package service

import (
	"errors"

	"github.com/locatotal/presence-backend-go/internal/models"
	"github.com/locatotal/presence-backend-go/internal/repository"
)

// WindowService handles business logic for allowed detection windows
type WindowService struct {
	repo *repository.WindowRepository
}

// NewWindowService creates a new window service
func NewWindowService(repo *repository.WindowRepository) *WindowService {
	return &WindowService{repo: repo}
}

// CreateWindow validates and stores a window.
func (s *WindowService) CreateWindow(w models.Window) (models.Window, error) {
	if w.Start > w.Stop {
		return models.Window{}, errors.New("window start must not be after stop")
	}
	return s.repo.CreateWindow(w)
}

// GetWindows lists all windows. An empty list means detection is
// unrestricted in time.
func (s *WindowService) GetWindows() ([]models.Window, error) {
	return s.repo.GetWindows()
}

// DeleteWindow removes a window by ID
func (s *WindowService) DeleteWindow(id int64) error {
	return s.repo.DeleteWindow(id)
}
