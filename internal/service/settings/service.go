package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/caninecompadre/booking-service/internal/domain"
	settingsRepo "github.com/caninecompadre/booking-service/internal/infra/storage/settings"
)

// Service manages the global booking settings.
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService creates the settings service.
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the current settings. A missing row falls back to the
// defaults, so a fresh system behaves sensibly before any staff edit.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: no settings row, using defaults")
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}
	return current, nil
}

// Update validates and stores new settings.
func (s *Service) Update(ctx context.Context, next domain.Settings) (*domain.Settings, error) {
	if err := next.Validate(); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: weekends=%t, maxDogs=%d, evening=%t",
		updated.AllowWeekendBookings, updated.MaxDogsPerSlot, updated.AllowEveningSlot)
	return updated, nil
}
