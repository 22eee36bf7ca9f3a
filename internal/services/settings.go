package services

import (
	"context"
	"errors"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

// DefaultSettings seeds the singleton the first time anything reads it.
var DefaultSettings = models.Settings{PetrolRate: 100, DieselRate: 90, AdvanceCash: 5000}

// settingsStore is the Firestore storage interface for the settings
// singleton.
type settingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	Set(ctx context.Context, settings models.Settings) error
}

type settingsService struct {
	store settingsStore
}

func NewSettingsService(store settingsStore) *settingsService {
	return &settingsService{store: store}
}

// GetOrCreate reads the station settings, writing the defaults first if the
// document does not exist yet.
func (s *settingsService) GetOrCreate(ctx context.Context) (models.Settings, error) {
	settings, err := s.store.Get(ctx)
	if err == nil {
		return settings, nil
	}
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		return models.Settings{}, err
	}
	if err := s.store.Set(ctx, DefaultSettings); err != nil {
		return models.Settings{}, err
	}
	return DefaultSettings, nil
}

// Update replaces the whole settings record. Unparsable numbers become zero
// rather than failing the write.
func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (models.Settings, error) {
	settings := models.Settings{
		PetrolRate:  parseReading(req.PetrolRate),
		DieselRate:  parseReading(req.DieselRate),
		AdvanceCash: parseReading(req.AdvanceCash),
	}
	if err := s.store.Set(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
