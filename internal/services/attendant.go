package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

// attendantStore is the Firestore storage interface for the attendant
// registry.
type attendantStore interface {
	Create(ctx context.Context, attendant *models.Attendant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Attendant, error)
}

type attendantService struct {
	store attendantStore
}

func NewAttendantService(store attendantStore) *attendantService {
	return &attendantService{store: store}
}

func (s *attendantService) List(ctx context.Context) ([]models.Attendant, error) {
	return s.store.List(ctx)
}

// Add registers a pump attendant with a deterministic placeholder avatar
// derived from the lowercased name.
func (s *attendantService) Add(ctx context.Context, name string) (*models.Attendant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValidationError("attendant name is required")
	}
	attendant := &models.Attendant{
		ID:        uuid.New().String(),
		Name:      name,
		AvatarURL: "https://picsum.photos/seed/" + strings.ToLower(name) + "/100/100",
	}
	if err := s.store.Create(ctx, attendant); err != nil {
		return nil, err
	}
	return attendant, nil
}

// Delete removes the attendant record only. Recorded transactions keep their
// denormalized name and avatar.
func (s *attendantService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
