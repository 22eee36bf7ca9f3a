package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/logger"
)

type seedOwnerStore interface {
	List(ctx context.Context) ([]models.Owner, error)
	Create(ctx context.Context, owner *models.Owner) error
}

type seedAttendantStore interface {
	List(ctx context.Context) ([]models.Attendant, error)
	Create(ctx context.Context, attendant *models.Attendant) error
}

type seedService struct {
	owners     seedOwnerStore
	attendants seedAttendantStore
}

func NewSeedService(owners seedOwnerStore, attendants seedAttendantStore) *seedService {
	return &seedService{owners: owners, attendants: attendants}
}

func defaultOwners() []models.Owner {
	return []models.Owner{
		{Name: "Rohan Sharma", Vehicles: []models.Vehicle{{Number: "MH12AB1234", Type: models.VehicleCar}}},
		{Name: "Priya Verma", Vehicles: []models.Vehicle{{Number: "DL01CD5678", Type: models.VehicleBike}}},
		{Name: "Suresh Kumar", Vehicles: []models.Vehicle{{Number: "KA05EF9012", Type: models.VehicleTruck}}},
	}
}

func defaultAttendants() []models.Attendant {
	return []models.Attendant{
		{Name: "Ankit", AvatarURL: "https://i.ibb.co/yFzdsKL/ankit.jpg"},
		{Name: "Ashmit", AvatarURL: "https://picsum.photos/seed/ashmit/100/100"},
	}
}

// Seed populates the owner and attendant registries with the default set.
// Each registry is seeded only when empty, so startup seeding never
// duplicates existing data.
func (s *seedService) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	owners, err := s.owners.List(ctx)
	if err != nil {
		return err
	}
	if len(owners) == 0 {
		for _, owner := range defaultOwners() {
			owner.ID = uuid.New().String()
			if err := s.owners.Create(ctx, &owner); err != nil {
				return err
			}
		}
		log.Info("seeded default owners")
	}

	attendants, err := s.attendants.List(ctx)
	if err != nil {
		return err
	}
	if len(attendants) == 0 {
		for _, attendant := range defaultAttendants() {
			attendant.ID = uuid.New().String()
			if err := s.attendants.Create(ctx, &attendant); err != nil {
				return err
			}
		}
		log.Info("seeded default attendants")
	}
	return nil
}
