package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

// ownerStore is the Firestore storage interface for the owner registry.
type ownerStore interface {
	Create(ctx context.Context, owner *models.Owner) error
	Get(ctx context.Context, id string) (*models.Owner, error)
	Set(ctx context.Context, owner *models.Owner) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Owner, error)
}

type ownerService struct {
	store ownerStore
}

func NewOwnerService(store ownerStore) *ownerService {
	return &ownerService{store: store}
}

func (s *ownerService) List(ctx context.Context) ([]models.Owner, error) {
	return s.store.List(ctx)
}

func (s *ownerService) Add(ctx context.Context, req dto.CreateOwnerRequest) (*models.Owner, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.NewValidationError("owner name is required")
	}
	owner := &models.Owner{
		ID:       uuid.New().String(),
		Name:     name,
		Vehicles: []models.Vehicle{},
	}
	if err := s.store.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// Update replaces the owner record. An empty name keeps the current one; a
// nil vehicle list keeps the current vehicles, an empty non-nil list clears
// them.
func (s *ownerService) Update(ctx context.Context, id string, req dto.UpdateOwnerRequest) (*models.Owner, error) {
	owner, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		owner.Name = name
	}
	if req.Vehicles != nil {
		vehicles := make([]models.Vehicle, 0, len(req.Vehicles))
		for _, v := range req.Vehicles {
			number := strings.ToUpper(strings.TrimSpace(v.Number))
			if number == "" {
				continue
			}
			if !models.ValidVehicleType(v.Type) {
				return nil, errs.NewValidationError("unknown vehicle type: " + string(v.Type))
			}
			vehicles = append(vehicles, models.Vehicle{Number: number, Type: v.Type})
		}
		owner.Vehicles = vehicles
	}
	if err := s.store.Set(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *ownerService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// RegisterVehicle appends one vehicle to an owner's list. Numbers are stored
// uppercase and must be unique within that owner; other owners may hold the
// same number.
func (s *ownerService) RegisterVehicle(ctx context.Context, ownerID string, req dto.RegisterVehicleRequest) (*models.Owner, error) {
	number := strings.ToUpper(strings.TrimSpace(req.Number))
	if number == "" {
		return nil, errs.NewValidationError("vehicle number is required")
	}
	vehicleType := models.VehicleType(req.Type)
	if !models.ValidVehicleType(vehicleType) {
		return nil, errs.NewValidationError("unknown vehicle type: " + req.Type)
	}

	owner, err := s.store.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, v := range owner.Vehicles {
		if v.Number == number {
			return nil, errs.NewValidationError("This vehicle number already exists.")
		}
	}

	owner.Vehicles = append(owner.Vehicles, models.Vehicle{Number: number, Type: vehicleType})
	if err := s.store.Set(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *ownerService) RemoveVehicle(ctx context.Context, ownerID, number string) (*models.Owner, error) {
	owner, err := s.store.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	target := strings.ToUpper(strings.TrimSpace(number))
	kept := make([]models.Vehicle, 0, len(owner.Vehicles))
	for _, v := range owner.Vehicles {
		if v.Number != target {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(owner.Vehicles) {
		return nil, errs.NewNotFoundError("vehicle not found")
	}

	owner.Vehicles = kept
	if err := s.store.Set(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// Resolve answers who a vehicle number belongs to, for the entry flow's
// live lookup while the attendant types.
func (s *ownerService) Resolve(ctx context.Context, vehicleNumber string) (dto.OwnerResolution, error) {
	owners, err := s.store.List(ctx)
	if err != nil {
		return dto.OwnerResolution{}, err
	}
	return ResolveOwner(vehicleNumber, owners), nil
}
