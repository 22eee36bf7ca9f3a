package services

import (
	"context"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/logger"
)

// Store interfaces for the bulk clears. Each step is a separate batched
// delete; there is no cross-collection transaction, so a failure leaves the
// completed steps in place.
type shiftTransactionStore interface {
	DeleteAll(ctx context.Context) error
}

type shiftReadingsStore interface {
	DeleteAllFor(ctx context.Context, attendantName string) error
}

type shiftOwnerStore interface {
	DeleteAll(ctx context.Context) error
}

type shiftAttendantStore interface {
	List(ctx context.Context) ([]models.Attendant, error)
	DeleteAll(ctx context.Context) error
}

type seeder interface {
	Seed(ctx context.Context) error
}

type shiftService struct {
	txs        shiftTransactionStore
	readings   shiftReadingsStore
	owners     shiftOwnerStore
	attendants shiftAttendantStore
	seed       seeder
}

func NewShiftService(txs shiftTransactionStore, readings shiftReadingsStore, owners shiftOwnerStore, attendants shiftAttendantStore, seed seeder) *shiftService {
	return &shiftService{txs: txs, readings: readings, owners: owners, attendants: attendants, seed: seed}
}

// EndShift clears the transaction ledger, then each attendant's readings,
// in that order. Best effort: a failing step aborts and is named in the
// returned error, completed steps stay cleared.
func (s *shiftService) EndShift(ctx context.Context) (dto.ShiftResult, error) {
	log := logger.FromContext(ctx)
	result := dto.ShiftResult{Completed: []string{}}

	if err := s.txs.DeleteAll(ctx); err != nil {
		return result, errs.NewStepError("clear transactions", err)
	}
	result.Completed = append(result.Completed, "clear transactions")

	attendants, err := s.attendants.List(ctx)
	if err != nil {
		return result, errs.NewStepError("list attendants", err)
	}
	for _, a := range attendants {
		step := "clear readings for " + a.Name
		if err := s.readings.DeleteAllFor(ctx, a.Name); err != nil {
			return result, errs.NewStepError(step, err)
		}
		result.Completed = append(result.Completed, step)
	}

	log.Info("shift ended", "steps", len(result.Completed))
	return result, nil
}

// Reset runs a shift end and then wipes the registries and restores the
// seed data. Same best-effort contract as EndShift.
func (s *shiftService) Reset(ctx context.Context) (dto.ShiftResult, error) {
	result, err := s.EndShift(ctx)
	if err != nil {
		return result, err
	}

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"clear owners", s.owners.DeleteAll},
		{"clear attendants", s.attendants.DeleteAll},
		{"seed defaults", s.seed.Seed},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return result, errs.NewStepError(step.name, err)
		}
		result.Completed = append(result.Completed, step.name)
	}

	logger.FromContext(ctx).Info("station data reset", "steps", len(result.Completed))
	return result, nil
}
