package services

import (
	"context"
	"fmt"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

// Shared in-memory fakes for the store interfaces, one per collection.

type fakeTransactionStore struct {
	txs          []models.Transaction
	createErr    error
	getErr       error
	updateErr    error
	listErr      error
	deleteAllErr error
	nextID       int
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	tx.ID = fmt.Sprintf("tx-%d", f.nextID)
	// Newest first, like the ordered collection read.
	f.txs = append([]models.Transaction{*tx}, f.txs...)
	return nil
}

func (f *fakeTransactionStore) Get(_ context.Context, id string) (*models.Transaction, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, tx := range f.txs {
		if tx.ID == id {
			out := tx
			return &out, nil
		}
	}
	return nil, errs.NewNotFoundError("transaction not found")
}

func (f *fakeTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.txs {
		if f.txs[i].ID == tx.ID {
			f.txs[i] = *tx
			return nil
		}
	}
	return errs.NewNotFoundError("transaction not found")
}

func (f *fakeTransactionStore) List(_ context.Context) ([]models.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Transaction, len(f.txs))
	copy(out, f.txs)
	return out, nil
}

func (f *fakeTransactionStore) DeleteAll(_ context.Context) error {
	if f.deleteAllErr != nil {
		return f.deleteAllErr
	}
	f.txs = nil
	return nil
}

type fakeAttendantStore struct {
	attendants   []models.Attendant
	listErr      error
	createErr    error
	deleteAllErr error
}

func (f *fakeAttendantStore) List(_ context.Context) ([]models.Attendant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Attendant, len(f.attendants))
	copy(out, f.attendants)
	return out, nil
}

func (f *fakeAttendantStore) Create(_ context.Context, attendant *models.Attendant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.attendants = append(f.attendants, *attendant)
	return nil
}

func (f *fakeAttendantStore) Delete(_ context.Context, id string) error {
	for i, a := range f.attendants {
		if a.ID == id {
			f.attendants = append(f.attendants[:i], f.attendants[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFoundError("attendant not found")
}

func (f *fakeAttendantStore) DeleteAll(_ context.Context) error {
	if f.deleteAllErr != nil {
		return f.deleteAllErr
	}
	f.attendants = nil
	return nil
}

type fakeOwnerStore struct {
	owners       []models.Owner
	createErr    error
	getErr       error
	setErr       error
	listErr      error
	deleteAllErr error
}

func (f *fakeOwnerStore) Create(_ context.Context, owner *models.Owner) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.owners = append(f.owners, *owner)
	return nil
}

func (f *fakeOwnerStore) Get(_ context.Context, id string) (*models.Owner, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, o := range f.owners {
		if o.ID == id {
			out := o
			out.Vehicles = append([]models.Vehicle(nil), o.Vehicles...)
			return &out, nil
		}
	}
	return nil, errs.NewNotFoundError("owner not found")
}

func (f *fakeOwnerStore) Set(_ context.Context, owner *models.Owner) error {
	if f.setErr != nil {
		return f.setErr
	}
	for i := range f.owners {
		if f.owners[i].ID == owner.ID {
			f.owners[i] = *owner
			return nil
		}
	}
	f.owners = append(f.owners, *owner)
	return nil
}

func (f *fakeOwnerStore) Delete(_ context.Context, id string) error {
	for i, o := range f.owners {
		if o.ID == id {
			f.owners = append(f.owners[:i], f.owners[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFoundError("owner not found")
}

func (f *fakeOwnerStore) List(_ context.Context) ([]models.Owner, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Owner, len(f.owners))
	copy(out, f.owners)
	return out, nil
}

func (f *fakeOwnerStore) DeleteAll(_ context.Context) error {
	if f.deleteAllErr != nil {
		return f.deleteAllErr
	}
	f.owners = nil
	return nil
}

type fakeSettingsStore struct {
	settings *models.Settings
	getErr   error
	setErr   error
	setCount int
}

func (f *fakeSettingsStore) Get(_ context.Context) (models.Settings, error) {
	if f.getErr != nil {
		return models.Settings{}, f.getErr
	}
	if f.settings == nil {
		return models.Settings{}, errs.NewNotFoundError("settings not found")
	}
	return *f.settings, nil
}

func (f *fakeSettingsStore) Set(_ context.Context, settings models.Settings) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.settings = &settings
	f.setCount++
	return nil
}

type fakeReadingsStore struct {
	// attendant name -> date -> readings
	data        map[string]map[string]models.DailyReadings
	setErr      error
	cleared     []string
	clearErrFor string
	clearErr    error
}

func newFakeReadingsStore() *fakeReadingsStore {
	return &fakeReadingsStore{data: make(map[string]map[string]models.DailyReadings)}
}

func (f *fakeReadingsStore) Get(_ context.Context, attendantName, date string) (models.DailyReadings, error) {
	if days, ok := f.data[attendantName]; ok {
		if r, ok := days[date]; ok {
			return r, nil
		}
	}
	return models.DailyReadings{}, errs.NewNotFoundError("readings not found")
}

func (f *fakeReadingsStore) SetField(_ context.Context, attendantName, date, field, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	days, ok := f.data[attendantName]
	if !ok {
		days = make(map[string]models.DailyReadings)
		f.data[attendantName] = days
	}
	r := days[date]
	switch field {
	case "petrol2pm":
		r.Petrol2PM = value
	case "petrol10pm":
		r.Petrol10PM = value
	case "diesel2pm":
		r.Diesel2PM = value
	case "diesel10pm":
		r.Diesel10PM = value
	}
	days[date] = r
	return nil
}

func (f *fakeReadingsStore) DeleteAllFor(_ context.Context, attendantName string) error {
	if f.clearErr != nil && attendantName == f.clearErrFor {
		return f.clearErr
	}
	f.cleared = append(f.cleared, attendantName)
	delete(f.data, attendantName)
	return nil
}

type fakeSeeder struct {
	err    error
	seeded bool
}

func (f *fakeSeeder) Seed(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.seeded = true
	return nil
}
