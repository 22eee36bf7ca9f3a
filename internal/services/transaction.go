package services

import (
	"context"
	"time"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

// txTimestampLayout matches an ISO-8601 instant with millisecond precision,
// the format every stored timestamp uses. Readings lookups rely on the date
// being a plain prefix of it.
const txTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// transactionStore is the Firestore storage interface for the transaction
// ledger.
type transactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	Get(ctx context.Context, id string) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	List(ctx context.Context) ([]models.Transaction, error)
}

type attendantLister interface {
	List(ctx context.Context) ([]models.Attendant, error)
}

type ownerLister interface {
	List(ctx context.Context) ([]models.Owner, error)
}

type settingsProvider interface {
	GetOrCreate(ctx context.Context) (models.Settings, error)
}

type transactionService struct {
	store      transactionStore
	attendants attendantLister
	owners     ownerLister
	settings   settingsProvider
	now        func() time.Time
}

func NewTransactionService(store transactionStore, attendants attendantLister, owners ownerLister, settings settingsProvider) *transactionService {
	return &transactionService{
		store:      store,
		attendants: attendants,
		owners:     owners,
		settings:   settings,
		now:        time.Now,
	}
}

// List returns the full ledger, newest first.
func (s *transactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.store.List(ctx)
}

// Query lists the ledger narrowed by the given criteria, order preserved.
func (s *transactionService) Query(ctx context.Context, criteria dto.FilterCriteria) ([]models.Transaction, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(txs, criteria), nil
}

// RecordSale validates the request through the entry flow and appends the
// sale with the attendant's current name and avatar denormalized onto it.
func (s *transactionService) RecordSale(ctx context.Context, req dto.CreateSaleRequest) (*models.Transaction, error) {
	attendant, err := s.findAttendant(ctx, req.UserName)
	if err != nil {
		return nil, err
	}
	tx, err := s.buildSale(ctx, req)
	if err != nil {
		return nil, err
	}
	tx.Timestamp = s.now().UTC().Format(txTimestampLayout)
	tx.UserName = attendant.Name
	tx.UserAvatarURL = attendant.AvatarURL

	if err := s.store.Create(ctx, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateSale re-validates an edited sale and writes it in place. The
// original timestamp and attendant attribution are preserved; only sales can
// be edited, deposits are append-only.
func (s *transactionService) UpdateSale(ctx context.Context, id string, req dto.CreateSaleRequest) (*models.Transaction, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.IsSale() {
		return nil, errs.NewValidationError("only sales can be edited")
	}

	tx, err := s.buildSale(ctx, req)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	tx.Timestamp = existing.Timestamp
	tx.UserName = existing.UserName
	tx.UserAvatarURL = existing.UserAvatarURL

	if err := s.store.Update(ctx, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// RecordDeposit appends a cash handover to the office. Deposits skip the
// entry flow entirely; only the amount is validated.
func (s *transactionService) RecordDeposit(ctx context.Context, req dto.DepositRequest) (*models.Transaction, error) {
	amount := parseReading(req.Amount)
	if amount <= 0 {
		return nil, errs.NewValidationError("Please enter a valid positive amount.")
	}
	attendant, err := s.findAttendant(ctx, req.UserName)
	if err != nil {
		return nil, err
	}

	tx := models.Transaction{
		Timestamp:     s.now().UTC().Format(txTimestampLayout),
		Type:          models.TransactionDeposit,
		FuelAmount:    amount,
		UserName:      attendant.Name,
		UserAvatarURL: attendant.AvatarURL,
	}
	if err := s.store.Create(ctx, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// buildSale drives the entry form in request order and returns the resulting
// sale without timestamp or attribution.
func (s *transactionService) buildSale(ctx context.Context, req dto.CreateSaleRequest) (models.Transaction, error) {
	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	owners, err := s.owners.List(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	form := NewEntryForm(settings, owners)
	if err := form.SelectFuel(req.FuelType); err != nil {
		return models.Transaction{}, err
	}
	if err := form.SelectForm(req.FuelForm); err != nil {
		return models.Transaction{}, err
	}
	if err := form.EnterValue(req.Value); err != nil {
		return models.Transaction{}, err
	}
	if err := form.SelectPayment(req.PaymentMode); err != nil {
		return models.Transaction{}, err
	}
	if models.PaymentMode(req.PaymentMode) == models.PaymentBill {
		if err := form.EnterBillDetails(req.VehicleNumber, req.GallonOwnerID); err != nil {
			return models.Transaction{}, err
		}
	} else {
		if err := form.EnterAmountPaid(req.AmountPaid); err != nil {
			return models.Transaction{}, err
		}
	}
	return form.Build()
}

func (s *transactionService) findAttendant(ctx context.Context, name string) (models.Attendant, error) {
	attendants, err := s.attendants.List(ctx)
	if err != nil {
		return models.Attendant{}, err
	}
	for _, a := range attendants {
		if a.Name == name {
			return a, nil
		}
	}
	return models.Attendant{}, errs.NewNotFoundError("attendant not found")
}
