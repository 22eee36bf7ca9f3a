package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

const dayLayout = "2006-01-02"

// readingsStore is the Firestore storage interface for per-attendant daily
// meter readings.
type readingsStore interface {
	Get(ctx context.Context, attendantName, date string) (models.DailyReadings, error)
	SetField(ctx context.Context, attendantName, date, field, value string) error
}

// readingsTransactions delivers the snapshot reconciliation is scoped over.
type readingsTransactions interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

type readingsService struct {
	store    readingsStore
	txs      readingsTransactions
	settings settingsProvider
	now      func() time.Time
}

func NewReadingsService(store readingsStore, txs readingsTransactions, settings settingsProvider) *readingsService {
	return &readingsService{store: store, txs: txs, settings: settings, now: time.Now}
}

func (s *readingsService) today() string {
	return s.now().UTC().Format(dayLayout)
}

// Today returns the attendant's readings for the current day. A missing
// document is a normal state early in the shift and comes back as empty
// fields.
func (s *readingsService) Today(ctx context.Context, attendantName string) (models.DailyReadings, error) {
	readings, err := s.store.Get(ctx, attendantName, s.today())
	if err != nil {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			return models.DailyReadings{}, nil
		}
		return models.DailyReadings{}, err
	}
	return readings, nil
}

// SetField updates a single reading field for today. The write merges, so
// two attendants editing different fields never clobber each other.
func (s *readingsService) SetField(ctx context.Context, attendantName, field, value string) error {
	if !models.ValidReadingField(field) {
		return errs.NewValidationError("unknown reading field: " + field)
	}
	return s.store.SetField(ctx, attendantName, s.today(), field, value)
}

// Reconciliation compares today's meter readings against today's recorded
// sales for one attendant.
func (s *readingsService) Reconciliation(ctx context.Context, attendantName string) (dto.Reconciliation, error) {
	readings, err := s.Today(ctx, attendantName)
	if err != nil {
		return dto.Reconciliation{}, err
	}
	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return dto.Reconciliation{}, err
	}
	txs, err := s.txs.List(ctx)
	if err != nil {
		return dto.Reconciliation{}, err
	}

	today := s.today()
	rec := Reconcile(readings, settings, scopeToDay(txs, attendantName, today))
	rec.AttendantName = attendantName
	rec.Date = today
	return rec, nil
}

// scopeToDay keeps one attendant's records for one day. Timestamps are ISO
// strings, so the day is a plain prefix.
func scopeToDay(txs []models.Transaction, attendantName, day string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.UserName == attendantName && strings.HasPrefix(tx.Timestamp, day) {
			out = append(out, tx)
		}
	}
	return out
}
