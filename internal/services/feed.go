package services

import (
	"context"
	"sync"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/logger"
)

// Store interfaces for the live feed. Watch channels deliver the full
// current document set on every change and close when the context ends.
type feedTransactionStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Watch(ctx context.Context) (<-chan []models.Transaction, error)
}

type feedAttendantStore interface {
	Watch(ctx context.Context) (<-chan []models.Attendant, error)
}

type feedReadingsStore interface {
	Get(ctx context.Context, attendantName, date string) (models.DailyReadings, error)
	SetField(ctx context.Context, attendantName, date, field, value string) error
	WatchDays(ctx context.Context, attendantName string) (<-chan map[string]models.DailyReadings, error)
}

// feedService mirrors Firestore into memory through snapshot listeners: one
// for the transaction ledger, one for the attendant registry, and one per
// attendant for that attendant's readings days. Reads served from the
// mirror; before the first snapshot arrives they fall through to the store.
// Writes always go straight to the store, the listener folds them back in.
type feedService struct {
	txStore        feedTransactionStore
	attendantStore feedAttendantStore
	readingsStore  feedReadingsStore

	mu       sync.RWMutex
	txs      []models.Transaction
	haveTxs  bool
	readings map[string]map[string]models.DailyReadings

	watched map[string]context.CancelFunc
}

func NewFeedService(txs feedTransactionStore, attendants feedAttendantStore, readings feedReadingsStore) *feedService {
	return &feedService{
		txStore:        txs,
		attendantStore: attendants,
		readingsStore:  readings,
		readings:       make(map[string]map[string]models.DailyReadings),
		watched:        make(map[string]context.CancelFunc),
	}
}

// Start launches the listeners. They run until ctx is cancelled.
func (s *feedService) Start(ctx context.Context) error {
	txCh, err := s.txStore.Watch(ctx)
	if err != nil {
		return err
	}
	attCh, err := s.attendantStore.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for txs := range txCh {
			s.mu.Lock()
			s.txs = txs
			s.haveTxs = true
			s.mu.Unlock()
		}
	}()

	go func() {
		for attendants := range attCh {
			s.syncReadingsWatchers(ctx, attendants)
		}
	}()

	return nil
}

// List returns the mirrored ledger, or reads through to the store before the
// first snapshot has landed.
func (s *feedService) List(ctx context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	if s.haveTxs {
		out := make([]models.Transaction, len(s.txs))
		copy(out, s.txs)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()
	return s.txStore.List(ctx)
}

// Get serves readings from the mirror when the attendant is being watched,
// otherwise from the store.
func (s *feedService) Get(ctx context.Context, attendantName, date string) (models.DailyReadings, error) {
	s.mu.RLock()
	days, watching := s.readings[attendantName]
	if watching {
		r, ok := days[date]
		s.mu.RUnlock()
		if ok {
			return r, nil
		}
		return models.DailyReadings{}, errs.NewNotFoundError("readings not found")
	}
	s.mu.RUnlock()
	return s.readingsStore.Get(ctx, attendantName, date)
}

func (s *feedService) SetField(ctx context.Context, attendantName, date, field, value string) error {
	return s.readingsStore.SetField(ctx, attendantName, date, field, value)
}

// syncReadingsWatchers starts a days listener for each new attendant and
// stops the listener of each removed one.
func (s *feedService) syncReadingsWatchers(ctx context.Context, attendants []models.Attendant) {
	log := logger.FromContext(ctx)

	current := make(map[string]bool, len(attendants))
	for _, a := range attendants {
		current[a.Name] = true
	}

	s.mu.Lock()
	for name, cancel := range s.watched {
		if !current[name] {
			cancel()
			delete(s.watched, name)
			delete(s.readings, name)
		}
	}
	toStart := make([]string, 0, len(current))
	for name := range current {
		if _, ok := s.watched[name]; !ok {
			toStart = append(toStart, name)
		}
	}
	s.mu.Unlock()

	for _, name := range toStart {
		watchCtx, cancel := context.WithCancel(ctx)
		ch, err := s.readingsStore.WatchDays(watchCtx, name)
		if err != nil {
			cancel()
			log.Error("failed to watch readings", "attendant", name, "error", err)
			continue
		}

		s.mu.Lock()
		s.watched[name] = cancel
		s.mu.Unlock()

		go func(name string) {
			for days := range ch {
				s.mu.Lock()
				s.readings[name] = days
				s.mu.Unlock()
			}
		}(name)
	}
}
