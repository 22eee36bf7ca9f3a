package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/logger"
)

// readingsStore keeps one document per attendant per day under
// readings/{attendantName}/days/{date}. Attendant names key the path, so a
// readings document survives exactly as long as its attendant's name.
type readingsStore struct {
	client *firestore.Client
}

func NewReadingsStore(client *firestore.Client) *readingsStore {
	return &readingsStore{client: client}
}

func (s *readingsStore) days(attendantName string) *firestore.CollectionRef {
	return s.client.Collection("readings").Doc(attendantName).Collection("days")
}

func (s *readingsStore) Get(ctx context.Context, attendantName, date string) (models.DailyReadings, error) {
	doc, err := s.days(attendantName).Doc(date).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.DailyReadings{}, errs.NewNotFoundError("readings not found")
		}
		return models.DailyReadings{}, errs.NewDatabaseError("read", "failed to get readings", err)
	}
	var readings models.DailyReadings
	if err := doc.DataTo(&readings); err != nil {
		return models.DailyReadings{}, errs.NewDatabaseError("read", "failed to parse readings data", err)
	}
	return readings, nil
}

// SetField writes one field with a merge so concurrent writers of other
// fields are untouched. The document is created on first write.
func (s *readingsStore) SetField(ctx context.Context, attendantName, date, field, value string) error {
	_, err := s.days(attendantName).Doc(date).Set(ctx, map[string]interface{}{
		field: value,
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to write reading", err)
	}
	return nil
}

func (s *readingsStore) DeleteAllFor(ctx context.Context, attendantName string) error {
	return deleteCollection(ctx, s.client, s.days(attendantName))
}

// WatchDays streams every day document of one attendant, keyed by date.
func (s *readingsStore) WatchDays(ctx context.Context, attendantName string) (<-chan map[string]models.DailyReadings, error) {
	snaps := s.days(attendantName).Snapshots(ctx)
	ch := make(chan map[string]models.DailyReadings, 1)

	go func() {
		defer close(ch)
		defer snaps.Stop()
		log := logger.FromContext(ctx)

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Error("readings listener terminated", "attendant", attendantName, "error", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Error("failed to read readings snapshot", "attendant", attendantName, "error", err)
				continue
			}

			days := make(map[string]models.DailyReadings, len(docs))
			decodeErr := false
			for _, d := range docs {
				var r models.DailyReadings
				if err := d.DataTo(&r); err != nil {
					log.Error("failed to decode readings snapshot", "attendant", attendantName, "error", err)
					decodeErr = true
					break
				}
				days[d.Ref.ID] = r
			}
			if decodeErr {
				continue
			}

			select {
			case ch <- days:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}
