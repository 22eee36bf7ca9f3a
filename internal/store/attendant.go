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

type attendantStore struct {
	client *firestore.Client
}

func NewAttendantStore(client *firestore.Client) *attendantStore {
	return &attendantStore{client: client}
}

func (s *attendantStore) collection() *firestore.CollectionRef {
	return s.client.Collection("attendants")
}

func (s *attendantStore) Create(ctx context.Context, attendant *models.Attendant) error {
	_, err := s.collection().Doc(attendant.ID).Set(ctx, attendant)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create attendant", err)
	}
	return nil
}

func (s *attendantStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection().Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete attendant", err)
	}
	return nil
}

func (s *attendantStore) List(ctx context.Context) ([]models.Attendant, error) {
	docs, err := s.collection().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list attendants", err)
	}
	return decodeAttendants(docs)
}

func (s *attendantStore) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, s.client, s.collection())
}

// Watch streams the full registry on every change, ordered by name.
func (s *attendantStore) Watch(ctx context.Context) (<-chan []models.Attendant, error) {
	snaps := s.collection().OrderBy("name", firestore.Asc).Snapshots(ctx)
	ch := make(chan []models.Attendant, 1)

	go func() {
		defer close(ch)
		defer snaps.Stop()
		log := logger.FromContext(ctx)

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Error("attendant listener terminated", "error", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Error("failed to read attendant snapshot", "error", err)
				continue
			}
			attendants, err := decodeAttendants(docs)
			if err != nil {
				log.Error("failed to decode attendant snapshot", "error", err)
				continue
			}
			select {
			case ch <- attendants:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

func decodeAttendants(docs []*firestore.DocumentSnapshot) ([]models.Attendant, error) {
	attendants := make([]models.Attendant, 0, len(docs))
	for _, d := range docs {
		var a models.Attendant
		if err := d.DataTo(&a); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse attendant data", err)
		}
		a.ID = d.Ref.ID
		attendants = append(attendants, a)
	}
	return attendants, nil
}
