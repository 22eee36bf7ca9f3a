package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

// settingsStore persists the single station-wide settings document.
type settingsStore struct {
	client *firestore.Client
}

func NewSettingsStore(client *firestore.Client) *settingsStore {
	return &settingsStore{client: client}
}

func (s *settingsStore) doc() *firestore.DocumentRef {
	return s.client.Collection("settings").Doc("main")
}

func (s *settingsStore) Get(ctx context.Context) (models.Settings, error) {
	doc, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Settings{}, errs.NewNotFoundError("settings not found")
		}
		return models.Settings{}, errs.NewDatabaseError("read", "failed to get settings", err)
	}
	var settings models.Settings
	if err := doc.DataTo(&settings); err != nil {
		return models.Settings{}, errs.NewDatabaseError("read", "failed to parse settings data", err)
	}
	return settings, nil
}

func (s *settingsStore) Set(ctx context.Context, settings models.Settings) error {
	_, err := s.doc().Set(ctx, settings)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to write settings", err)
	}
	return nil
}
