package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
)

type ownerStore struct {
	client *firestore.Client
}

func NewOwnerStore(client *firestore.Client) *ownerStore {
	return &ownerStore{client: client}
}

func (s *ownerStore) collection() *firestore.CollectionRef {
	return s.client.Collection("owners")
}

func (s *ownerStore) Create(ctx context.Context, owner *models.Owner) error {
	_, err := s.collection().Doc(owner.ID).Set(ctx, owner)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create owner", err)
	}
	return nil
}

func (s *ownerStore) Get(ctx context.Context, id string) (*models.Owner, error) {
	doc, err := s.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("owner not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get owner", err)
	}
	var owner models.Owner
	if err := doc.DataTo(&owner); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse owner data", err)
	}
	owner.ID = doc.Ref.ID
	return &owner, nil
}

func (s *ownerStore) Set(ctx context.Context, owner *models.Owner) error {
	_, err := s.collection().Doc(owner.ID).Set(ctx, owner)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update owner", err)
	}
	return nil
}

func (s *ownerStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection().Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete owner", err)
	}
	return nil
}

func (s *ownerStore) List(ctx context.Context) ([]models.Owner, error) {
	docs, err := s.collection().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list owners", err)
	}
	owners := make([]models.Owner, 0, len(docs))
	for _, d := range docs {
		var owner models.Owner
		if err := d.DataTo(&owner); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse owner data", err)
		}
		owner.ID = d.Ref.ID
		owners = append(owners, owner)
	}
	return owners, nil
}

func (s *ownerStore) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, s.client, s.collection())
}
