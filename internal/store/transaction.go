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

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("transactions")
}

func (s *transactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	doc, _, err := s.collection().Add(ctx, tx)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create transaction", err)
	}
	tx.ID = doc.ID
	return nil
}

func (s *transactionStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	doc, err := s.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get transaction", err)
	}
	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	tx.ID = doc.Ref.ID
	return &tx, nil
}

func (s *transactionStore) Update(ctx context.Context, tx *models.Transaction) error {
	_, err := s.collection().Doc(tx.ID).Set(ctx, tx)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update transaction", err)
	}
	return nil
}

// List returns the whole ledger, newest first.
func (s *transactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	docs, err := s.collection().OrderBy("timestamp", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
	}
	return decodeTransactions(docs)
}

func (s *transactionStore) DeleteAll(ctx context.Context) error {
	return deleteCollection(ctx, s.client, s.collection())
}

// Watch streams the full ledger on every change, newest first. The channel
// closes when ctx is cancelled or the listener dies.
func (s *transactionStore) Watch(ctx context.Context) (<-chan []models.Transaction, error) {
	snaps := s.collection().OrderBy("timestamp", firestore.Desc).Snapshots(ctx)
	ch := make(chan []models.Transaction, 1)

	go func() {
		defer close(ch)
		defer snaps.Stop()
		log := logger.FromContext(ctx)

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Error("transaction listener terminated", "error", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Error("failed to read transaction snapshot", "error", err)
				continue
			}
			txs, err := decodeTransactions(docs)
			if err != nil {
				log.Error("failed to decode transaction snapshot", "error", err)
				continue
			}
			select {
			case ch <- txs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

func decodeTransactions(docs []*firestore.DocumentSnapshot) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		var tx models.Transaction
		if err := d.DataTo(&tx); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		tx.ID = d.Ref.ID
		txs = append(txs, tx)
	}
	return txs, nil
}
