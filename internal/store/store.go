package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/petroshift/station-backend/internal/errs"
)

// deleteCollection removes every document in a collection through a single
// BulkWriter pass. An empty collection is a no-op.
func deleteCollection(ctx context.Context, client *firestore.Client, coll *firestore.CollectionRef) error {
	docs, err := coll.Documents(ctx).GetAll()
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to list "+coll.ID+" for deletion", err)
	}
	if len(docs) == 0 {
		return nil
	}

	bw := client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(docs))
	for _, doc := range docs {
		job, err := bw.Delete(doc.Ref)
		if err != nil {
			bw.End()
			return errs.NewDatabaseError("delete", "failed to schedule delete in "+coll.ID, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errs.NewDatabaseError("delete", "failed to delete document in "+coll.ID, err)
		}
	}
	return nil
}
