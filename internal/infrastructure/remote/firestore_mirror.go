package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"paksupply/internal/domain/repository"
)

// FirestoreMirror stores each mirrored table as a collection whose documents
// use the same snake_case fields as the SQL tables.
type FirestoreMirror struct {
	client *firestore.Client
}

func NewFirestoreMirror(client *firestore.Client) *FirestoreMirror {
	return &FirestoreMirror{client: client}
}

func (m *FirestoreMirror) FetchAll(ctx context.Context, kind repository.EntityKind) ([]json.RawMessage, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	iter := m.client.Collection(t.name).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var docs []json.RawMessage
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("remote: fetch %s: %w", t.name, err)
		}

		row := snap.Data()
		if _, ok := row["id"]; !ok {
			row["id"] = snap.Ref.ID
		}
		doc, err := t.fromWire(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *FirestoreMirror) Upsert(ctx context.Context, kind repository.EntityKind, id string, doc json.RawMessage) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	row, err := t.toWire(doc)
	if err != nil {
		return err
	}

	if _, err := m.client.Collection(t.name).Doc(id).Set(ctx, row); err != nil {
		return fmt.Errorf("remote: upsert %s/%s: %w", t.name, id, err)
	}
	return nil
}

func (m *FirestoreMirror) UpdateFields(ctx context.Context, kind repository.EntityKind, id string, fields map[string]interface{}, expectedVersion int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	row, err := t.wireFields(fields)
	if err != nil {
		return err
	}

	updates := make([]firestore.Update, 0, len(row))
	for _, k := range sortedKeys(row) {
		updates = append(updates, firestore.Update{Path: k, Value: row[k]})
	}
	if len(updates) == 0 {
		return nil
	}

	ref := m.client.Collection(t.name).Doc(id)
	err = m.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrVersionMismatch
			}
			return err
		}
		if storedVersion(snap.Data()) != expectedVersion {
			return repository.ErrVersionMismatch
		}
		return tx.Update(ref, updates)
	})
	if err != nil {
		return fmt.Errorf("remote: update %s/%s at version %d: %w", t.name, id, expectedVersion, err)
	}
	return nil
}

// storedVersion reads the version field; documents written before versioning count as 0.
func storedVersion(row map[string]interface{}) int64 {
	switch v := row["version"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
