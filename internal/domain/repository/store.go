package repository

import (
	"context"
	"encoding/json"
	"errors"
)

// RecordStore is the local, always-available persistence path. Each namespace
// holds an ordered collection of JSON documents keyed by their "id" field.
//
// Get returns an empty collection for a namespace that was never written or
// whose contents are unreadable as a collection. An error means the storage
// itself could not be reached.
type RecordStore interface {
	Get(ctx context.Context, namespace string) ([]json.RawMessage, error)
	// Put replaces the document with the same id in place, or appends it.
	Put(ctx context.Context, namespace, id string, doc json.RawMessage) error
}

type EntityKind string

const (
	KindManufacturers EntityKind = "manufacturers"
	KindProducts      EntityKind = "products"
)

// ErrVersionMismatch is returned by a conditional remote update when the row is
// missing or no longer carries the expected version.
var ErrVersionMismatch = errors.New("remote: version mismatch")

// RemoteMirror is the optional table-backed remote. Documents crossing this
// interface use domain field names; translation to the wire schema belongs to
// the implementation. Every error other than ErrVersionMismatch is treated as
// the remote being unavailable.
type RemoteMirror interface {
	FetchAll(ctx context.Context, kind EntityKind) ([]json.RawMessage, error)
	Upsert(ctx context.Context, kind EntityKind, id string, doc json.RawMessage) error
	// UpdateFields applies fields only while the row is still at expectedVersion.
	// A row without a version counts as version 0.
	UpdateFields(ctx context.Context, kind EntityKind, id string, fields map[string]interface{}, expectedVersion int64) error
}
