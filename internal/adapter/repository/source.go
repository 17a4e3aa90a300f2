package repository

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"paksupply/internal/domain/repository"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
)

// Source decides where a collection is read from and whether writes are
// copied to a remote mirror. Mirror outages never reach the caller; the only
// error UpdateFields reports is a Conflict when the remote holds a newer copy.
type Source interface {
	Fetch(ctx context.Context, store repository.RecordStore, namespace string) ([]json.RawMessage, error)
	Upsert(ctx context.Context, id string, doc json.RawMessage)
	// UpdateFields applies fields computed from the copy at expected. doc is the
	// full updated document, used when the remote has no usable copy.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}, expected int64, doc json.RawMessage) error
}

type localOnly struct{}

// LocalOnly reads and writes the record store and nothing else.
func LocalOnly() Source { return localOnly{} }

func (localOnly) Fetch(ctx context.Context, store repository.RecordStore, namespace string) ([]json.RawMessage, error) {
	return store.Get(ctx, namespace)
}

func (localOnly) Upsert(context.Context, string, json.RawMessage) {}

func (localOnly) UpdateFields(context.Context, string, map[string]interface{}, int64, json.RawMessage) error {
	return nil
}

type remoteBacked struct {
	mirror  repository.RemoteMirror
	kind    repository.EntityKind
	timeout time.Duration
}

// RemoteBacked prefers the mirror for reads and falls back to the record store
// when the mirror cannot answer in time.
func RemoteBacked(mirror repository.RemoteMirror, kind repository.EntityKind, timeout time.Duration) Source {
	return &remoteBacked{mirror: mirror, kind: kind, timeout: timeout}
}

func (s *remoteBacked) Fetch(ctx context.Context, store repository.RecordStore, namespace string) ([]json.RawMessage, error) {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	remote, remoteErr := s.mirror.FetchAll(rctx, s.kind)
	cancel()

	local, localErr := store.Get(ctx, namespace)
	if remoteErr != nil {
		s.fallback("fetch", remoteErr)
		return local, localErr
	}
	if localErr != nil {
		logger.Warn("record store unreadable, serving remote %s only: %v", s.kind, localErr)
		return remote, nil
	}
	return reconcile(remote, local), nil
}

func (s *remoteBacked) Upsert(ctx context.Context, id string, doc json.RawMessage) {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.mirror.Upsert(rctx, s.kind, id, doc); err != nil {
		s.fallback("upsert", err)
	}
}

func (s *remoteBacked) UpdateFields(ctx context.Context, id string, fields map[string]interface{}, expected int64, doc json.RawMessage) error {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.mirror.UpdateFields(rctx, s.kind, id, fields, expected)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, repository.ErrVersionMismatch) {
		s.fallback("update", err)
		return nil
	}

	remote, err := s.mirror.FetchAll(rctx, s.kind)
	if err != nil {
		s.fallback("update", err)
		return nil
	}
	for _, d := range remote {
		if h := header(d); h.ID == id && h.Version > expected {
			logger.Warn("remote %s/%s moved to version %d, expected %d", s.kind, id, h.Version, expected)
			return errors.Conflict(string(s.kind) + " was modified by someone else")
		}
	}

	// The remote copy is missing or behind the one we built on.
	if err := s.mirror.Upsert(rctx, s.kind, id, doc); err != nil {
		s.fallback("upsert", err)
	}
	return nil
}

func (s *remoteBacked) fallback(operation string, err error) {
	logger.LogRemoteFallback(string(s.kind), operation, errors.RemoteUnavailable(operation, err))
}

type docHeader struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// reconcile keeps the remote order, swaps in a local document when it carries a
// higher version and appends documents the remote has never seen.
func reconcile(remote, local []json.RawMessage) []json.RawMessage {
	localByID := make(map[string]json.RawMessage, len(local))
	localOrder := make([]string, 0, len(local))
	for _, d := range local {
		h := header(d)
		if h.ID == "" {
			continue
		}
		if _, seen := localByID[h.ID]; !seen {
			localOrder = append(localOrder, h.ID)
		}
		localByID[h.ID] = d
	}

	out := make([]json.RawMessage, 0, len(remote)+len(local))
	seen := make(map[string]bool, len(remote))
	for _, d := range remote {
		h := header(d)
		if h.ID == "" || seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		if l, ok := localByID[h.ID]; ok && header(l).Version > h.Version {
			out = append(out, l)
			continue
		}
		out = append(out, d)
	}
	for _, id := range localOrder {
		if !seen[id] {
			out = append(out, localByID[id])
		}
	}
	return out
}

func header(doc json.RawMessage) docHeader {
	var h docHeader
	_ = json.Unmarshal(doc, &h)
	return h
}
