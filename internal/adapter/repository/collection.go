package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
	"paksupply/internal/domain/service"
	"paksupply/pkg/errors"
	"paksupply/pkg/logger"
)

var validate = validator.New()

// collection is the typed view over one record store namespace. P is the
// pointer type so entities can be stamped in place.
type collection[T any, P interface {
	*T
	entity.Record
}] struct {
	store     repository.RecordStore
	source    Source
	namespace string
	resource  string
	seed      []T
	mu        *sync.Mutex
	now       func() time.Time
}

func newCollection[T any, P interface {
	*T
	entity.Record
}](store repository.RecordStore, source Source, namespace, resource string, seed []T) *collection[T, P] {
	if source == nil {
		source = LocalOnly()
	}
	return &collection[T, P]{
		store:     store,
		source:    source,
		namespace: namespace,
		resource:  resource,
		seed:      seed,
		mu:        &sync.Mutex{},
		now:       time.Now,
	}
}

// in returns a view of the same collection over another namespace. The lock
// is shared.
func (c *collection[T, P]) in(namespace string) *collection[T, P] {
	cp := *c
	cp.namespace = namespace
	return &cp
}

func idOf[T any, P interface {
	*T
	entity.Record
}](p P) string {
	return p.GetID()
}

func (c *collection[T, P]) seeds() []P {
	out := make([]P, 0, len(c.seed))
	for i := range c.seed {
		cp := c.seed[i]
		out = append(out, P(&cp))
	}
	return out
}

// all is the merged view: seeds first, then persisted records.
func (c *collection[T, P]) all(ctx context.Context) ([]P, error) {
	docs, err := c.source.Fetch(ctx, c.store, c.namespace)
	if err != nil {
		return nil, errors.StorageFailure(fmt.Sprintf("Failed to read %s", c.namespace), err)
	}
	return service.MergeSeed(c.seeds(), c.decodeAll(docs), idOf[T, P]), nil
}

func (c *collection[T, P]) decodeAll(docs []json.RawMessage) []P {
	out := make([]P, 0, len(docs))
	for _, d := range docs {
		rec, err := c.decode(d, false)
		if err != nil {
			logger.Warn("rejecting stored %s document: %v", c.namespace, err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (c *collection[T, P]) decode(doc []byte, strict bool) (P, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(doc))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := validate.Struct(&v); err != nil {
		return nil, err
	}
	return P(&v), nil
}

func (c *collection[T, P]) get(ctx context.Context, id string) (P, error) {
	records, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.GetID() == id {
			return r, nil
		}
	}
	return nil, errors.NotFound(c.resource, nil)
}

// save validates and upserts rec. A non-zero version must not be older than
// the stored one; version zero overwrites unconditionally. rec is only stamped
// once the write went through.
func (c *collection[T, P]) save(ctx context.Context, rec P) error {
	if err := validate.Struct(rec); err != nil {
		return errors.Validation(fmt.Sprintf("Invalid %s", c.resource), err)
	}
	if c.isSeed(rec.GetID()) {
		return errors.Forbidden(fmt.Sprintf("Built-in %s records are read-only", c.resource), nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.all(ctx)
	if err != nil {
		return err
	}

	next := rec.GetVersion()
	for _, r := range records {
		if r.GetID() != rec.GetID() {
			continue
		}
		stored := r.GetVersion()
		if next > 0 && next < stored {
			logger.Warn("stale write rejected: %s/%s version %d < %d", c.namespace, rec.GetID(), next, stored)
			return errors.Conflict(fmt.Sprintf("%s was modified by someone else", c.resource))
		}
		if stored > next {
			next = stored
		}
		break
	}

	stamped := *rec
	P(&stamped).Stamp(next+1, c.now().UTC())
	if err := c.write(ctx, P(&stamped)); err != nil {
		return err
	}
	*rec = stamped
	return nil
}

func (c *collection[T, P]) write(ctx context.Context, rec P) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return errors.Internal(fmt.Sprintf("Failed to encode %s", c.resource), err)
	}
	c.source.Upsert(ctx, rec.GetID(), doc)
	if err := c.store.Put(ctx, c.namespace, rec.GetID(), doc); err != nil {
		return errors.StorageFailure(fmt.Sprintf("Failed to save %s", c.resource), err)
	}
	return nil
}

// patchAttempts bounds how often a patch is recomputed after the remote moved
// ahead of the copy it was built on.
const patchAttempts = 3

// patch merges fields into the stored record. Built-in records are not in the
// store and report NotFound.
func (c *collection[T, P]) patch(ctx context.Context, id string, fields map[string]interface{}) (P, error) {
	return c.patchWith(ctx, id, func(P) (map[string]interface{}, error) { return fields, nil })
}

// patchWith computes the fields under the collection lock from the current
// record. fn may run more than once.
func (c *collection[T, P]) patchWith(ctx context.Context, id string, fn func(current P) (map[string]interface{}, error)) (P, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	for attempt := 1; attempt <= patchAttempts; attempt++ {
		var updated P
		updated, err = c.patchOnce(ctx, id, fn)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, errors.CodeConflict) {
			return nil, err
		}
		logger.Debug("retrying %s/%s update after conflict (attempt %d)", c.namespace, id, attempt)
	}
	return nil, err
}

func (c *collection[T, P]) patchOnce(ctx context.Context, id string, fn func(current P) (map[string]interface{}, error)) (P, error) {
	current, err := c.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := fn(current)
	if err != nil {
		return nil, err
	}
	if v, ok := fields["id"]; ok && v != id {
		return nil, errors.Validation("id cannot be changed", nil)
	}

	merged, err := mergeFields(current, fields)
	if err != nil {
		return nil, errors.Validation(fmt.Sprintf("Invalid %s update", c.resource), err)
	}
	updated, err := c.decode(merged, true)
	if err != nil {
		return nil, errors.Validation(fmt.Sprintf("Invalid %s update", c.resource), err)
	}

	now := c.now().UTC()
	updated.Stamp(current.GetVersion()+1, now)

	doc, err := json.Marshal(updated)
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to encode %s", c.resource), err)
	}

	mirrored := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		mirrored[k] = v
	}
	mirrored["version"] = updated.GetVersion()
	mirrored["updatedAt"] = now
	if err := c.source.UpdateFields(ctx, id, mirrored, current.GetVersion(), doc); err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, c.namespace, id, doc); err != nil {
		return nil, errors.StorageFailure(fmt.Sprintf("Failed to update %s", c.resource), err)
	}
	return updated, nil
}

// resolve finds id in the version-reconciled store view. Seeds are left out.
func (c *collection[T, P]) resolve(ctx context.Context, id string) (P, error) {
	if c.isSeed(id) {
		return nil, errors.NotFound(c.resource, nil)
	}
	docs, err := c.source.Fetch(ctx, c.store, c.namespace)
	if err != nil {
		return nil, errors.StorageFailure(fmt.Sprintf("Failed to read %s", c.namespace), err)
	}
	for _, r := range c.decodeAll(docs) {
		if r.GetID() == id {
			return r, nil
		}
	}
	return nil, errors.NotFound(c.resource, nil)
}

func (c *collection[T, P]) isSeed(id string) bool {
	for _, s := range c.seeds() {
		if s.GetID() == id {
			return true
		}
	}
	return false
}

// mergeFields overlays fields on the JSON form of current, leaving every other
// key untouched.
func mergeFields(current interface{}, fields map[string]interface{}) ([]byte, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		doc[k] = b
	}
	return json.Marshal(doc)
}
