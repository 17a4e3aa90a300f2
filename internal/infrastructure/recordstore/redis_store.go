package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const maxWatchRetries = 5

// RedisStore keeps one string key per namespace holding the JSON collection.
// Put is a read-modify-write under WATCH, so two writers on the same
// namespace cannot silently drop each other's documents.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(namespace string) string {
	if s.prefix == "" {
		return namespace
	}
	return s.prefix + ":" + namespace
}

func (s *RedisStore) Get(ctx context.Context, namespace string) ([]json.RawMessage, error) {
	blob, err := s.client.Get(ctx, s.key(namespace)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("record store: redis get %s: %w", namespace, err)
	}
	return decodeCollection(namespace, blob), nil
}

func (s *RedisStore) Put(ctx context.Context, namespace, id string, doc json.RawMessage) error {
	if err := checkDoc(id, doc); err != nil {
		return err
	}

	key := s.key(namespace)
	txf := func(tx *redis.Tx) error {
		blob, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		next, err := json.Marshal(upsert(decodeCollection(namespace, blob), id, doc))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("record store: redis put %s: %w", namespace, err)
	}
	return fmt.Errorf("record store: redis put %s: too much contention", namespace)
}
