package service

import "github.com/samber/lo"

// MergeSeed returns the seed sequence in its original order followed by every
// persisted element whose id is not already present, in persisted order.
// Seed entries are never shadowed or duplicated and persisted records are
// never dropped because seed data exists.
func MergeSeed[T any](seed, persisted []T, idOf func(T) string) []T {
	// Ids repeated within seed (or within persisted) keep only their first occurrence.
	all := make([]T, 0, len(seed)+len(persisted))
	all = append(all, seed...)
	all = append(all, persisted...)
	return lo.UniqBy(all, idOf)
}
