package entity

import "time"

// Meta is embedded by every persisted entity. Version starts at 0 for records
// that were never written and is bumped by the repositories on each write.
type Meta struct {
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) GetVersion() int64 { return m.Version }

// Stamp records a successful write.
func (m *Meta) Stamp(version int64, at time.Time) {
	m.Version = version
	m.UpdatedAt = at
}

// Record is the contract the storage layer needs from an entity.
type Record interface {
	GetID() string
	GetVersion() int64
	Stamp(version int64, at time.Time)
}
