package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paksupply/internal/domain/entity"
	"paksupply/pkg/errors"
)

func TestSessionLifecycle(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.Create(entity.Session{Email: "shop@paksupply.pk", Role: entity.RoleShopkeeper})
	require.NotEmpty(t, s.Token)

	got, err := m.Get(s.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopkeeper, got.Role)

	m.Destroy(s.Token)
	_, err = m.Get(s.Token)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}

func TestSessionExpiry(t *testing.T) {
	m := NewManager(time.Minute)
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	s := m.Create(entity.Session{Role: entity.RoleAdmin})
	other := m.Create(entity.Session{Role: entity.RoleAdmin})

	now = now.Add(2 * time.Minute)
	_, err := m.Get(s.Token)
	assert.Error(t, err)

	assert.Equal(t, 1, m.Sweep())
	_, err = m.Get(other.Token)
	assert.Error(t, err)
}

func TestRefreshShopkeeper(t *testing.T) {
	m := NewManager(time.Hour)
	profile := &entity.ShopkeeperProfile{ID: "s-1", ShopName: "Old Name", PasswordHash: "secret"}
	s := m.Create(entity.Session{Role: entity.RoleShopkeeper, Shopkeeper: profile})

	updated := *profile
	updated.ShopName = "New Name"
	m.RefreshShopkeeper(&updated)

	got, err := m.Get(s.Token)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Shopkeeper.ShopName)
	assert.Empty(t, got.Shopkeeper.PasswordHash)
	assert.Equal(t, "s-1", got.ShopID())
}
