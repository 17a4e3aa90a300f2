package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paksupply/internal/domain/entity"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Len(t, c.EnabledCategories(), 8)
	assert.True(t, c.CategoryEnabled("Bath Soap"))
	assert.False(t, c.CategoryEnabled("Electronics"))

	plan, ok := c.Plan("6months")
	require.True(t, ok)
	assert.Equal(t, int64(60000), plan.Price)

	assert.Empty(t, c.SeedManufacturers)
	assert.Empty(t, c.SeedProducts)
}

func TestReward(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Contains(t, c.Reward("  Babar Azam "), "FREE Carton Bath Soap")
	assert.Empty(t, c.Reward("babar"))
	assert.Empty(t, c.Reward(""))
}

func TestLoadSeedsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - {id: "1", name: "Bath Soap", enabled: true}
  - {id: "2", name: "Perfume", enabled: false}
seeds:
  manufacturers:
    - id: m-seed
      email: seed@paksupply.pk
      companyName: Seed Soaps
      status: APPROVED
      placementTier: PREMIUM
  products:
    - id: p-seed
      manufacturerId: m-seed
      name: Seed Soap
      category: Bath Soap
      price: 120
      imageUrls: ["https://img/seed.png"]
      status: ACTIVE
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.EnabledCategories(), 1)
	assert.False(t, c.CategoryEnabled("Perfume"))

	require.Len(t, c.SeedManufacturers, 1)
	assert.Equal(t, entity.TierPremium, c.SeedManufacturers[0].PlacementTier)
	require.Len(t, c.SeedProducts, 1)
	assert.Equal(t, int64(120), c.SeedProducts[0].Price)
	assert.Equal(t, []string{"https://img/seed.png"}, c.SeedProducts[0].ImageURLs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
