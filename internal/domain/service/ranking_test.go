package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paksupply/internal/domain/entity"
)

func productIDs(ps []*entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestRankProducts(t *testing.T) {
	tiers := map[string]entity.PlacementTier{
		"m-basic":    entity.TierBasic,
		"m-premium":  entity.TierPremium,
		"m-standard": entity.TierStandard,
	}

	t.Run("tier weight then descending id", func(t *testing.T) {
		products := []*entity.Product{
			{ID: "p-1", ManufacturerID: "m-basic"},
			{ID: "p-2", ManufacturerID: "m-premium"},
			{ID: "p-3", ManufacturerID: "m-premium"},
		}
		assert.Equal(t, []string{"p-3", "p-2", "p-1"}, productIDs(RankProducts(products, tiers)))
	})

	t.Run("unresolved manufacturer sinks to the bottom", func(t *testing.T) {
		products := []*entity.Product{
			{ID: "a", ManufacturerID: entity.AdminManufacturerID},
			{ID: "b", ManufacturerID: "m-basic"},
			{ID: "c", ManufacturerID: "m-standard"},
			{ID: "z", ManufacturerID: "gone"},
		}
		assert.Equal(t, []string{"c", "b", "z", "a"}, productIDs(RankProducts(products, tiers)))
	})

	t.Run("independent of input order", func(t *testing.T) {
		a := []*entity.Product{
			{ID: "p-1", ManufacturerID: "m-basic"},
			{ID: "p-2", ManufacturerID: "m-premium"},
			{ID: "p-3", ManufacturerID: "m-premium"},
			{ID: "p-4", ManufacturerID: "m-standard"},
		}
		b := []*entity.Product{a[3], a[1], a[0], a[2]}

		first := productIDs(RankProducts(a, tiers))
		assert.Equal(t, first, productIDs(RankProducts(b, tiers)))
		assert.Equal(t, first, productIDs(RankProducts(a, tiers)))
	})

	t.Run("does not reorder the input slice", func(t *testing.T) {
		in := []*entity.Product{{ID: "p-1", ManufacturerID: "m-basic"}, {ID: "p-2", ManufacturerID: "m-premium"}}
		RankProducts(in, tiers)
		assert.Equal(t, []string{"p-1", "p-2"}, productIDs(in))
	})
}
