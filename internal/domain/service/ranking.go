package service

import (
	"slices"
	"strings"

	"paksupply/internal/domain/entity"
)

// RankProducts orders products by their manufacturer's placement weight,
// highest first, breaking ties by descending product id. The order depends
// only on the inputs' ids and tiers, never on their incoming order.
// Products whose manufacturer is missing from tiers weigh zero.
func RankProducts(products []*entity.Product, tiers map[string]entity.PlacementTier) []*entity.Product {
	ranked := slices.Clone(products)
	slices.SortFunc(ranked, func(a, b *entity.Product) int {
		wa, wb := tiers[a.ManufacturerID].Weight(), tiers[b.ManufacturerID].Weight()
		if wa != wb {
			return wb - wa
		}
		return strings.Compare(b.ID, a.ID)
	})
	return ranked
}
