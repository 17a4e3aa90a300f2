package remote

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paksupply/internal/domain/entity"
	"paksupply/internal/domain/repository"
)

func TestTableFor(t *testing.T) {
	tbl, err := tableFor(repository.KindProducts)
	require.NoError(t, err)
	assert.Equal(t, "products", tbl.name)

	_, err = tableFor(repository.EntityKind("inventory:shop-1"))
	assert.Error(t, err)
}

func TestProductRoundTripThroughWire(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	p := entity.Product{
		ID:             "p-1",
		ManufacturerID: "m-1",
		Name:           "Surf Excel 1kg",
		Brand:          "Unilever",
		Category:       "detergents",
		Price:          450,
		ImageURLs:      []string{"https://img/1.png", "https://img/2.png"},
		IsIsraelFree:   true,
		Status:         entity.ProductActive,
		CreatedAt:      created,
		Meta:           entity.Meta{Version: 4},
	}
	doc, err := json.Marshal(p)
	require.NoError(t, err)

	row, err := productsTable.toWire(doc)
	require.NoError(t, err)
	assert.Equal(t, "m-1", row["manufacturer_id"])
	assert.Equal(t, int64(450), row["price"])
	assert.Equal(t, `["https://img/1.png","https://img/2.png"]`, row["image_urls"])
	assert.NotContains(t, row, "manufacturerId")

	back, err := productsTable.fromWire(row)
	require.NoError(t, err)

	var got entity.Product
	require.NoError(t, json.Unmarshal(back, &got))
	assert.Equal(t, p.ImageURLs, got.ImageURLs)
	assert.Equal(t, p.Price, got.Price)
	assert.Equal(t, int64(4), got.Version)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestFromWireAppliesDefaults(t *testing.T) {
	row := map[string]interface{}{
		"id":             "m-9",
		"email":          "m9@example.com",
		"company_name":   "Shan Foods",
		"status":         "APPROVED",
		"placement_tier": nil,
		"rating":         nil,
	}

	doc, err := manufacturersTable.fromWire(row)
	require.NoError(t, err)

	var m entity.Manufacturer
	require.NoError(t, json.Unmarshal(doc, &m))
	assert.Equal(t, entity.TierBasic, m.PlacementTier)
	assert.False(t, m.IsTrustedPartner)
	assert.Zero(t, m.Rating)
	assert.Zero(t, m.RatingCount)
}

func TestFromWireEmptyImageText(t *testing.T) {
	doc, err := productsTable.fromWire(map[string]interface{}{"id": "p-2", "image_urls": ""})
	require.NoError(t, err)

	var p entity.Product
	require.NoError(t, json.Unmarshal(doc, &p))
	assert.NotNil(t, p.ImageURLs)
	assert.Empty(t, p.ImageURLs)
}

func TestWireFields(t *testing.T) {
	row, err := manufacturersTable.wireFields(map[string]interface{}{
		"placementTier":    entity.TierPremium,
		"isTrustedPartner": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "PREMIUM", row["placement_tier"])
	assert.Equal(t, true, row["is_trusted_partner"])

	_, err = manufacturersTable.wireFields(map[string]interface{}{"nickname": "x"})
	assert.Error(t, err)
}
