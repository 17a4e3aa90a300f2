package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"paksupply/internal/domain/entity"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type file struct {
	Categories []entity.Category    `yaml:"categories"`
	Plans      []entity.PaymentPlan `yaml:"plans"`
	PromoCodes []entity.PromoCode   `yaml:"promoCodes"`
	Seeds      struct {
		Manufacturers []map[string]interface{} `yaml:"manufacturers"`
		Products      []map[string]interface{} `yaml:"products"`
		Shops         []map[string]interface{} `yaml:"shops"`
	} `yaml:"seeds"`
}

// Catalog is the static reference data plus the seed records merged ahead of
// persisted data.
type Catalog struct {
	Categories []entity.Category
	Plans      []entity.PaymentPlan
	PromoCodes []entity.PromoCode

	SeedManufacturers []entity.Manufacturer
	SeedProducts      []entity.Product
	SeedShops         []entity.ShopkeeperProfile
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	c := &Catalog{
		Categories: f.Categories,
		Plans:      f.Plans,
		PromoCodes: f.PromoCodes,
	}

	var err error
	if c.SeedManufacturers, err = seeds[entity.Manufacturer](f.Seeds.Manufacturers); err != nil {
		return nil, fmt.Errorf("catalog: manufacturer seeds: %w", err)
	}
	if c.SeedProducts, err = seeds[entity.Product](f.Seeds.Products); err != nil {
		return nil, fmt.Errorf("catalog: product seeds: %w", err)
	}
	if c.SeedShops, err = seeds[entity.ShopkeeperProfile](f.Seeds.Shops); err != nil {
		return nil, fmt.Errorf("catalog: shop seeds: %w", err)
	}
	return c, nil
}

// Seeds are written in the same camelCase shape as stored documents, so they
// go through JSON to pick up the entity's field names and types.
func seeds[T any](raw []map[string]interface{}) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Catalog) EnabledCategories() []entity.Category {
	return lo.Filter(c.Categories, func(cat entity.Category, _ int) bool { return cat.Enabled })
}

// CategoryEnabled matches by name, which is what products store.
func (c *Catalog) CategoryEnabled(name string) bool {
	return lo.ContainsBy(c.Categories, func(cat entity.Category) bool {
		return cat.Enabled && cat.Name == name
	})
}

func (c *Catalog) Plan(id string) (entity.PaymentPlan, bool) {
	return lo.Find(c.Plans, func(p entity.PaymentPlan) bool { return p.ID == id })
}

// Reward returns the reward for a promo code, ignoring case and surrounding space.
func (c *Catalog) Reward(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	promo, ok := lo.Find(c.PromoCodes, func(p entity.PromoCode) bool {
		return strings.ToLower(p.Code) == code
	})
	if !ok {
		return ""
	}
	return promo.Reward
}
