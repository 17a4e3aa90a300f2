// Package remote implements the remote mirror over a table-backed backend.
// Wire rows use snake_case column names; domain documents use camelCase field
// names. The translation lives here and nowhere else.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"paksupply/internal/domain/repository"
)

type column struct {
	field string // domain field name
	wire  string // column name
	// jsonText columns hold a JSON-encoded value in a text column.
	jsonText bool
}

type table struct {
	name     string
	columns  []column
	defaults map[string]interface{} // by domain field, applied when the wire value is null or missing
}

var manufacturersTable = table{
	name: "manufacturers",
	columns: []column{
		{field: "id", wire: "id"},
		{field: "email", wire: "email"},
		{field: "passwordHash", wire: "password"},
		{field: "phone", wire: "phone"},
		{field: "companyName", wire: "company_name"},
		{field: "ownerName", wire: "owner_name"},
		{field: "ownerPhone", wire: "owner_phone"},
		{field: "managerPhone", wire: "manager_phone"},
		{field: "address", wire: "address"},
		{field: "city", wire: "city"},
		{field: "status", wire: "status"},
		{field: "placementTier", wire: "placement_tier"},
		{field: "isTrustedPartner", wire: "is_trusted_partner"},
		{field: "plan", wire: "plan"},
		{field: "isIsraelFreeClaim", wire: "is_israel_free_claim"},
		{field: "governmentDocUrl", wire: "government_doc_url"},
		{field: "signupDate", wire: "signup_date"},
		{field: "rating", wire: "rating"},
		{field: "ratingCount", wire: "rating_count"},
		{field: "version", wire: "version"},
		{field: "updatedAt", wire: "updated_at"},
	},
	defaults: map[string]interface{}{
		"placementTier":    "BASIC",
		"isTrustedPartner": false,
		"rating":           0,
		"ratingCount":      0,
	},
}

var productsTable = table{
	name: "products",
	columns: []column{
		{field: "id", wire: "id"},
		{field: "manufacturerId", wire: "manufacturer_id"},
		{field: "manufacturerName", wire: "manufacturer_name"},
		{field: "name", wire: "name"},
		{field: "brand", wire: "brand"},
		{field: "category", wire: "category"},
		{field: "price", wire: "price"},
		{field: "description", wire: "description"},
		{field: "imageUrls", wire: "image_urls", jsonText: true},
		{field: "isIsraelFree", wire: "is_israel_free"},
		{field: "isIsraelFreeApproved", wire: "is_israel_free_approved"},
		{field: "status", wire: "status"},
		{field: "orderWhatsApp", wire: "order_whatsapp"},
		{field: "createdAt", wire: "created_at"},
		{field: "version", wire: "version"},
		{field: "updatedAt", wire: "updated_at"},
	},
	defaults: map[string]interface{}{
		"imageUrls":            []interface{}{},
		"isIsraelFree":         false,
		"isIsraelFreeApproved": false,
	},
}

func tableFor(kind repository.EntityKind) (table, error) {
	switch kind {
	case repository.KindManufacturers:
		return manufacturersTable, nil
	case repository.KindProducts:
		return productsTable, nil
	default:
		return table{}, fmt.Errorf("remote: entity kind %q is not mirrored", kind)
	}
}

func (t table) wireColumns() []string {
	cols := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		cols = append(cols, c.wire)
	}
	return cols
}

func (t table) byField(field string) (column, bool) {
	for _, c := range t.columns {
		if c.field == field {
			return c, true
		}
	}
	return column{}, false
}

// toWire converts a domain document into a wire row. Fields without a column
// are not mirrored.
func (t table) toWire(doc json.RawMessage) (map[string]interface{}, error) {
	fields, err := decodeObject(doc)
	if err != nil {
		return nil, err
	}
	row := make(map[string]interface{}, len(t.columns))
	for _, c := range t.columns {
		v, ok := fields[c.field]
		if !ok {
			continue
		}
		if row[c.wire], err = c.encode(v); err != nil {
			return nil, err
		}
	}
	return row, nil
}

// wireFields converts a partial update. Unknown fields are an error so a
// typo never turns into a silent no-op on the remote.
func (t table) wireFields(fields map[string]interface{}) (map[string]interface{}, error) {
	row := make(map[string]interface{}, len(fields))
	for field, v := range fields {
		c, ok := t.byField(field)
		if !ok {
			return nil, fmt.Errorf("remote: %s has no column for field %q", t.name, field)
		}
		normalized, err := normalize(v)
		if err != nil {
			return nil, err
		}
		if row[c.wire], err = c.encode(normalized); err != nil {
			return nil, err
		}
	}
	return row, nil
}

// fromWire converts a wire row into a domain document.
func (t table) fromWire(row map[string]interface{}) (json.RawMessage, error) {
	doc := make(map[string]interface{}, len(t.columns))
	for _, c := range t.columns {
		v, ok := row[c.wire]
		if !ok || v == nil {
			if d, has := t.defaults[c.field]; has {
				doc[c.field] = d
			}
			continue
		}
		decoded, err := c.decode(v)
		if err != nil {
			return nil, fmt.Errorf("remote: %s.%s: %w", t.name, c.wire, err)
		}
		if s, isString := decoded.(string); isString && s == "" {
			if d, has := t.defaults[c.field]; has {
				decoded = d
			}
		}
		doc[c.field] = decoded
	}
	return json.Marshal(doc)
}

func (c column) encode(v interface{}) (interface{}, error) {
	if !c.jsonText || v == nil {
		return v, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("remote: encode %s: %w", c.wire, err)
	}
	return string(b), nil
}

func (c column) decode(v interface{}) (interface{}, error) {
	if !c.jsonText {
		return v, nil
	}
	// Some backends hand back JSON columns already decoded.
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	if s == "" {
		return nil, nil
	}
	var out interface{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeObject reads a JSON object keeping integers as int64 so SQL drivers
// receive proper integer arguments.
func decodeObject(doc json.RawMessage) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("remote: decode document: %w", err)
	}
	for k, v := range fields {
		fields[k] = numbersToNative(v)
	}
	return fields, nil
}

func numbersToNative(v interface{}) interface{} {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case []interface{}:
		for i := range x {
			x[i] = numbersToNative(x[i])
		}
		return x
	case map[string]interface{}:
		for k := range x {
			x[k] = numbersToNative(x[k])
		}
		return x
	default:
		return v
	}
}

// normalize runs an arbitrary Go value through JSON so typed values such as
// entity enums or time.Time arrive at the wire in their document form.
func normalize(v interface{}) (interface{}, error) {
	b, err := json.Marshal(map[string]interface{}{"v": v})
	if err != nil {
		return nil, fmt.Errorf("remote: encode field: %w", err)
	}
	m, err := decodeObject(b)
	if err != nil {
		return nil, err
	}
	return m["v"], nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
