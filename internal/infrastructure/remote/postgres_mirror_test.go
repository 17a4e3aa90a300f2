package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUpsertQuery(t *testing.T) {
	m := NewPostgresMirror(nil)
	row := map[string]interface{}{
		"id":     "p-1",
		"name":   "Tea",
		"status": "ACTIVE",
	}

	sqlStr, args, err := m.upsertQuery(productsTable, row)
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "INSERT INTO products (id,name,status) VALUES ($1,$2,$3)")
	assert.Contains(t, sqlStr, "ON CONFLICT (id) DO UPDATE SET name = excluded.name, status = excluded.status")
	assert.Equal(t, []interface{}{"p-1", "Tea", "ACTIVE"}, args)
}

func TestPostgresUpsertQueryIDOnly(t *testing.T) {
	m := NewPostgresMirror(nil)
	sqlStr, _, err := m.upsertQuery(productsTable, map[string]interface{}{"id": "p-1"})
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "ON CONFLICT (id) DO NOTHING")
}

func TestPostgresUpdateQueryIsConditional(t *testing.T) {
	m := NewPostgresMirror(nil)
	sqlStr, args, err := m.updateQuery(manufacturersTable, "m-1", map[string]interface{}{"rating": 4.5}, 7)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE manufacturers SET rating = $1 WHERE id = $2 AND coalesce(version, 0) = $3", sqlStr)
	assert.Equal(t, []interface{}{4.5, "m-1", int64(7)}, args)
}
