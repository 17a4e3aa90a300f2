package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredVersion(t *testing.T) {
	assert.Equal(t, int64(6), storedVersion(map[string]interface{}{"version": int64(6)}))
	assert.Equal(t, int64(2), storedVersion(map[string]interface{}{"version": 2.0}))
	assert.Equal(t, int64(0), storedVersion(map[string]interface{}{"name": "Tea"}))
	assert.Equal(t, int64(0), storedVersion(map[string]interface{}{"version": nil}))
}
