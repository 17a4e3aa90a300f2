package notification

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"03463904137":      "923463904137",
		"+92 346 3904137":  "923463904137",
		"0092-346-3904137": "923463904137",
		"923463904137":     "923463904137",
		"۰۳۴۶۳۹۰۴۱۳۷":      "923463904137",
		"٠٣٤٦ ٣٩٠٤١٣٧":     "923463904137",
		"0346３904137":      "92346904137",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestLink(t *testing.T) {
	link := NewWhatsAppLinker().Link("03463904137", "*Product:* Tea & Rusk\nQty 2")
	require.True(t, strings.HasPrefix(link, "https://wa.me/923463904137?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "*Product:* Tea & Rusk\nQty 2", u.Query().Get("text"))
}
