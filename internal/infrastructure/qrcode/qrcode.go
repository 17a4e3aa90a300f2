package qrcode

import (
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// StorefrontURL is the public page a printed QR code points consumers to.
func StorefrontURL(baseURL, shopID string) string {
	return fmt.Sprintf("%s/shop/%s", baseURL, shopID)
}

// PNG encodes content as a QR code image.
func PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := goqrcode.Encode(content, goqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encode: %w", err)
	}
	return png, nil
}
