package notification

import (
	"net/url"
	"strings"
)

// WhatsAppLinker builds click-to-chat links. Nothing is sent from the server.
type WhatsAppLinker struct {
	BaseURL string
}

func NewWhatsAppLinker() *WhatsAppLinker {
	return &WhatsAppLinker{BaseURL: "https://wa.me/"}
}

func (w *WhatsAppLinker) Link(phone, message string) string {
	return w.BaseURL + NormalizePhone(phone) + "?text=" + url.QueryEscape(message)
}

// NormalizePhone turns a local Pakistani number (03xx...) into the
// international form wa.me expects (923xx...). Arabic-Indic and Urdu digits
// are read as their ASCII equivalents.
func NormalizePhone(phone string) string {
	digits := strings.Map(asciiDigit, phone)

	switch {
	case strings.HasPrefix(digits, "0092"):
		return digits[2:]
	case strings.HasPrefix(digits, "92"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "92" + digits[1:]
	default:
		return digits
	}
}

func asciiDigit(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r
	case r >= '\u0660' && r <= '\u0669':
		return '0' + r - '\u0660'
	case r >= '\u06F0' && r <= '\u06F9':
		return '0' + r - '\u06F0'
	default:
		return -1
	}
}
