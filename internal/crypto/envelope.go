package crypto

import (
	"strings"
)

// EnvelopePrefix marks values produced by this codec.
const EnvelopePrefix = "enc:v1:"

// legacyMinLength is the shortest standard base64 encoding of a GCM nonce
// (12 bytes) plus tag (16 bytes).
const legacyMinLength = 40

// IsEnveloped reports whether s carries the explicit ciphertext envelope.
func IsEnveloped(s string) bool {
	return strings.HasPrefix(s, EnvelopePrefix)
}

// LooksEncrypted reports whether s should be handed to Decrypt. Enveloped
// values always qualify. Bare values qualify when they are standard base64
// of at least legacyMinLength characters, which is how ciphertext was stored
// before the envelope existed. The bare check is advisory: plain text that
// happens to match simply fails authentication and is kept as is.
func LooksEncrypted(s string) bool {
	if IsEnveloped(s) {
		return true
	}

	return looksLikeLegacy(s)
}

func looksLikeLegacy(s string) bool {
	if len(s) < legacyMinLength || len(s)%4 != 0 {
		return false
	}

	body := strings.TrimRight(s, "=")
	if len(s)-len(body) > 2 {
		return false
	}

	for i := 0; i < len(body); i++ {
		if !isBase64Char(body[i]) {
			return false
		}
	}

	return true
}

func isBase64Char(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/':
		return true
	default:
		return false
	}
}
