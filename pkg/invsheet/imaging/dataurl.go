package imaging

import (
	"encoding/base64"
	"strings"
)

const defaultMIME = "image/jpeg"

// EncodeDataURL wraps raw image bytes as an inline data URL.
func EncodeDataURL(mime string, data []byte) string {
	if mime == "" {
		mime = defaultMIME
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// splitDataURL separates a data URL into its MIME type and base64 payload.
// Inputs that are not data URLs return ok=false; a missing or malformed
// MIME field falls back to image/jpeg.
func splitDataURL(s string) (mime, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mime = strings.TrimSuffix(meta, ";base64")
	if mime == "" || !strings.Contains(mime, "/") {
		mime = defaultMIME
	}
	return mime, payload, true
}

// MIMEType returns the MIME type embedded in an inline image
// representation, defaulting to image/jpeg.
func MIMEType(s string) string {
	if mime, _, ok := splitDataURL(s); ok {
		return mime
	}
	return defaultMIME
}

// estimateSize approximates the decoded byte size of an inline image
// representation. For base64 data URLs that is payload length scaled by
// 3/4; anything else is measured by raw length. This is deliberately an
// approximation, never an exact decode.
func estimateSize(s string) int {
	if _, payload, ok := splitDataURL(s); ok {
		return len(payload) * 3 / 4
	}
	return len(s)
}
