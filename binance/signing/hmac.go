// Package signing implements the request signature scheme the exchange
// expects on authenticated endpoints: HMAC-SHA256 over the exact query
// string being sent, keyed with the account secret, rendered as uppercase
// hex (two digits per byte, no separators).
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign computes the signature for payload with the given secret key.
// The payload must be the query string byte-for-byte as transmitted;
// reordering or re-encoding parameters after signing invalidates it.
func Sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// Verify reports whether signature matches Sign(secret, payload).
// Comparison is constant-time.
func Verify(secret, payload, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, payload)), []byte(strings.ToUpper(signature)))
}
