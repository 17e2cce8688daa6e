package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns a 40-character hex API token. The token is the
// long-lived bearer credential issued once at registration, so it must
// be unguessable.
func GenerateToken() string {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on a healthy system
	}
	return hex.EncodeToString(buf)
}
