package store

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// idAlphabet matches the persisted identifier format: 12 characters drawn
// from uppercase, lowercase, and digits.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// idLength is the length of trace and reflection identifiers.
const idLength = 12

// NewID returns a random 12-character alphanumeric identifier. No
// collision detection is performed; at Haven's scale the space is ample.
func NewID() string {
	max := big.NewInt(int64(len(idAlphabet)))
	out := make([]byte, idLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		out[i] = idAlphabet[n.Int64()]
	}
	return string(out)
}

// ContentID derives a stable 12-character identifier from the given parts.
// Seed rows use it so that re-running the seeder upserts the same rows
// instead of inserting duplicates.
func ContentID(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:idLength]
}
