package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// SeedSource produces a seed for one generation's random source.
type SeedSource func() (int64, error)

// CryptoSeed generates a random seed using crypto/rand.
func CryptoSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// FixedSeed returns a source that always yields seed. Used for reproducible runs.
func FixedSeed(seed int64) SeedSource {
	return func() (int64, error) { return seed, nil }
}
