package rng

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// SeedEnv is the environment variable a seed is read from.
const SeedEnv = "TRACKGEN_SEED"

// Seed is the 256-bit state a Rand is created from.
type Seed [32]byte

// Seed format: 64 hex digits, two 32-digit halves. Each half is read as a
// big-endian 128-bit integer and stored little-endian in its 16 bytes.
const (
	seedHexLen  = 64
	halfHexLen  = seedHexLen / 2
	halfByteLen = len(Seed{}) / 2
)

var (
	// ErrSeedLength is returned for seeds that are not 64 hex digits long.
	ErrSeedLength = errors.New("rng: seed must be 64 hex digits")
	// ErrSeedHex is returned for seeds containing non-hex characters.
	ErrSeedHex = errors.New("rng: seed is not valid hex")
)

// ParseSeed parses the textual seed format.
func ParseSeed(s string) (Seed, error) {
	var seed Seed

	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != seedHexLen {
		return seed, fmt.Errorf("%w, got %d", ErrSeedLength, len(s))
	}

	for half := 0; half < 2; half++ {
		be, err := hex.DecodeString(s[half*halfHexLen : (half+1)*halfHexLen])
		if err != nil {
			return seed, fmt.Errorf("%w: %v", ErrSeedHex, err)
		}
		base := half * halfByteLen
		for i, b := range be {
			seed[base+halfByteLen-1-i] = b
		}
	}
	return seed, nil
}

// String formats the seed so that ParseSeed(s.String()) == s.
func (s Seed) String() string {
	var be [32]byte
	for half := 0; half < 2; half++ {
		base := half * halfByteLen
		for i := 0; i < halfByteLen; i++ {
			be[base+i] = s[base+halfByteLen-1-i]
		}
	}
	return hex.EncodeToString(be[:])
}

// NewSeed draws a fresh seed from the operating system.
func NewSeed() Seed {
	var seed Seed
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(seed[:])
	return seed
}

// SeedFromEnv reads SeedEnv. When it is unset or blank a fresh seed is
// returned and fromEnv is false. A malformed value is an error.
func SeedFromEnv() (seed Seed, fromEnv bool, err error) {
	raw, ok := os.LookupEnv(SeedEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return NewSeed(), false, nil
	}
	seed, err = ParseSeed(raw)
	if err != nil {
		return seed, true, fmt.Errorf("%s: %w", SeedEnv, err)
	}
	return seed, true, nil
}

// Resolve picks the seed for a run: an explicit flag value wins over the
// environment, which wins over a fresh seed.
func Resolve(flagValue string) (Seed, error) {
	if strings.TrimSpace(flagValue) != "" {
		return ParseSeed(flagValue)
	}
	seed, _, err := SeedFromEnv()
	return seed, err
}
