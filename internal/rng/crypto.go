package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand
// It is used to pick shuffle seeds so that two sessions never share a deck order by accident.
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: n must be > 0")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Fixed always returns the same value (modulo n); handy for deterministic tests
type Fixed int

// Intn returns the fixed value modulo n
func (f Fixed) Intn(n int) int {
	return int(f) % n
}
