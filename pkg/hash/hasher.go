// Package hash provides the key hashers used by the hash tables. A
// hasher maps a key to a uint64; the tables reduce it to a slot index.
package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
	"golang.org/x/exp/constraints"
)

// Hasher is what a table needs from its keys beyond equality.
// Implementations must be deterministic for the life of a table,
// since growth re-probes every key with the same hasher.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// HasherFunc adapts an ordinary function to a Hasher.
type HasherFunc[K comparable] func(key K) uint64

func (fn HasherFunc[K]) Hash(key K) uint64 {
	return fn(key)
}

// Default returns a seeded hasher for any comparable key type. Each
// call picks a new random seed, so slot layouts differ between tables.
func Default[K comparable]() Hasher[K] {
	return maphash.NewHasher[K]()
}

// Identity returns a hasher that maps an integer key onto itself,
// so the start slot of key k in a table of capacity c is k mod c.
// Negative keys wrap to their two's complement value.
func Identity[K constraints.Integer]() Hasher[K] {
	return HasherFunc[K](func(key K) uint64 {
		return uint64(key)
	})
}

// String returns an unseeded xxhash64 hasher for string keys. Its
// output is stable across runs.
func String() Hasher[string] {
	return HasherFunc[string](xxhash.Sum64String)
}

// Bytes hashes a byte slice with xxhash64; it is here for callers that
// key a table by a fixed-size array or a string conversion of bytes.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
