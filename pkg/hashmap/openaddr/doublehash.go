package openaddr

import (
	"github.com/scottcagno/hashtable/pkg/hash"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"golang.org/x/exp/constraints"
)

// DoubleHash is an open addressing hash table that resolves collisions
// with double hashing: every key probes with its own fixed odd step.
// It is not safe for concurrent use.
type DoubleHash[K comparable, V any] struct {
	table[K, V]
}

var _ hashmap.Map[string, int] = (*DoubleHash[string, int])(nil)

// NewDoubleHash returns an empty table sized by conf (nil for the
// defaults) that hashes its keys with hash.Default.
func NewDoubleHash[K comparable, V any](conf *hashmap.Config) (*DoubleHash[K, V], error) {
	return NewDoubleHashWithHasher[K, V](conf, hash.Default[K]())
}

// NewDoubleHashWithHasher is NewDoubleHash with a caller supplied hasher
func NewDoubleHashWithHasher[K comparable, V any](conf *hashmap.Config, h hash.Hasher[K]) (*DoubleHash[K, V], error) {
	m := new(DoubleHash[K, V])
	if err := m.init("doublehash", conf, h, doubleHashProbe); err != nil {
		return nil, err
	}
	return m, nil
}

// NewIntDoubleHash returns a table for integer keys where each key is its
// own hash, so key k starts probing at slot k mod capacity.
func NewIntDoubleHash[K constraints.Integer, V any](conf *hashmap.Config) (*DoubleHash[K, V], error) {
	return NewDoubleHashWithHasher[K, V](conf, hash.Identity[K]())
}
