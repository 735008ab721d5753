package openaddr

import (
	"github.com/scottcagno/hashtable/pkg/hash"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"golang.org/x/exp/constraints"
)

// LinearProbe is an open addressing hash table that resolves
// collisions by scanning forward one slot at a time.
type LinearProbe[K comparable, V any] struct {
	table[K, V]
}

var _ hashmap.Map[string, int] = (*LinearProbe[string, int])(nil)

func NewLinearProbe[K comparable, V any](conf *hashmap.Config) (*LinearProbe[K, V], error) {
	return NewLinearProbeWithHasher[K, V](conf, hash.Default[K]())
}

func NewLinearProbeWithHasher[K comparable, V any](conf *hashmap.Config, h hash.Hasher[K]) (*LinearProbe[K, V], error) {
	m := new(LinearProbe[K, V])
	if err := m.init("linearprobe", conf, h, linearProbe); err != nil {
		return nil, err
	}
	return m, nil
}

// NewIntLinearProbe returns a table for integer keys that starts probing
// key k at slot (k * 37) mod capacity.
func NewIntLinearProbe[K constraints.Integer, V any](conf *hashmap.Config) (*LinearProbe[K, V], error) {
	return NewLinearProbeWithHasher[K, V](conf, hash.Identity[K]())
}
