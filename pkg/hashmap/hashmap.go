// Package hashmap holds what the hash table variants share: the
// access interface, configuration and the ordered scans that work
// over any of them. The tables themselves live in the openaddr
// (double hashing, linear probing) and chained sub packages.
package hashmap

import "golang.org/x/exp/constraints"

// Iterator is an iterator function type. Returning false stops
// the range early.
type Iterator[K comparable, V any] func(key K, value V) bool

// Map is the access surface every table variant implements. None
// of the implementations are safe for concurrent use.
type Map[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Remove(key K)
	Len() int
	IsEmpty() bool
	Range(it Iterator[K, V])
}

// Min returns the entry with the smallest key, or false if m is empty
func Min[K constraints.Ordered, V any](m Map[K, V]) (K, V, bool) {
	return scanOrdered(m, func(a, b K) bool { return a < b })
}

// Max returns the entry with the largest key, or false if m is empty
func Max[K constraints.Ordered, V any](m Map[K, V]) (K, V, bool) {
	return scanOrdered(m, func(a, b K) bool { return a > b })
}

// scanOrdered ranges over the live entries only, so tombstones and
// empty slots can never win the comparison.
func scanOrdered[K constraints.Ordered, V any](m Map[K, V], better func(a, b K) bool) (K, V, bool) {
	var (
		key   K
		val   V
		found bool
	)
	m.Range(func(k K, v V) bool {
		if !found || better(k, key) {
			key, val, found = k, v, true
		}
		return true
	})
	return key, val, found
}
