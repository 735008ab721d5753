package chained

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/scottcagno/hashtable/pkg/hash"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"golang.org/x/exp/constraints"
)

const emptyMarker = "__"

// entry is a key value pair that is found in each bucket
type entry[K comparable, V any] struct {
	key K
	val V
}

// entryNode is a link in a bucket chain
type entryNode[K comparable, V any] struct {
	entry[K, V]
	hashkey uint64
	next    *entryNode[K, V]
}

// bucket represents a single slot in the HashMap table. Its chain
// keeps entries in insertion order.
type bucket[K comparable, V any] struct {
	head *entryNode[K, V]
	tail *entryNode[K, V]
}

// append adds a node at the end of the chain
func (b *bucket[K, V]) append(n *entryNode[K, V]) {
	n.next = nil
	if b.head == nil {
		b.head, b.tail = n, n
		return
	}
	b.tail.next = n
	b.tail = n
}

// insert updates key in place or appends a new entry, and returns the
// previous value and true when key was already present
func (b *bucket[K, V]) insert(hashkey uint64, key K, val V) (V, bool) {
	if n := b.search(hashkey, key); n != nil {
		old := n.val
		n.val = val
		return old, true
	}
	b.append(&entryNode[K, V]{
		entry: entry[K, V]{
			key: key,
			val: val,
		},
		hashkey: hashkey,
	})
	var zero V
	return zero, false
}

func (b *bucket[K, V]) search(hashkey uint64, key K) *entryNode[K, V] {
	current := b.head
	for current != nil {
		if current.hashkey == hashkey && current.key == key {
			return current
		}
		current = current.next
	}
	return nil
}

func (b *bucket[K, V]) scan(it hashmap.Iterator[K, V]) bool {
	current := b.head
	for current != nil {
		if !it(current.key, current.val) {
			return false
		}
		current = current.next
	}
	return true
}

func (b *bucket[K, V]) delete(hashkey uint64, key K) (V, bool) {
	var previous *entryNode[K, V]
	current := b.head
	for current != nil {
		if current.hashkey == hashkey && current.key == key {
			if previous == nil {
				b.head = current.next
			} else {
				previous.next = current.next
			}
			if b.tail == current {
				b.tail = previous
			}
			return current.val, true
		}
		previous, current = current, current.next
	}
	var zero V
	return zero, false
}

// HashMap represents an open hashing (separate chaining) hashtable
// implementation. It is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	hash    hash.Hasher[K]
	conf    *hashmap.Config
	expand  uint
	keys    uint
	buckets []bucket[K, V]
}

var _ hashmap.Map[string, int] = (*HashMap[string, int])(nil)

// NewHashMap returns an empty HashMap sized by conf (nil for the
// defaults) that hashes its keys with hash.Default.
func NewHashMap[K comparable, V any](conf *hashmap.Config) (*HashMap[K, V], error) {
	return NewHashMapWithHasher[K, V](conf, hash.Default[K]())
}

// NewHashMapWithHasher is NewHashMap with a caller supplied hasher
func NewHashMapWithHasher[K comparable, V any](conf *hashmap.Config, h hash.Hasher[K]) (*HashMap[K, V], error) {
	conf, err := hashmap.CheckConfig(conf)
	if err != nil {
		return nil, errors.Wrap(err, "chained: new hashmap")
	}
	if h == nil {
		h = hash.Default[K]()
	}
	return &HashMap[K, V]{
		hash:    h,
		conf:    conf,
		expand:  conf.ExpandAt(conf.StartCapacity),
		buckets: make([]bucket[K, V], conf.StartCapacity),
	}, nil
}

// NewIntHashMap returns a HashMap for integer keys where key k lives in
// bucket k mod capacity.
func NewIntHashMap[K constraints.Integer, V any](conf *hashmap.Config) (*HashMap[K, V], error) {
	return NewHashMapWithHasher[K, V](conf, hash.Identity[K]())
}

func (m *HashMap[K, V]) bucketFor(hashkey uint64) *bucket[K, V] {
	return &m.buckets[hashkey%uint64(len(m.buckets))]
}

// grow doubles the bucket count and moves every node, bucket by bucket
// and in chain order, to the end of its new chain
func (m *HashMap[K, V]) grow() {
	oldCount := len(m.buckets)
	newCount := uint64(oldCount) * 2
	buckets := make([]bucket[K, V], newCount)
	for i := range m.buckets {
		current := m.buckets[i].head
		for current != nil {
			next := current.next
			buckets[current.hashkey%newCount].append(current)
			current = next
		}
	}
	m.buckets, m.expand = buckets, m.conf.ExpandAt(uint(newCount))
	m.conf.Logger.Debugf("chained: grew from %d to %d buckets (%d keys)", oldCount, newCount, m.keys)
}

// insert inserts a key value entry and returns the previous value, or false
func (m *HashMap[K, V]) insert(key K, value V) (V, bool) {
	hashkey := m.hash.Hash(key)
	// check and see if we need to resize, but never for an update
	if m.keys+1 >= m.expand && m.bucketFor(hashkey).search(hashkey, key) == nil {
		m.grow()
	}
	val, ok := m.bucketFor(hashkey).insert(hashkey, key, value)
	if !ok { // means not updated, aka a new one was inserted
		m.keys++
	}
	return val, ok
}

// Put inserts or updates the value for key
func (m *HashMap[K, V]) Put(key K, value V) {
	m.insert(key, value)
}

// Set inserts or updates the value for key and returns the previous
// value, or false if the key is new
func (m *HashMap[K, V]) Set(key K, value V) (V, bool) {
	return m.insert(key, value)
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	hashkey := m.hash.Hash(key)
	if n := m.bucketFor(hashkey).search(hashkey, key); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

func (m *HashMap[K, V]) Has(key K) bool {
	hashkey := m.hash.Hash(key)
	return m.bucketFor(hashkey).search(hashkey, key) != nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (m *HashMap[K, V]) Remove(key K) {
	m.Del(key)
}

// Del removes a value for a given key and returns the deleted value, or false
func (m *HashMap[K, V]) Del(key K) (V, bool) {
	hashkey := m.hash.Hash(key)
	val, ok := m.bucketFor(hashkey).delete(hashkey, key)
	if ok {
		m.keys--
	}
	return val, ok
}

// Range takes an Iterator and ranges the HashMap bucket by bucket, in
// chain order, as long as the iterator function continues to be true.
// Range is not safe to perform an insert or remove operation while ranging!
func (m *HashMap[K, V]) Range(it hashmap.Iterator[K, V]) {
	for i := range m.buckets {
		if !m.buckets[i].scan(it) {
			return
		}
	}
}

// PercentFull returns the current load factor of the HashMap
func (m *HashMap[K, V]) PercentFull() float64 {
	return float64(m.keys) / float64(len(m.buckets))
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return int(m.keys)
}

func (m *HashMap[K, V]) IsEmpty() bool {
	return m.keys == 0
}

// Cap returns the current bucket count
func (m *HashMap[K, V]) Cap() int {
	return len(m.buckets)
}

// Render returns "__" for each empty bucket and otherwise the values
// of the bucket's chain, in bucket order.
func (m *HashMap[K, V]) Render() []string {
	markers := make([]string, 0, len(m.buckets))
	for i := range m.buckets {
		if m.buckets[i].head == nil {
			markers = append(markers, emptyMarker)
			continue
		}
		m.buckets[i].scan(func(_ K, val V) bool {
			markers = append(markers, fmt.Sprint(val))
			return true
		})
	}
	return markers
}

func (m *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Hash table: [ ")
	for _, mk := range m.Render() {
		sb.WriteString(mk)
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}
