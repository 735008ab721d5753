package openaddr

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/scottcagno/hashtable/pkg/hash"
	"github.com/scottcagno/hashtable/pkg/hashmap"
)

// table is the open addressing core shared by DoubleHash and
// LinearProbe. Only the probe function differs between the two.
type table[K comparable, V any] struct {
	name   string
	hash   hash.Hasher[K]
	probe  probeFunc
	conf   *hashmap.Config
	expand uint // grow before the insert that would reach this count
	keys   uint // occupied slots
	tombs  uint // tombstone slots
	slots  []slot[K, V]
}

func (t *table[K, V]) init(name string, conf *hashmap.Config, h hash.Hasher[K], probe probeFunc) error {
	conf, err := hashmap.CheckConfig(conf)
	if err != nil {
		return errors.Wrapf(err, "openaddr: new %s", name)
	}
	if h == nil {
		h = hash.Default[K]()
	}
	*t = table[K, V]{
		name:   name,
		hash:   h,
		probe:  probe,
		conf:   conf,
		expand: conf.ExpandAt(conf.StartCapacity),
		slots:  make([]slot[K, V], conf.StartCapacity),
	}
	return nil
}

// lookup returns the index of the slot holding key, or false if none
// could be found
func (t *table[K, V]) lookup(hashkey uint64, key K) (uint64, bool) {
	capacity := uint64(len(t.slots))
	i, step := t.probe(hashkey, capacity)
	// at most one full cycle; a table without empty slots would
	// otherwise spin forever on a missing key
	for n := uint64(0); n < capacity; n++ {
		switch {
		case t.slots[i].state == slotEmpty:
			return 0, false
		case t.slots[i].checkHashAndKey(hashkey, key):
			return i, true
		}
		// tombstone or another key, keep on probing
		i = (i + step) % capacity
	}
	return 0, false
}

// insert updates key in place when present and otherwise claims the
// first tombstone passed, or the empty slot that ended the probe
func (t *table[K, V]) insert(key K, val V) (V, bool) {
	hashkey := t.hash.Hash(key)
	// the growth check has to come before the probe loop. At the
	// threshold an update of an existing key must not grow the table,
	// so only a new key triggers the resize.
	if t.keys+1 >= t.expand {
		if i, ok := t.lookup(hashkey, key); ok {
			old := t.slots[i].val
			t.slots[i].val = val
			return old, true
		}
		t.grow()
	}
	capacity := uint64(len(t.slots))
	i, step := t.probe(hashkey, capacity)
	var (
		free    uint64
		hasFree bool
	)
probe:
	for n := uint64(0); n < capacity; n++ {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			if !hasFree {
				free, hasFree = i, true
			}
			break probe
		case slotTombstone:
			if !hasFree {
				free, hasFree = i, true
			}
		case slotOccupied:
			if s.checkHashAndKey(hashkey, key) {
				old := s.val
				s.val = val
				return old, true
			}
		}
		i = (i + step) % capacity
	}
	if !hasFree {
		panic(errors.AssertionFailedf(
			"openaddr: %s probe for new key covered all %d slots without a free one (%d keys, %d tombstones)",
			t.name, capacity, t.keys, t.tombs))
	}
	if t.slots[free].state == slotTombstone {
		t.tombs--
	}
	t.slots[free] = slot[K, V]{
		state:   slotOccupied,
		hashkey: hashkey,
		key:     key,
		val:     val,
	}
	t.keys++
	var zero V
	return zero, false
}

// grow doubles the slot count and re-probes every live entry into the
// new slots. Tombstones are not carried over.
func (t *table[K, V]) grow() {
	oldCap := uint64(len(t.slots))
	newCap := oldCap * 2
	slots := make([]slot[K, V], newCap)
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		place(slots, t.probe, t.slots[i])
	}
	dropped := t.tombs
	t.slots, t.expand, t.tombs = slots, t.conf.ExpandAt(uint(newCap)), 0
	t.conf.Logger.Debugf("%s: grew from %d to %d slots (%d keys, %d tombstones dropped)",
		t.name, oldCap, newCap, t.keys, dropped)
}

// place puts a live entry into the first empty slot of its probe
// sequence. Growth never meets a duplicate key, so there is no
// update path here.
func place[K comparable, V any](slots []slot[K, V], probe probeFunc, s slot[K, V]) {
	capacity := uint64(len(slots))
	i, step := probe(s.hashkey, capacity)
	for n := uint64(0); n < capacity; n++ {
		if slots[i].state == slotEmpty {
			slots[i] = s
			return
		}
		i = (i + step) % capacity
	}
	panic(errors.AssertionFailedf("openaddr: no empty slot for rehashed key among %d slots", capacity))
}

// delete turns the slot holding key into a tombstone
func (t *table[K, V]) delete(key K) (V, bool) {
	i, ok := t.lookup(t.hash.Hash(key), key)
	if !ok {
		var zero V
		return zero, false
	}
	old := t.slots[i].val
	// drop the key and value so they can be collected
	t.slots[i] = slot[K, V]{state: slotTombstone}
	t.keys--
	t.tombs++
	return old, true
}

// Put inserts or updates the value for key
func (t *table[K, V]) Put(key K, value V) {
	t.insert(key, value)
}

// Set inserts or updates the value for key and returns the previous
// value, or false if the key is new
func (t *table[K, V]) Set(key K, value V) (V, bool) {
	return t.insert(key, value)
}

// Get returns a value for a given key, or returns false if none could be found
func (t *table[K, V]) Get(key K) (V, bool) {
	i, ok := t.lookup(t.hash.Hash(key), key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.slots[i].val, true
}

// Has reports whether key is present
func (t *table[K, V]) Has(key K) bool {
	_, ok := t.lookup(t.hash.Hash(key), key)
	return ok
}

// Remove deletes key. Removing an absent key is a no-op.
func (t *table[K, V]) Remove(key K) {
	t.delete(key)
}

// Del removes a value for a given key and returns the deleted value, or false
func (t *table[K, V]) Del(key K) (V, bool) {
	return t.delete(key)
}

// Range takes an Iterator and ranges the occupied slots in slot order
// for as long as the iterator returns true. Range is not safe to
// perform an insert or remove operation while ranging!
func (t *table[K, V]) Range(it hashmap.Iterator[K, V]) {
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		if !it(t.slots[i].key, t.slots[i].val) {
			return
		}
	}
}

// Len returns the number of entries currently in the table
func (t *table[K, V]) Len() int {
	return int(t.keys)
}

func (t *table[K, V]) IsEmpty() bool {
	return t.keys == 0
}

// Cap returns the current slot count
func (t *table[K, V]) Cap() int {
	return len(t.slots)
}

// Tombstones returns the number of deleted slots not yet reclaimed
func (t *table[K, V]) Tombstones() int {
	return int(t.tombs)
}

// PercentFull returns the current load factor of the table
func (t *table[K, V]) PercentFull() float64 {
	return float64(t.keys) / float64(len(t.slots))
}

// Render returns one marker per slot in index order: the value of an
// occupied slot, "__" for an empty one and "D" for a tombstone.
func (t *table[K, V]) Render() []string {
	markers := make([]string, len(t.slots))
	for i := range t.slots {
		markers[i] = t.slots[i].marker()
	}
	return markers
}

func (t *table[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Hash table: [ ")
	for i := range t.slots {
		sb.WriteString(t.slots[i].marker())
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}
