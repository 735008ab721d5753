package openaddr

import "fmt"

// slotState tags what a slot currently holds
type slotState uint8

const (
	slotEmpty     slotState = iota // never used since the last growth
	slotTombstone                  // held an entry that was deleted
	slotOccupied                   // holds a live entry
)

const (
	emptyMarker     = "__"
	tombstoneMarker = "D"
)

func (s slotState) String() string {
	switch s {
	case slotEmpty:
		return "empty"
	case slotTombstone:
		return "tombstone"
	case slotOccupied:
		return "occupied"
	default:
		return fmt.Sprintf("slotState(%d)", uint8(s))
	}
}

// slot represents a single position in the table. The key, value and
// hashkey are only meaningful when the state is slotOccupied.
type slot[K comparable, V any] struct {
	state   slotState
	hashkey uint64
	key     K
	val     V
}

// checkHashAndKey checks if this slot holds a live entry matching the
// specified hashkey and key
func (s *slot[K, V]) checkHashAndKey(hashkey uint64, key K) bool {
	return s.state == slotOccupied && s.hashkey == hashkey && s.key == key
}

// marker renders the slot for diagnostics
func (s *slot[K, V]) marker() string {
	switch s.state {
	case slotOccupied:
		return fmt.Sprint(s.val)
	case slotTombstone:
		return tombstoneMarker
	default:
		return emptyMarker
	}
}
