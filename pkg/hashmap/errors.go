package hashmap

import "github.com/cockroachdb/errors"

var (
	ErrCapacityNotPowerOfTwo = errors.New("hashmap: start capacity must be a power of two >= 2")
	ErrInvalidLoadFactor     = errors.New("hashmap: load factor must be in [0.5, 1)")
)
