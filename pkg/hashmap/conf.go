package hashmap

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/scottcagno/hashtable/pkg/logger"
)

const (
	DefaultStartCapacity = 8
	DefaultLoadFactor    = 0.75

	minStartCapacity = 2
	minLoadFactor    = 0.5 // load factor must be at least 50%
	maxLoadFactor    = 1.0 // exclusive
)

// Config holds configuration settings for a table instance
type Config struct {
	StartCapacity uint           // initial slot (or bucket) count, a power of two
	LoadFactor    float64        // growth threshold as a fraction of capacity
	Logger        *logger.Logger // logger
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("StartCapacity: ")
	sb.WriteString(strconv.FormatUint(uint64(conf.StartCapacity), 10))
	sb.WriteString("\n")
	sb.WriteString("LoadFactor: ")
	sb.WriteString(strconv.FormatFloat(conf.LoadFactor, 'f', -1, 64))
	return sb.String()
}

// ExpandAt returns the entry count at which a table of the provided
// capacity has to grow. A put grows the table first whenever the
// insert would bring the count up to this value.
func (conf *Config) ExpandAt(capacity uint) uint {
	return uint(float64(capacity) * conf.LoadFactor)
}

// CheckConfig fills in missing options on a copy of conf and validates
// the result. A nil conf yields the defaults. Capacities must stay
// powers of two: the double hashing step is forced odd, which only
// guarantees a full probe cycle when the capacity is a power of two.
func CheckConfig(conf *Config) (*Config, error) {
	checked := Config{
		StartCapacity: DefaultStartCapacity,
		LoadFactor:    DefaultLoadFactor,
		Logger:        logger.DefaultLogger,
	}
	if conf != nil {
		if conf.StartCapacity != 0 {
			checked.StartCapacity = conf.StartCapacity
		}
		if conf.LoadFactor != 0 {
			checked.LoadFactor = conf.LoadFactor
		}
		if conf.Logger != nil {
			checked.Logger = conf.Logger
		}
	}
	if checked.StartCapacity < minStartCapacity || bits.OnesCount(checked.StartCapacity) != 1 {
		return nil, errors.Wrapf(ErrCapacityNotPowerOfTwo, "got %d", checked.StartCapacity)
	}
	// written this way round so NaN is rejected too
	if !(checked.LoadFactor >= minLoadFactor && checked.LoadFactor < maxLoadFactor) {
		return nil, errors.Wrapf(ErrInvalidLoadFactor, "got %v", checked.LoadFactor)
	}
	return &checked, nil
}
