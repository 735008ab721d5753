package openaddr

const (
	doubleHashParam = 47 // multiplier of the double hashing step function
	linearHashParam = 37 // multiplier of the linear probing start function
)

// probeFunc returns the start index and the fixed step of the probe
// sequence for hashkey in a table of the provided capacity. The
// sequence is start, start+step, start+2*step, ... mod capacity.
type probeFunc func(hashkey, capacity uint64) (start, step uint64)

// doubleHashProbe derives both the start index and the step from the
// hashkey. The step is forced odd, so for a power of two capacity it
// is coprime with the capacity and the sequence covers every slot.
func doubleHashProbe(hashkey, capacity uint64) (uint64, uint64) {
	start := hashkey % capacity
	step := (hashkey * doubleHashParam) % (capacity - 1)
	if step%2 == 0 {
		step++
	}
	return start, step
}

// linearProbe scans neighbouring slots one by one
func linearProbe(hashkey, capacity uint64) (uint64, uint64) {
	return (hashkey * linearHashParam) % capacity, 1
}
