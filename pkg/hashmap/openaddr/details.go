/*
	Package openaddr implements closed hashing (open addressing) tables. Two
	collision resolution strategies share one table core and differ only in
	how they derive the probe sequence from a key's hash:

	01) DoubleHash: start = h mod c, step = (h * 47) mod (c - 1), bumped to
	    the next odd number when even. An odd step is coprime with any power
	    of two capacity, so the sequence visits every slot once before it
	    repeats. This is why capacities are always powers of two.
	02) LinearProbe: start = (h * 37) mod c, step = 1.

	The basic principal is:
	-----------------------
	1) Each slot is empty, a tombstone, or occupied by a key/value pair
	2) Lookups and deletes follow the probe sequence until they find the key
	   or an empty slot. A tombstone never ends a search; a key inserted
	   before a delete may live further along the same sequence
	3) Deleting turns an occupied slot into a tombstone, never back to empty
	4) Inserting remembers the first tombstone it passes and keeps probing
	   until it proves the key is absent (an empty slot), then claims that
	   tombstone or the empty slot. Claiming earlier could duplicate a key
	5) Before probing, an insert that would bring the entry count up to
	   capacity * load factor doubles the table. Growth re-probes every live
	   entry into the new slots and drops all tombstones
	6) Every probe loop stops after one full cycle (capacity steps). A
	   lookup that wraps around reports a miss; tombstones can use up every
	   empty slot while the entry count stays under the threshold
	More information can be found here:
	01) https://en.wikipedia.org/wiki/Double_hashing
	02) https://en.wikipedia.org/wiki/Linear_probing
	03) https://en.wikipedia.org/wiki/Lazy_deletion
*/
package openaddr
