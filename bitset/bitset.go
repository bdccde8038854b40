package bitset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitset is a fixed-capacity membership set over small integer ids,
// backed by a Roaring Bitmap. It is mutated only while a topology is
// being built; after publication it is treated as read-only and is
// safe for concurrent readers.
type Bitset struct {
	bitmap   *roaring.Bitmap
	capacity int
}

// New creates an empty Bitset able to hold ids in [0, capacity).
func New(capacity int) *Bitset {
	return &Bitset{
		bitmap:   roaring.New(),
		capacity: capacity,
	}
}

// Set marks id as a member. Ids at or beyond the capacity indicate a
// bug in the caller, not bad runtime input.
func (b *Bitset) Set(i int) {
	if i < 0 || i >= b.capacity {
		panic(fmt.Sprintf("bitset: id %d out of range [0,%d)", i, b.capacity))
	}
	b.bitmap.Add(uint32(i))
}

// Contains reports whether id is a member.
func (b *Bitset) Contains(i int) bool {
	if b == nil || i < 0 || i >= b.capacity {
		return false
	}
	return b.bitmap.Contains(uint32(i))
}

// Count returns the number of set ids.
func (b *Bitset) Count() int {
	if b == nil {
		return 0
	}
	return int(b.bitmap.GetCardinality())
}

// Capacity returns the exclusive upper bound on member ids.
func (b *Bitset) Capacity() int {
	if b == nil {
		return 0
	}
	return b.capacity
}

// Range calls f for every id in [0, capacity) in ascending order,
// with present reporting membership. Iteration stops early if f
// returns false.
func (b *Bitset) Range(f func(i int, present bool) bool) {
	if b == nil {
		return
	}
	for i := 0; i < b.capacity; i++ {
		if !f(i, b.bitmap.Contains(uint32(i))) {
			return
		}
	}
}

// ToArray returns the member ids as a sorted slice.
func (b *Bitset) ToArray() []uint32 {
	if b == nil {
		return nil
	}
	return b.bitmap.ToArray()
}
