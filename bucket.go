package sortedset

import "sort"

// bucket is a bounded, strictly increasing run of Items (spec.md §4.1). It
// knows nothing about its siblings or its position in the owning engine;
// locate, rank accounting, and splitting are the engine's job.
type bucket struct {
	items []Item
}

func newBucket(capacityHint int) *bucket {
	return &bucket{items: make([]Item, 0, capacityHint)}
}

func (b *bucket) len() int { return len(b.items) }

func (b *bucket) last() Item { return b.items[len(b.items)-1] }

// find returns (idx, true) if item is present at local index idx, or
// (idx, false) where idx is the position item would occupy to keep items
// strictly increasing.
func (b *bucket) find(item Item) (idx int, found bool) {
	n := len(b.items)
	pos := sort.Search(n, func(i int) bool {
		return Compare(b.items[i], item) != Less
	})
	if pos < n && Compare(b.items[pos], item) == Equal {
		return pos, true
	}
	return pos, false
}

// insert places item at its sorted position. It reports the local index
// and whether the item was newly inserted (false means it was already
// present and the bucket is unchanged). The caller (the engine) is
// responsible for checking the bucket's length against max_bucket_size and
// splitting afterward; insert itself never splits.
func (b *bucket) insert(item Item) (localIndex int, inserted bool) {
	pos, found := b.find(item)
	if found {
		return pos, false
	}
	b.items = append(b.items, Item{})
	copy(b.items[pos+1:], b.items[pos:])
	b.items[pos] = item
	return pos, true
}

// remove erases item if present, reporting its former local index.
func (b *bucket) remove(item Item) (localIndex int, removed bool) {
	pos, found := b.find(item)
	if !found {
		return 0, false
	}
	copy(b.items[pos:], b.items[pos+1:])
	b.items[len(b.items)-1] = Item{}
	b.items = b.items[:len(b.items)-1]
	return pos, true
}

// at returns the item at the given local index. The caller must ensure
// 0 <= localIndex < len(items).
func (b *bucket) at(localIndex int) Item { return b.items[localIndex] }

// split removes the upper half of b's items and returns them as a new
// bucket, leaving b holding the lower half. Both halves stay contiguous in
// sorted order, preserving S1.
func (b *bucket) split(capacityHint int) *bucket {
	mid := len(b.items) / 2
	right := newBucket(capacityHint)
	right.items = append(right.items, b.items[mid:]...)

	tail := make([]Item, mid)
	copy(tail, b.items[:mid])
	b.items = tail

	return right
}
