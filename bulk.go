package sortedset

import "sort"

// FromProperEnumerable builds a SortedSet from items that are already
// strictly increasing and duplicate-free (spec.md §4.2.5). It validates
// that precondition and returns ErrInvalidInput on violation, rather than
// the source's looser behavior of silently constructing a broken set (see
// SPEC_FULL.md's Open Questions). Construction is O(N): items are placed
// directly into buckets of maxBucketSize (or the package default if <= 0).
func FromProperEnumerable(items []Item, maxBucketSize int) (*SortedSet, error) {
	if maxBucketSize <= 0 {
		maxBucketSize = defaultMaxBucketSize
	}
	for i := 1; i < len(items); i++ {
		if Compare(items[i-1], items[i]) != Less {
			return nil, ErrInvalidInput
		}
	}
	for _, it := range items {
		if err := validate(it); err != nil {
			return nil, err
		}
	}

	s := &SortedSet{
		maxBucketSize:       maxBucketSize,
		initialItemCapacity: maxBucketSize,
		size:                len(items),
	}
	if len(items) == 0 {
		s.buckets = []*bucket{newBucket(maxBucketSize)}
		return s, nil
	}
	for start := 0; start < len(items); start += maxBucketSize {
		end := start + maxBucketSize
		if end > len(items) {
			end = len(items)
		}
		b := newBucket(maxBucketSize)
		b.items = append(b.items, items[start:end]...)
		s.buckets = append(s.buckets, b)
	}
	s.touch()
	return s, nil
}

// FromEnumerable builds a SortedSet from an arbitrary sequence: it sorts
// and deduplicates items externally (O(N log N)), then delegates to
// FromProperEnumerable.
func FromEnumerable(items []Item, maxBucketSize int) (*SortedSet, error) {
	for _, it := range items {
		if err := validate(it); err != nil {
			return nil, err
		}
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) == Less
	})

	deduped := sorted[:0]
	for i, it := range sorted {
		if i == 0 || Compare(deduped[len(deduped)-1], it) != Equal {
			deduped = append(deduped, it)
		}
	}

	return FromProperEnumerable(deduped, maxBucketSize)
}
