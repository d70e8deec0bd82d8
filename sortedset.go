package sortedset

// AddResult reports the outcome of Add/IndexAdd.
type AddResult uint8

const (
	Added AddResult = iota
	Duplicate
)

// RemoveResult reports the outcome of Remove/IndexRemove.
type RemoveResult uint8

const (
	Removed RemoveResult = iota
	Absent
)

const (
	defaultInitialItemCapacity = 500
	defaultMaxBucketSize       = 500
)

// SortedSet is the bucketed sorted-set engine (spec.md §4.2): an ordered
// sequence of buckets whose concatenation is always the full sorted,
// deduplicated item sequence. It is not safe for concurrent use; wrap it
// in a Concurrent (concurrent.go) to share one instance across goroutines.
type SortedSet struct {
	buckets             []*bucket
	maxBucketSize       int
	initialItemCapacity int
	size                int
	lastMutationNanos   int64
}

// New creates an empty SortedSet. Defaults: initial_item_capacity=500,
// max_bucket_size=500 (spec.md §6), overridable with Option values. Returns
// ErrInvalidInput if a capacity option resolves to a non-positive value.
func New(opts ...Option) (*SortedSet, error) {
	cfg := config{
		initialItemCapacity: defaultInitialItemCapacity,
		maxBucketSize:       defaultMaxBucketSize,
		lockPolicy:          Blocking,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.initialItemCapacity < 1 || cfg.maxBucketSize < 1 {
		return nil, ErrInvalidInput
	}
	s := &SortedSet{
		maxBucketSize:       cfg.maxBucketSize,
		initialItemCapacity: cfg.initialItemCapacity,
	}
	s.buckets = []*bucket{newBucket(capacityHint(cfg.initialItemCapacity, cfg.maxBucketSize))}
	return s, nil
}

func capacityHint(initial, max int) int {
	if initial < max {
		return initial
	}
	return max
}

// Size returns the total item count.
func (s *SortedSet) Size() int { return s.size }

// MaxBucketSize returns the configured per-bucket capacity.
func (s *SortedSet) MaxBucketSize() int { return s.maxBucketSize }

// locate scans buckets in order and returns the index of the first bucket
// whose last element is >= item, or len(buckets)-1 (the tail bucket) if no
// such bucket exists (spec.md §4.2.1). It also returns the prefix rank:
// the number of items held in all buckets before the returned one.
func (s *SortedSet) locate(item Item) (idx int, prefixRank int) {
	prefix := 0
	last := len(s.buckets) - 1
	for i, b := range s.buckets {
		if i == last || (b.len() > 0 && Compare(b.last(), item) != Less) {
			return i, prefix
		}
		prefix += b.len()
	}
	return last, prefix
}

// Add inserts item, splitting its owning bucket if the insertion pushes it
// past max_bucket_size (spec.md §4.2.2).
func (s *SortedSet) Add(item Item) AddResult {
	_, result := s.IndexAdd(item)
	return result
}

// IndexAdd inserts item and reports its global index: the position it now
// occupies (Added), or the position of the existing equal item
// (Duplicate).
func (s *SortedSet) IndexAdd(item Item) (index int, result AddResult) {
	i, prefix := s.locate(item)
	b := s.buckets[i]
	local, inserted := b.insert(item)
	if !inserted {
		return prefix + local, Duplicate
	}
	s.size++
	s.touch()
	if b.len() > s.maxBucketSize {
		s.splitAt(i)
	}
	return prefix + local, Added
}

// splitAt replaces buckets[i] with two buckets, each holding at most
// max_bucket_size items, preserving S1. A single insertion overflows a
// bucket by at most one item, so a single split always suffices; there is
// no cascading.
func (s *SortedSet) splitAt(i int) {
	b := s.buckets[i]
	right := b.split(capacityHint(s.initialItemCapacity, s.maxBucketSize))
	s.buckets = append(s.buckets, nil)
	copy(s.buckets[i+2:], s.buckets[i+1:])
	s.buckets[i+1] = right
}

// Remove deletes item if present (spec.md §4.2.3).
func (s *SortedSet) Remove(item Item) RemoveResult {
	_, result := s.IndexRemove(item)
	return result
}

// IndexRemove deletes item and reports the global index it previously
// occupied (Removed), or Absent if it was not a member.
func (s *SortedSet) IndexRemove(item Item) (index int, result RemoveResult) {
	i, prefix := s.locate(item)
	b := s.buckets[i]
	local, removed := b.remove(item)
	if !removed {
		return 0, Absent
	}
	s.size--
	s.touch()
	if b.len() == 0 && len(s.buckets) > 1 {
		s.buckets = append(s.buckets[:i], s.buckets[i+1:]...)
	}
	return prefix + local, Removed
}

// At returns the item at the given global index. If index is out of
// bounds, it returns def[0] if supplied, otherwise ErrOutOfBounds.
func (s *SortedSet) At(index int, def ...Item) (Item, error) {
	if index < 0 || index >= s.size {
		if len(def) > 0 {
			return def[0], nil
		}
		return Item{}, ErrOutOfBounds
	}
	residual := index
	for _, b := range s.buckets {
		if residual < b.len() {
			return b.at(residual), nil
		}
		residual -= b.len()
	}
	return Item{}, ErrOutOfBounds
}

// Slice returns up to count items starting at the global index start, in
// order. If start >= Size(), it returns an empty sequence. If
// start+count exceeds Size(), the result is clamped.
func (s *SortedSet) Slice(start, count int) []Item {
	if start < 0 {
		start = 0
	}
	if count <= 0 || start >= s.size {
		return []Item{}
	}
	remaining := count
	if start+remaining > s.size {
		remaining = s.size - start
	}
	out := make([]Item, 0, remaining)

	residual := start
	for _, b := range s.buckets {
		if remaining == 0 {
			break
		}
		if residual >= b.len() {
			residual -= b.len()
			continue
		}
		for i := residual; i < b.len() && remaining > 0; i++ {
			out = append(out, b.at(i))
			remaining--
		}
		residual = 0
	}
	return out
}

// FindIndex returns the global index of item, or ErrNotPresent.
func (s *SortedSet) FindIndex(item Item) (int, error) {
	i, prefix := s.locate(item)
	local, found := s.buckets[i].find(item)
	if !found {
		return 0, ErrNotPresent
	}
	return prefix + local, nil
}

// ToList returns the full sorted sequence as a freshly allocated slice.
func (s *SortedSet) ToList() []Item {
	out := make([]Item, 0, s.size)
	for _, b := range s.buckets {
		out = append(out, b.items...)
	}
	return out
}

// Each walks the full sorted sequence, stopping early if f returns false.
// Unlike the hash-ordered, possibly-overlapping Range this engine's
// ancestor (templexxx/u64.Set.Range) provides under concurrent mutation,
// Each observes one stable, in-order pass: SortedSet has no internal
// concurrency (spec.md §4.3), so there is nothing to race with mid-walk.
func (s *SortedSet) Each(f func(Item) bool) {
	for _, b := range s.buckets {
		for _, it := range b.items {
			if !f(it) {
				return
			}
		}
	}
}

// Clone returns a structurally independent copy: a new bucket sequence and
// new per-bucket item slices. Items themselves are immutable values and so
// are shared, not deep-copied.
func (s *SortedSet) Clone() *SortedSet {
	clone := &SortedSet{
		maxBucketSize:       s.maxBucketSize,
		initialItemCapacity: s.initialItemCapacity,
		size:                s.size,
		lastMutationNanos:   s.lastMutationNanos,
		buckets:             make([]*bucket, len(s.buckets)),
	}
	for i, b := range s.buckets {
		items := make([]Item, len(b.items))
		copy(items, b.items)
		clone.buckets[i] = &bucket{items: items}
	}
	return clone
}

func (s *SortedSet) touch() {
	s.lastMutationNanos = nowNanos()
}
