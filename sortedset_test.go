package sortedset

import "testing"

func mustNew(t *testing.T, opts ...Option) *SortedSet {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// Scenario 1 (spec.md §8): max_bucket_size=3, insert 1,2,3,4 in order.
func TestScenarioSplitAfterFourthInsert(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(3))
	for _, v := range []int64{1, 2, 3, 4} {
		s.Add(Int(v))
	}
	if s.Size() != 4 {
		t.Fatalf("size = %d, want 4", s.Size())
	}
	if len(s.buckets) != 2 || s.buckets[0].len() != 2 || s.buckets[1].len() != 2 {
		t.Fatalf("expected two buckets of 2, got %d buckets", len(s.buckets))
	}
	got, err := s.At(2)
	if err != nil || got.Int64() != 3 {
		t.Fatalf("at(2) = (%v, %v), want (3, nil)", got, err)
	}
	idx, err := s.FindIndex(Int(3))
	if err != nil || idx != 2 {
		t.Fatalf("find_index(3) = (%d, %v), want (2, nil)", idx, err)
	}
}

// IndexAdd must report the correct global index for an item that becomes
// the new overall maximum, even once that push crosses a bucket boundary
// (the leaderboard-append workload spec.md is written for). locate's
// prefix accounting must exclude the target bucket's own length whether it
// is selected by matching "last >= item" or by falling through to the
// tail bucket.
func TestIndexAddAscendingAcrossBucketBoundary(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(3))

	index, result := s.IndexAdd(Int(1))
	if result != Added || index != 0 {
		t.Fatalf("index_add(1) = (%d, %v), want (0, Added)", index, result)
	}
	index, result = s.IndexAdd(Int(2))
	if result != Added || index != 1 {
		t.Fatalf("index_add(2) = (%d, %v), want (1, Added)", index, result)
	}
	index, result = s.IndexAdd(Int(3))
	if result != Added || index != 2 {
		t.Fatalf("index_add(3) = (%d, %v), want (2, Added)", index, result)
	}
	// This insertion overflows bucket [1,2,3] and splits it into [1,2] and
	// [3,4]; 4 must still be reported at global index 3, not 6.
	index, result = s.IndexAdd(Int(4))
	if result != Added || index != 3 {
		t.Fatalf("index_add(4) = (%d, %v), want (3, Added)", index, result)
	}
}

// Scenario 2 (spec.md §8): max_bucket_size=500, insert 100,50,75.
func TestScenarioSingleBucketDuplicate(t *testing.T) {
	s := mustNew(t)
	s.Add(Int(100))
	s.Add(Int(50))
	s.Add(Int(75))
	if len(s.buckets) != 1 {
		t.Fatalf("expected a single bucket, got %d", len(s.buckets))
	}
	index, result := s.IndexAdd(Int(75))
	if result != Duplicate || index != 1 {
		t.Fatalf("index_add(75) = (%d, %v), want (1, Duplicate)", index, result)
	}
}

// Scenario 3 (spec.md §8): from proper enumerable 1..7, max_bucket_size=3.
func TestScenarioFromProperEnumerable(t *testing.T) {
	items := make([]Item, 7)
	for i := range items {
		items[i] = Int(int64(i + 1))
	}
	s, err := FromProperEnumerable(items, 3)
	if err != nil {
		t.Fatalf("FromProperEnumerable: %v", err)
	}
	wantLens := []int{3, 3, 1}
	if len(s.buckets) != len(wantLens) {
		t.Fatalf("got %d buckets, want %d", len(s.buckets), len(wantLens))
	}
	for i, w := range wantLens {
		if s.buckets[i].len() != w {
			t.Fatalf("bucket %d len = %d, want %d", i, s.buckets[i].len(), w)
		}
	}
	list := s.ToList()
	for i, it := range list {
		if it.Int64() != items[i].Int64() {
			t.Fatalf("to_list()[%d] = %d, want %d", i, it.Int64(), items[i].Int64())
		}
	}
}

// Scenario 4 (spec.md §8): from_enumerable([5,2,3,2,1,4]).
func TestScenarioFromEnumerableDedupsAndSorts(t *testing.T) {
	raw := []Item{Int(5), Int(2), Int(3), Int(2), Int(1), Int(4)}
	s, err := FromEnumerable(raw, 0)
	if err != nil {
		t.Fatalf("FromEnumerable: %v", err)
	}
	if s.Size() != 5 {
		t.Fatalf("size = %d, want 5", s.Size())
	}
	want := []int64{1, 2, 3, 4, 5}
	for i, w := range want {
		if s.ToList()[i].Int64() != w {
			t.Fatalf("to_list()[%d] = %d, want %d", i, s.ToList()[i].Int64(), w)
		}
	}
}

// Scenario 5 (spec.md §8): index_remove of the first element of a
// non-first bucket reports the correct prefix-adjusted global index.
func TestScenarioIndexRemoveAcrossBuckets(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(2))
	for _, v := range []int64{1, 2, 3, 4, 5} {
		s.Add(Int(v))
	}
	// buckets: [1] [2] [3] [4,5] -- item 3 is the first element of bucket 2.
	idx, result := s.IndexRemove(Int(3))
	if result != Removed || idx != 2 {
		t.Fatalf("index_remove(3) = (%d, %v), want (2, Removed)", idx, result)
	}
}

// Scenario 6 (spec.md §8): a rejected item kind is refused at the FromAny
// boundary, so it never becomes an Item that could reach a set.
func TestScenarioUnsupportedTypeRejected(t *testing.T) {
	_, err := FromAny(3.14)
	if err == nil {
		t.Fatal("expected ErrUnsupportedType")
	}
}

func TestInvariantsAfterMixedOps(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(4))
	for i := int64(0); i < 50; i++ {
		s.Add(Int(i))
	}
	for i := int64(0); i < 50; i += 3 {
		s.Remove(Int(i))
	}
	checkInvariants(t, s)
}

func checkInvariants(t *testing.T, s *SortedSet) {
	t.Helper()
	total := 0
	for _, b := range s.buckets {
		total += b.len()
		if b.len() > s.maxBucketSize {
			t.Fatalf("bucket exceeds max_bucket_size: %d > %d", b.len(), s.maxBucketSize)
		}
	}
	if total != s.size {
		t.Fatalf("size mismatch: size=%d, sum(buckets)=%d", s.size, total)
	}
	if len(s.buckets) == 0 {
		t.Fatal("at least one bucket must always exist")
	}
	list := s.ToList()
	for i := 1; i < len(list); i++ {
		if Compare(list[i-1], list[i]) != Less {
			t.Fatalf("items not strictly increasing at %d", i)
		}
	}
	for i, it := range list {
		idx, err := s.FindIndex(it)
		if err != nil || idx != i {
			t.Fatalf("find_index(at(%d)) = (%d, %v), want (%d, nil)", i, idx, err, i)
		}
	}
}

func TestAddIdempotent(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(4))
	s.Add(Int(1))
	before := s.ToList()
	s.Add(Int(1))
	after := s.ToList()
	if len(before) != len(after) || before[0].Int64() != after[0].Int64() {
		t.Fatal("adding an already-present item must be a no-op")
	}
}

func TestRemoveThenAddRestoresContents(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(4))
	for _, v := range []int64{1, 2, 3} {
		s.Add(Int(v))
	}
	before := s.ToList()
	s.Add(Int(99))
	s.Remove(Int(99))
	after := s.ToList()
	if len(before) != len(after) {
		t.Fatalf("len mismatch after add/remove round trip: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Int64() != after[i].Int64() {
			t.Fatalf("content mismatch at %d", i)
		}
	}
}

func TestFromProperEnumerableRoundTrip(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(4))
	for _, v := range []int64{3, 1, 4, 1, 5, 9, 2, 6} {
		s.Add(Int(v))
	}
	rebuilt, err := FromProperEnumerable(s.ToList(), s.MaxBucketSize())
	if err != nil {
		t.Fatalf("FromProperEnumerable: %v", err)
	}
	if rebuilt.Checksum() != s.Checksum() {
		t.Fatal("rebuilt set should equal the original")
	}
}

func TestFromProperEnumerableValidatesPrecondition(t *testing.T) {
	bad := []Item{Int(2), Int(1)}
	if _, err := FromProperEnumerable(bad, 10); err == nil {
		t.Fatal("expected ErrInvalidInput for a non-increasing input")
	}
	dup := []Item{Int(1), Int(1)}
	if _, err := FromProperEnumerable(dup, 10); err == nil {
		t.Fatal("expected ErrInvalidInput for a duplicate-containing input")
	}
}

func TestAtOutOfBounds(t *testing.T) {
	s := mustNew(t)
	if _, err := s.At(0); err != ErrOutOfBounds {
		t.Fatalf("at(empty, 0) = %v, want ErrOutOfBounds", err)
	}
	got, err := s.At(0, Int(-1))
	if err != nil || got.Int64() != -1 {
		t.Fatalf("at(empty, 0, default) = (%v, %v), want (-1, nil)", got, err)
	}
}

func TestSliceBoundaries(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(3))
	for _, v := range []int64{1, 2, 3, 4, 5} {
		s.Add(Int(v))
	}
	if got := s.Slice(s.Size(), 10); len(got) != 0 {
		t.Fatalf("slice(size, k) = %v, want empty", got)
	}
	got := s.Slice(3, 10)
	if len(got) != 2 || got[0].Int64() != 4 || got[1].Int64() != 5 {
		t.Fatalf("slice(3, 10) = %v, want [4 5]", got)
	}
	got = s.Slice(1, 2)
	if len(got) != 2 || got[0].Int64() != 2 || got[1].Int64() != 3 {
		t.Fatalf("slice(1, 2) = %v, want [2 3]", got)
	}
}

func TestRemoveDropsEmptyNonSoleBucket(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(2))
	for _, v := range []int64{1, 2, 3} {
		s.Add(Int(v))
	}
	// buckets: [1] [2,3] (the overflowing [1,2,3] splits at len/2)
	s.Remove(Int(1))
	if len(s.buckets) != 1 {
		t.Fatalf("emptying a non-sole bucket should drop it, got %d buckets", len(s.buckets))
	}
}

func TestRemoveKeepsSoleEmptyBucket(t *testing.T) {
	s := mustNew(t)
	s.Add(Int(1))
	s.Remove(Int(1))
	if len(s.buckets) != 1 {
		t.Fatalf("emptying the sole bucket must leave one empty bucket, got %d", len(s.buckets))
	}
	if s.Size() != 0 {
		t.Fatalf("size = %d, want 0", s.Size())
	}
}

func TestEachStopsEarly(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(3))
	for _, v := range []int64{1, 2, 3, 4, 5} {
		s.Add(Int(v))
	}
	var seen []int64
	s.Each(func(it Item) bool {
		seen = append(seen, it.Int64())
		return len(seen) < 3
	})
	if len(seen) != 3 {
		t.Fatalf("Each should stop after 3 items, saw %d", len(seen))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustNew(t, WithMaxBucketSize(3))
	for _, v := range []int64{1, 2, 3} {
		s.Add(Int(v))
	}
	clone := s.Clone()
	s.Add(Int(4))
	if clone.Size() != 3 {
		t.Fatalf("clone should not observe later mutation, size = %d", clone.Size())
	}
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := New(WithMaxBucketSize(0)); err != ErrInvalidInput {
		t.Fatalf("New(maxBucketSize=0) = %v, want ErrInvalidInput", err)
	}
}
