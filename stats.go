package sortedset

import "github.com/templexxx/tsc"

// nowNanos reads tsc's fast clock rather than time.Now(), avoiding a
// vDSO/syscall round trip on the hot, lock-held mutation path. Mirrors
// templexxx/u64/status.go's getTS(), which timestamps every Add the same
// way.
func nowNanos() int64 { return tsc.UnixNano() }

// Stats is a cheap snapshot of a SortedSet's accumulated counters.
type Stats struct {
	Size              int
	Buckets           int
	MaxBucketSize     int
	LastMutationNanos int64
}

// Stats returns a snapshot of s's current counters.
func (s *SortedSet) Stats() Stats {
	return Stats{
		Size:              s.size,
		Buckets:           len(s.buckets),
		MaxBucketSize:     s.maxBucketSize,
		LastMutationNanos: s.lastMutationNanos,
	}
}
