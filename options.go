package sortedset

// LockPolicy selects the concurrency wrapper's acquisition mode (spec.md
// §4.3). Blocking is the default.
type LockPolicy uint8

const (
	// Blocking waits until the lock is free; no operation reports
	// contention.
	Blocking LockPolicy = iota
	// TryAcquire fails immediately with ErrContended if the lock is
	// held, leaving the caller to retry with its own backoff.
	TryAcquire
)

type config struct {
	initialItemCapacity int
	maxBucketSize       int
	lockPolicy          LockPolicy
}

// Option configures New and NewConcurrent.
type Option func(*config)

// WithInitialItemCapacity hints the pre-allocation size for a freshly
// created bucket. It is advisory (spec.md §6's initial_item_capacity) and
// never changes the strict max_bucket_size invariant.
func WithInitialItemCapacity(n int) Option {
	return func(c *config) { c.initialItemCapacity = n }
}

// WithMaxBucketSize sets the hard per-bucket capacity (spec.md §3's
// max_bucket_size).
func WithMaxBucketSize(n int) Option {
	return func(c *config) { c.maxBucketSize = n }
}

// WithLockPolicy selects the Concurrent wrapper's acquisition mode. It has
// no effect on New, only on NewConcurrent.
func WithLockPolicy(p LockPolicy) Option {
	return func(c *config) { c.lockPolicy = p }
}
