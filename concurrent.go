package sortedset

import (
	"sync"

	"github.com/templexxx/cpu"
)

// Concurrent wraps one SortedSet behind a mutual-exclusion primitive and
// exposes every engine operation as an atomic action against that single
// instance (spec.md §4.3). All mutation and all reads go through the same
// lock; there is no finer-grained per-bucket locking (§5's rationale: a
// split or bucket-removal can touch the whole bucket vector).
//
// _padding fields stop the mutex and lock policy from sharing a cache line
// with the engine pointer or neighbouring memory, the same technique
// templexxx/u64/u64.go uses around its header fields to keep one
// goroutine's lock/unlock from stalling another goroutine's concurrent
// Stats() read.
type Concurrent struct {
	_padding0 [cpu.X86FalseSharingRange]byte

	mu     sync.Mutex
	policy LockPolicy

	_padding1 [cpu.X86FalseSharingRange]byte

	engine *SortedSet
}

// NewConcurrent creates a Concurrent wrapping a freshly constructed
// SortedSet. The lock policy defaults to Blocking; pass
// WithLockPolicy(TryAcquire) to select the non-blocking mode.
func NewConcurrent(opts ...Option) (*Concurrent, error) {
	cfg := config{
		initialItemCapacity: defaultInitialItemCapacity,
		maxBucketSize:       defaultMaxBucketSize,
		lockPolicy:          Blocking,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	engine, err := New(
		WithInitialItemCapacity(cfg.initialItemCapacity),
		WithMaxBucketSize(cfg.maxBucketSize),
	)
	if err != nil {
		return nil, err
	}
	return &Concurrent{engine: engine, policy: cfg.lockPolicy}, nil
}

// acquire takes the lock per the configured policy. It returns
// ErrContended immediately under TryAcquire if the lock is held; it never
// fails under Blocking.
func (c *Concurrent) acquire() error {
	if c.policy == TryAcquire {
		if !c.mu.TryLock() {
			return ErrContended
		}
		return nil
	}
	c.mu.Lock()
	return nil
}

func (c *Concurrent) release() { c.mu.Unlock() }

// LockPolicy reports the wrapper's configured acquisition mode.
func (c *Concurrent) LockPolicy() LockPolicy { return c.policy }

// Add inserts item under the lock.
func (c *Concurrent) Add(item Item) (AddResult, error) {
	if err := c.acquire(); err != nil {
		return 0, err
	}
	defer c.release()
	return c.engine.Add(item), nil
}

// IndexAdd inserts item under the lock and reports its global index.
func (c *Concurrent) IndexAdd(item Item) (index int, result AddResult, err error) {
	if err = c.acquire(); err != nil {
		return 0, 0, err
	}
	defer c.release()
	index, result = c.engine.IndexAdd(item)
	return index, result, nil
}

// Remove deletes item under the lock.
func (c *Concurrent) Remove(item Item) (RemoveResult, error) {
	if err := c.acquire(); err != nil {
		return 0, err
	}
	defer c.release()
	return c.engine.Remove(item), nil
}

// IndexRemove deletes item under the lock and reports its former global
// index.
func (c *Concurrent) IndexRemove(item Item) (index int, result RemoveResult, err error) {
	if err = c.acquire(); err != nil {
		return 0, 0, err
	}
	defer c.release()
	index, result = c.engine.IndexRemove(item)
	return index, result, nil
}

// Size returns the total item count under the lock.
func (c *Concurrent) Size() (int, error) {
	if err := c.acquire(); err != nil {
		return 0, err
	}
	defer c.release()
	return c.engine.Size(), nil
}

// At returns the item at the given global index under the lock.
func (c *Concurrent) At(index int, def ...Item) (Item, error) {
	if err := c.acquire(); err != nil {
		return Item{}, err
	}
	defer c.release()
	return c.engine.At(index, def...)
}

// Slice returns up to count items starting at start, under the lock.
func (c *Concurrent) Slice(start, count int) ([]Item, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()
	return c.engine.Slice(start, count), nil
}

// FindIndex returns item's global index under the lock.
func (c *Concurrent) FindIndex(item Item) (int, error) {
	if err := c.acquire(); err != nil {
		return 0, err
	}
	defer c.release()
	return c.engine.FindIndex(item)
}

// ToList returns the full sorted sequence under the lock.
func (c *Concurrent) ToList() ([]Item, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()
	return c.engine.ToList(), nil
}

// Checksum returns the engine's structural fingerprint under the lock.
func (c *Concurrent) Checksum() (uint64, error) {
	if err := c.acquire(); err != nil {
		return 0, err
	}
	defer c.release()
	return c.engine.Checksum(), nil
}

// Stats returns a snapshot of the engine's counters under the lock.
func (c *Concurrent) Stats() (Stats, error) {
	if err := c.acquire(); err != nil {
		return Stats{}, err
	}
	defer c.release()
	return c.engine.Stats(), nil
}
