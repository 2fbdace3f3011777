package memory

import (
	"sync"

	"fieldtrack/internal/domain/repository"
)

// Collection is an insertion-ordered in-memory store. Records are cloned on
// the way in and on the way out, so callers never share state with it.
type Collection[T repository.Record[T]] struct {
	records []T
	mutex   sync.RWMutex
}

// NewCollection creates a collection seeded with the given records
func NewCollection[T repository.Record[T]](seed ...T) *Collection[T] {
	c := &Collection[T]{records: make([]T, 0, len(seed))}
	for _, r := range seed {
		c.records = append(c.records, r.Clone())
	}
	return c
}

// Insert appends a record
func (c *Collection[T]) Insert(record T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.records = append(c.records, record.Clone())
}

// All returns every record in insertion order
func (c *Collection[T]) All() []T {
	return c.Find(nil)
}

// Find returns the records matching a predicate in insertion order.
// A nil predicate matches everything.
func (c *Collection[T]) Find(match func(T) bool) []T {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make([]T, 0, len(c.records))
	for _, r := range c.records {
		if match == nil || match(r) {
			result = append(result, r.Clone())
		}
	}
	return result
}

// First returns the first record matching a predicate
func (c *Collection[T]) First(match func(T) bool) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, r := range c.records {
		if match(r) {
			return r.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Get retrieves a record by ID
func (c *Collection[T]) Get(id string) (T, bool) {
	return c.First(func(r T) bool { return r.GetID() == id })
}

// Update applies mutate to a copy of the stored record under the write lock
// and stores the result. A mutation that changes the id is discarded.
func (c *Collection[T]) Update(id string, mutate func(*T)) (T, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero T
	idx := c.indexOf(id)
	if idx == -1 {
		return zero, false
	}

	updated := c.records[idx].Clone()
	mutate(&updated)
	if updated.GetID() != id {
		return zero, false
	}
	c.records[idx] = updated.Clone()
	return updated, true
}

// Delete removes a record by ID and reports whether it existed
func (c *Collection[T]) Delete(id string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	idx := c.indexOf(id)
	if idx == -1 {
		return false
	}
	c.records = append(c.records[:idx], c.records[idx+1:]...)
	return true
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.records)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, r := range c.records {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}
