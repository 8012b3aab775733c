package refs

import (
	"sync"

	"github.com/wippyai/wrapper/errors"
)

// Handle is an opaque reference to a value in a Table.
// Handle 0 is reserved and encodes nil.
type Handle uint32

// Dropper is optionally implemented by values that need cleanup.
type Dropper interface {
	Drop()
}

type entry struct {
	value any
	valid bool
}

// Table is a handle table safe for concurrent use.
type Table struct {
	entries  []entry
	freeList []Handle
	live     int
	mu       sync.RWMutex
	closed   bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert stores value and returns its handle. nil, and any insert into a
// closed table, returns 0.
func (t *Table) Insert(value any) Handle {
	h, _ := t.Put(value)
	return h
}

// Put is Insert with an error for the closed table.
func (t *Table) Put(value any) (Handle, error) {
	if value == nil {
		return 0, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, errors.Closed(errors.PhaseSlots, "reference table")
	}

	e := entry{value: value, valid: true}
	t.live++

	if n := len(t.freeList); n > 0 {
		h := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = e
		return h, nil
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries)), nil
}

// Get retrieves a value by handle.
func (t *Table) Get(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].value, true
}

// Resolve is Get with a NotFound error for stale handles. Handle 0 resolves
// to nil.
func (t *Table) Resolve(h Handle) (any, error) {
	if h == 0 {
		return nil, nil
	}
	v, ok := t.Get(h)
	if !ok {
		return nil, errors.NotFound(errors.PhaseSlots, "reference", uint32(h))
	}
	return v, nil
}

// Remove frees a handle and returns (value, true) if it was live.
func (t *Table) Remove(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		t.mu.Unlock()
		return nil, false
	}
	value := t.entries[idx].value
	t.entries[idx] = entry{}
	t.freeList = append(t.freeList, h)
	t.live--
	t.mu.Unlock()

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	return value, true
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live
}

// Each calls fn for every live handle until fn returns false.
// fn must not call back into the table.
func (t *Table) Each(fn func(Handle, any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid && !fn(Handle(i+1), e.value) {
			return
		}
	}
}

// Close drops every live value and stops accepting inserts.
// Closing twice is a no-op.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	entries := t.entries
	t.entries = nil
	t.freeList = nil
	t.live = 0
	t.mu.Unlock()

	for _, e := range entries {
		if !e.valid {
			continue
		}
		if d, ok := e.value.(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}

// GetAs retrieves a value only if it has type T.
func GetAs[T any](t *Table, h Handle) (T, bool) {
	v, ok := t.Get(h)
	if !ok {
		var zero T
		return zero, false
	}
	r, ok := v.(T)
	return r, ok
}
