package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/daystram/bitvariant/position"
)

var (
	ErrInconsistentEntry = errors.New("inconsistent move map entry")
)

// MoveMap memoizes Shape.OpenSquares keyed by origin and relevant occupancy.
// Entries never go stale, so there is no eviction.
type MoveMap struct {
	shape Shape

	mu      sync.Mutex
	entries [TotalCells]map[Bitmap]Bitmap
	size    int

	// stats
	hits   uint64
	misses uint64
}

func NewMoveMap(shape Shape) *MoveMap {
	return &MoveMap{shape: shape}
}

func (m *MoveMap) Shape() Shape {
	return m.shape
}

// Key masks occupied down to the bits that matter for pos.
func (m *MoveMap) Key(pos position.Pos, occupied Bitmap) Bitmap {
	return occupied & m.shape.Relevant(pos)
}

func (m *MoveMap) Get(pos position.Pos, occupied Bitmap) Bitmap {
	key := m.Key(pos, occupied)

	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entries[pos]
	if entry == nil {
		entry = make(map[Bitmap]Bitmap)
		m.entries[pos] = entry
	} else if value, ok := entry[key]; ok {
		m.hits++
		return value
	}
	value := m.shape.OpenSquares(key, pos)
	entry[key] = value
	m.size++
	m.misses++
	return value
}

// Seed inserts a precomputed entry, e.g. one restored from disk. The entry is
// checked against a fresh computation before it is accepted.
func (m *MoveMap) Seed(pos position.Pos, key, value Bitmap) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: position %d out of range", ErrInconsistentEntry, pos)
	}
	if key != m.Key(pos, key) {
		return fmt.Errorf("%w: %s key %s not masked for %s", ErrInconsistentEntry, m.shape, key, pos)
	}
	if want := m.shape.OpenSquares(key, pos); value != want {
		return fmt.Errorf("%w: %s at %s got=%s want=%s", ErrInconsistentEntry, m.shape, pos, value, want)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries[pos] == nil {
		m.entries[pos] = make(map[Bitmap]Bitmap)
	}
	if _, ok := m.entries[pos][key]; !ok {
		m.entries[pos][key] = value
		m.size++
	}
	return nil
}

// Range calls fn for every entry until fn returns false. fn must not call
// back into m.
func (m *MoveMap) Range(fn func(pos position.Pos, key, value Bitmap) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for pos, entry := range m.entries {
		for key, value := range entry {
			if !fn(position.Pos(pos), key, value) {
				return
			}
		}
	}
}

func (m *MoveMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

func (m *MoveMap) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// MoveMaps holds one MoveMap per Shape. A session owns one MoveMaps and shares
// it with every generator and search it runs.
type MoveMaps struct {
	maps [shapeCount]*MoveMap
}

func NewMoveMaps() *MoveMaps {
	m := &MoveMaps{}
	for _, s := range Shapes {
		m.maps[s] = NewMoveMap(s)
	}
	return m
}

func (m *MoveMaps) Get(s Shape) *MoveMap {
	return m.maps[s]
}

func (m *MoveMaps) Len() int {
	var n int
	for _, mm := range m.maps {
		n += mm.Len()
	}
	return n
}

func (m *MoveMaps) Stats() (hits, misses uint64) {
	for _, mm := range m.maps {
		h, ms := mm.Stats()
		hits += h
		misses += ms
	}
	return hits, misses
}
