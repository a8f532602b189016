package engine

import (
	"github.com/daystram/bitvariant/board"
)

const DefaultEvalCacheSize = 1 << 16 // number of entries

// TranspositionTable caches evaluations of states reached through different
// move orders. Evaluations do not depend on the side to move, so entries are
// keyed by placement alone and hits are checked against the full state.
type TranspositionTable struct {
	table    []*entry
	size     uint64
	maskHash uint64

	// stats
	hits   int
	misses int
	writes int
}

type entry struct {
	state board.State
	score Score
}

// NewTranspositionTable rounds size down to a power of two. A zero size gives
// a table that never hits.
func NewTranspositionTable(size uint64) *TranspositionTable {
	for size&(size-1) != 0 {
		size &= size - 1
	}
	var maskHash uint64
	if size > 0 {
		maskHash = size - 1
	}
	return &TranspositionTable{
		table:    make([]*entry, size),
		size:     size,
		maskHash: maskHash,
	}
}

func (t *TranspositionTable) Set(s board.State, score Score) {
	if t.size == 0 {
		return
	}
	t.writes++
	t.table[s.Hash(0)&t.maskHash] = &entry{state: s, score: score}
}

func (t *TranspositionTable) Get(s board.State) (Score, bool) {
	if t.size == 0 {
		t.misses++
		return 0, false
	}
	e := t.table[s.Hash(0)&t.maskHash]
	if e == nil || e.state != s {
		t.misses++
		return 0, false
	}
	t.hits++
	return e.score, true
}

func (t *TranspositionTable) Size() uint64 {
	return t.size
}

func (t *TranspositionTable) ResetStats() {
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

func (t *TranspositionTable) Stats() (int, int, int) {
	return t.hits, t.misses, t.writes
}
