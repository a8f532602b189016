package store

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/position"
)

func warmMaps(t *testing.T) *board.MoveMaps {
	t.Helper()
	maps := board.NewMoveMaps()
	gen := board.NewGenerator(maps)
	s := board.StartingState()
	for _, next := range gen.StatesForTurn(s, 0) {
		gen.StatesForTurn(next, 1)
	}
	if maps.Len() == 0 {
		t.Fatal("unexpected empty move maps")
	}
	return maps
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	maps := warmMaps(t)

	st, err := Open(dir)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	saved, err := st.Save(maps)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if saved != maps.Len() {
		t.Errorf("unexpected saved count: got=%d want=%d", saved, maps.Len())
	}
	if err := st.Close(); err != nil {
		t.Fatal("unexpected error:", err)
	}

	st, err = Open(dir)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	defer st.Close()

	if n, err := st.Count(); err != nil || n != saved {
		t.Errorf("unexpected count: got=%d,%v want=%d", n, err, saved)
	}
	restored := board.NewMoveMaps()
	loaded, err := st.Load(restored)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if loaded != saved || restored.Len() != maps.Len() {
		t.Errorf("unexpected loaded count: got=%d,%d want=%d", loaded, restored.Len(), saved)
	}

	for _, shape := range board.Shapes {
		maps.Get(shape).Range(func(pos position.Pos, key, value board.Bitmap) bool {
			if got := restored.Get(shape).Get(pos, key); got != value {
				t.Errorf("unexpected %s value at %s: got=%s want=%s", shape, pos, got, value)
			}
			return true
		})
	}
	if _, misses := restored.Stats(); misses != 0 {
		t.Errorf("unexpected misses on restored maps: got=%d want=0", misses)
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	t.Parallel()
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	defer st.Close()

	maps := warmMaps(t)
	for i := 0; i < 2; i++ {
		if _, err := st.Save(maps); err != nil {
			t.Fatal("unexpected error:", err)
		}
	}
	if n, err := st.Count(); err != nil || n != maps.Len() {
		t.Errorf("unexpected count: got=%d,%v want=%d", n, err, maps.Len())
	}

	if err := st.Clear(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if n, err := st.Count(); err != nil || n != 0 {
		t.Errorf("unexpected count after clear: got=%d,%v want=0", n, err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		key   []byte
		value []byte
	}{
		{
			name:  "wrong value",
			key:   encodeKey(board.ShapeCross, position.A1, 0),
			value: encodeValue(0xFF),
		},
		{
			name:  "unknown shape",
			key:   encodeKey(board.Shape(9), position.A1, 0),
			value: encodeValue(0),
		},
		{
			name:  "short key",
			key:   append([]byte(nil), prefixMoveMap...),
			value: encodeValue(0),
		},
		{
			name:  "short value",
			key:   encodeKey(board.ShapeKnight, position.A1, 0),
			value: []byte{1, 2},
		},
		{
			name:  "square out of range",
			key:   encodeKey(board.ShapeKing, position.Pos(70), 0),
			value: encodeValue(0),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st, err := OpenInMemory()
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			defer st.Close()

			if err := st.db.Update(func(txn *badger.Txn) error {
				return txn.Set(tt.key, tt.value)
			}); err != nil {
				t.Fatal("unexpected error:", err)
			}
			maps := board.NewMoveMaps()
			if _, err := st.Load(maps); !errors.Is(err, ErrCorruptEntry) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrCorruptEntry)
			}
			if maps.Len() != 0 {
				t.Errorf("unexpected entries: got=%d want=0", maps.Len())
			}
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	t.Parallel()
	shape, pos, key, err := decodeKey(encodeKey(board.ShapeDiagonal, position.F6, 0x0040000000000200))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if shape != board.ShapeDiagonal || pos != position.F6 || key != 0x0040000000000200 {
		t.Errorf("unexpected key: got=%s %s %s", shape, pos, key)
	}
}
