// Package store persists move map entries so a later process can start with a
// warm cache.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/position"
)

const appName = "bitvariant"

var (
	ErrCorruptEntry = errors.New("corrupt move map entry")

	prefixMoveMap = []byte("mm/")
)

// key layout: prefix | shape | square | masked occupancy (big endian)
const (
	keySize   = 3 + 1 + 1 + 8
	valueSize = 8
)

type Store struct {
	db *badger.DB
}

// DefaultDir returns the per-user cache directory, creating it if needed.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appName, "movemaps")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory returns a store that lives as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes every entry of maps and returns how many were written. Entries
// already on disk are overwritten with the same value.
func (s *Store) Save(maps *board.MoveMaps) (int, error) {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	var n int
	var err error
	for _, shape := range board.Shapes {
		maps.Get(shape).Range(func(pos position.Pos, key, value board.Bitmap) bool {
			if err = wb.Set(encodeKey(shape, pos, key), encodeValue(value)); err != nil {
				return false
			}
			n++
			return true
		})
		if err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	return n, nil
}

// Load seeds maps with every stored entry and returns how many were read. An
// entry that does not match a fresh computation fails the load with
// ErrCorruptEntry; entries seeded before it are kept.
func (s *Store) Load(maps *board.MoveMaps) (int, error) {
	var n int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefixMoveMap
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefixMoveMap); it.ValidForPrefix(prefixMoveMap); it.Next() {
			item := it.Item()
			shape, pos, key, err := decodeKey(item.Key())
			if err != nil {
				return err
			}
			var value board.Bitmap
			if err := item.Value(func(val []byte) error {
				value, err = decodeValue(val)
				return err
			}); err != nil {
				return err
			}
			if err := maps.Get(shape).Seed(pos, key, value); err != nil {
				return fmt.Errorf("%w: %v", ErrCorruptEntry, err)
			}
			n++
		}
		return nil
	})
	return n, err
}

func (s *Store) Count() (int, error) {
	var n int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefixMoveMap
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefixMoveMap); it.ValidForPrefix(prefixMoveMap); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func (s *Store) Clear() error {
	return s.db.DropPrefix(prefixMoveMap)
}

func encodeKey(shape board.Shape, pos position.Pos, key board.Bitmap) []byte {
	buf := make([]byte, keySize)
	n := copy(buf, prefixMoveMap)
	buf[n] = byte(shape)
	buf[n+1] = byte(pos)
	binary.BigEndian.PutUint64(buf[n+2:], uint64(key))
	return buf
}

func decodeKey(buf []byte) (board.Shape, position.Pos, board.Bitmap, error) {
	if len(buf) != keySize {
		return 0, 0, 0, fmt.Errorf("%w: key of %d bytes", ErrCorruptEntry, len(buf))
	}
	buf = buf[len(prefixMoveMap):]
	shape := board.Shape(buf[0])
	if int(shape) >= len(board.Shapes) {
		return 0, 0, 0, fmt.Errorf("%w: unknown shape %d", ErrCorruptEntry, shape)
	}
	return shape, position.Pos(buf[1]), board.Bitmap(binary.BigEndian.Uint64(buf[2:])), nil
}

func encodeValue(value board.Bitmap) []byte {
	buf := make([]byte, valueSize)
	binary.BigEndian.PutUint64(buf, uint64(value))
	return buf
}

func decodeValue(buf []byte) (board.Bitmap, error) {
	if len(buf) != valueSize {
		return 0, fmt.Errorf("%w: value of %d bytes", ErrCorruptEntry, len(buf))
	}
	return board.Bitmap(binary.BigEndian.Uint64(buf)), nil
}
