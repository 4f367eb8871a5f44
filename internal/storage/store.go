package storage

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats   = "stats"
	evalPrefix = "eval:"
)

// Stats accumulates self-play results across runs.
type Stats struct {
	GamesPlayed int           `json:"games_played"`
	WhiteWins   int           `json:"white_wins"`
	BlackWins   int           `json:"black_wins"`
	Draws       int           `json:"draws"`
	TotalMoves  int           `json:"total_moves"`
	LongestGame int           `json:"longest_game"`
	TotalTime   time.Duration `json:"total_time"`
}

// DrawRate returns the fraction of recorded games that ended drawn.
func (s *Stats) DrawRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.GamesPlayed)
}

// Store wraps BadgerDB for evaluation caching and statistics.
type Store struct {
	db *badger.DB
}

// Open opens the store in the default platform data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the store at the given directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that keeps everything in memory. Used by tests
// and short-lived runs that should not touch the disk.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func evalKey(hash uint64) []byte {
	key := make([]byte, len(evalPrefix)+8)
	copy(key, evalPrefix)
	binary.BigEndian.PutUint64(key[len(evalPrefix):], hash)
	return key
}

// PutEval stores a centipawn score under a position hash.
func (s *Store) PutEval(hash uint64, score int) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(score)))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(evalKey(hash), buf[:])
	})
}

// GetEval looks up a cached score by position hash. The second return value
// reports whether the hash was present.
func (s *Store) GetEval(hash uint64) (int, bool, error) {
	var score int
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(evalKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return nil
			}
			score = int(int64(binary.BigEndian.Uint64(val)))
			found = true
			return nil
		})
	})

	return score, found, err
}

// LoadStats loads accumulated statistics, returning zero stats if none are
// recorded yet.
func (s *Store) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// SaveStats saves statistics.
func (s *Store) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// GameRecord describes one completed self-play game.
type GameRecord struct {
	Result   string
	Moves    int
	Duration time.Duration
}

// RecordGame folds a finished game into the accumulated statistics.
func (s *Store) RecordGame(rec GameRecord) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalMoves += rec.Moves
	stats.TotalTime += rec.Duration
	if rec.Moves > stats.LongestGame {
		stats.LongestGame = rec.Moves
	}

	switch rec.Result {
	case "1-0":
		stats.WhiteWins++
	case "0-1":
		stats.BlackWins++
	default:
		stats.Draws++
	}

	return s.SaveStats(stats)
}
