package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"gototest/internal/domain"
)

var (
	bucketJumps = []byte("jumps")
	bucketMeta  = []byte("meta")
)

// BoltStore keeps the jump history in a bbolt file.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketJumps, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

type jumpRecord struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction"`
	At        int64  `json:"at"`
}

// Record appends a jump. Keys are bbolt sequence numbers, so iteration order
// is insertion order.
func (s *BoltStore) Record(jump domain.Jump) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketJumps)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		data, err := json.Marshal(jumpRecord{
			From:      jump.From,
			To:        jump.To,
			Direction: jump.Direction.String(),
			At:        jump.At.UnixNano(),
		})
		if err != nil {
			return err
		}
		return b.Put(seqKey(seq), data)
	})
}

// Recent returns up to limit jumps, newest first. limit <= 0 returns all.
func (s *BoltStore) Recent(limit int) ([]domain.Jump, error) {
	var jumps []domain.Jump
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketJumps).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(jumps) >= limit {
				break
			}
			var rec jumpRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				continue
			}
			jumps = append(jumps, domain.Jump{
				From:      rec.From,
				To:        rec.To,
				Direction: parseDirection(rec.Direction),
				At:        time.Unix(0, rec.At),
			})
		}
		return nil
	})
	return jumps, err
}

// Count returns the number of recorded jumps.
func (s *BoltStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketJumps).ForEach(func(_, _ []byte) error {
			n++
			return nil
		})
	})
	return n, err
}

// Clear drops every recorded jump.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketJumps); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketJumps)
		return err
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func parseDirection(s string) domain.Direction {
	if s == domain.ToCode.String() {
		return domain.ToCode
	}
	return domain.ToSpec
}
