// Package idempotency stores the first completed response for each
// Idempotency-Key so retried POSTs can be answered without re-running the
// handler.
package idempotency

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/eventbook/eventbook-api/internal/logger"
	"go.uber.org/zap"
)

const bucketName = "idempotency_responses"

var ErrNotFound = errors.New("idempotency record not found")

// Record is a captured HTTP response.
type Record struct {
	Status      int       `json:"status"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists records in a single Bolt bucket. Records older than ttl
// are treated as absent.
type Store struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	purging  sync.WaitGroup
}

// Open opens (or creates) the Bolt file at path.
func Open(path string, ttl time.Duration) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, ttl: ttl, now: time.Now, stop: make(chan struct{})}, nil
}

// Close stops the purge loop, if any, and closes the Bolt file.
func (s *Store) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	s.purging.Wait()
	return s.db.Close()
}

// StartPurging removes expired records every interval until Close.
func (s *Store) StartPurging(interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	s.purging.Add(1)
	go func() {
		defer s.purging.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				removed, err := s.Purge()
				if err != nil {
					logger.Warn("idempotency purge failed", zap.Error(err))
					continue
				}
				if removed > 0 {
					logger.Debug("purged idempotency records", zap.Int("removed", removed))
				}
			}
		}
	}()
}

func (s *Store) expired(r Record) bool {
	return s.ttl > 0 && s.now().Sub(r.CreatedAt) > s.ttl
}

func (s *Store) Get(key string) (*Record, error) {
	var r Record
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &r)
	})
	if err != nil {
		return nil, err
	}
	if s.expired(r) {
		return nil, ErrNotFound
	}
	return &r, nil
}

// Save stores r under key unless a live record already exists, in which
// case the existing record is returned and saved is false.
func (s *Store) Save(key string, r Record) (stored Record, saved bool, err error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if existing := b.Get([]byte(key)); existing != nil {
			var prev Record
			if err := json.Unmarshal(existing, &prev); err == nil && !s.expired(prev) {
				stored = prev
				return nil
			}
		}

		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		stored, saved = r, true
		return b.Put([]byte(key), data)
	})
	return stored, saved, err
}

// Purge deletes expired records and returns how many were removed.
func (s *Store) Purge() (int, error) {
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var r Record
			if err := json.Unmarshal(v, &r); err != nil || s.expired(r) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}
