// Package cache persists filtered dictionaries in a bolt database so
// the corpus is only rescanned when it changes.
package cache

import (
	"encoding/json"
	"errors"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/divergentti/dna2polypeptidetool/dict"
)

// log is the global logging variable.
var log = logging.MustGetLogger("cache")

// DICTS is the bucket name for all stored dictionaries.
var DICTS = []byte("dictionaries")

// LATEST is the key holding the fingerprint of the most recently
// stored dictionary.
var LATEST = []byte("latest")

// ErrFingerprintMismatch is returned by Get when no dictionary for the
// requested corpus fingerprint is stored. It signals a rebuild, not a
// failure.
var ErrFingerprintMismatch = errors.New("no cached dictionary for this corpus fingerprint")

// entry is the stored form of a dictionary.
type entry struct {
	Fingerprint string
	MaxWordLen  int
	Words       []string
}

// Store reads and writes dictionaries in a bolt database. A nil
// database is allowed; the store then caches nothing.
type Store struct {
	db *bolt.DB
}

// NewStore creates a new Store.
func NewStore(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Put stores a dictionary under its corpus fingerprint. Bolt runs
// update transactions one at a time, which gives the required
// exclusive write for concurrent builds of the same fingerprint.
func (s *Store) Put(d *dict.Dictionary) error {
	if s.db == nil {
		return nil
	}
	data, err := json.Marshal(entry{
		Fingerprint: d.Fingerprint,
		MaxWordLen:  d.MaxWordLen,
		Words:       d.Words(),
	})
	if err != nil {
		log.Error("Error serializing dictionary", err)
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(DICTS)
		if err != nil {
			return err
		}
		if err = b.Put([]byte(d.Fingerprint), data); err != nil {
			return err
		}
		return b.Put(LATEST, []byte(d.Fingerprint))
	})
	if err != nil {
		log.Error("Error saving dictionary", err)
	}
	return err
}

// Get loads the dictionary stored for the given corpus fingerprint.
// ErrFingerprintMismatch is returned when none is stored.
func (s *Store) Get(fingerprint string) (*dict.Dictionary, error) {
	if s.db == nil {
		return nil, ErrFingerprintMismatch
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(DICTS)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(fingerprint)); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrFingerprintMismatch
	}

	var e entry
	if err = json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if e.Fingerprint != fingerprint {
		return nil, ErrFingerprintMismatch
	}

	log.Noticef("Found cached dictionary (%d words, maxlen=%d)", len(e.Words), e.MaxWordLen)
	return dict.New(e.Fingerprint, e.MaxWordLen, e.Words), nil
}

// Latest loads the most recently stored dictionary.
// ErrFingerprintMismatch is returned when the store is empty.
func (s *Store) Latest() (*dict.Dictionary, error) {
	if s.db == nil {
		return nil, ErrFingerprintMismatch
	}
	var fingerprint []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(DICTS)
		if b == nil {
			return nil
		}
		if v := b.Get(LATEST); v != nil {
			fingerprint = append(fingerprint, v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if fingerprint == nil {
		return nil, ErrFingerprintMismatch
	}
	return s.Get(string(fingerprint))
}
