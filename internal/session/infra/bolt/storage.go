package bolt

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
)

var (
	bucketName = []byte("storefront")
	tokenKey   = []byte("auth_token")
	sessionKey = []byte("auth_user")
)

type Storage struct {
	db *bolt.DB
}

// Open opens (creating if needed) the bolt file at path.
func Open(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open state file %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Load() (domain.Persisted, error) {
	var p domain.Persisted
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if raw := b.Get(tokenKey); raw != nil {
			p.Token = string(raw)
		}
		if raw := b.Get(sessionKey); raw != nil {
			// bolt values are only valid inside the transaction
			p.Session = append([]byte(nil), raw...)
		}
		return nil
	})
	return p, err
}

func (s *Storage) Save(p domain.Persisted) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Put(tokenKey, []byte(p.Token)); err != nil {
			return err
		}
		return b.Put(sessionKey, p.Session)
	})
}

func (s *Storage) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Delete(tokenKey); err != nil {
			return err
		}
		return b.Delete(sessionKey)
	})
}
