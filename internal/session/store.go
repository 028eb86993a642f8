package session

import (
	"errors"
	"time"

	"go.etcd.io/bbolt"
)

var ErrNoSession = errors.New("no stored session")

// Store persiste la sesión entre ejecuciones del CLI.
type Store interface {
	Load() (Session, error)
	Save(s Session) error
	Clear() error
	Close() error
}

const (
	boltBucketSession = "session" // key: "token" -> bearer token, "user" -> usuario
	boltKeyToken      = "token"
	boltKeyUser       = "user"
)

type BoltStore struct {
	db *bbolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketSession))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() (Session, error) {
	var token, user string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(boltBucketSession))
		if b == nil {
			return ErrNoSession
		}
		v := b.Get([]byte(boltKeyToken))
		if len(v) == 0 {
			return ErrNoSession
		}
		// v solo es válido dentro de la tx
		token = string(v)
		user = string(b.Get([]byte(boltKeyUser)))
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	return New(token).WithUser(user), nil
}

func (s *BoltStore) Save(sess Session) error {
	if !sess.Authenticated() {
		return errors.New("session: empty token")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(boltBucketSession))
		if err != nil {
			return err
		}
		if err := b.Put([]byte(boltKeyToken), []byte(sess.Token)); err != nil {
			return err
		}
		return b.Put([]byte(boltKeyUser), []byte(sess.User))
	})
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(boltBucketSession))
		if b == nil {
			return nil
		}
		if err := b.Delete([]byte(boltKeyToken)); err != nil {
			return err
		}
		return b.Delete([]byte(boltKeyUser))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
