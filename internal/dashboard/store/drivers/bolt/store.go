// Package bolt is a single-file key-value driver for the dashboard store.
// Accounts and links live in one bucket each as JSON records, with two
// secondary index buckets enforcing username and email uniqueness.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/store"
	"go.etcd.io/bbolt"
)

var (
	bucketAccounts   = []byte("accounts")
	bucketLinks      = []byte("links")
	bucketByUsername = []byte("accounts_by_username")
	bucketByEmail    = []byte("accounts_by_email")

	allBuckets = [][]byte{bucketAccounts, bucketLinks, bucketByUsername, bucketByEmail}
)

var errNoNestedTx = errors.New("bolt: nested transactions are not supported")

// runner executes fn against a bolt transaction. The root store opens a new
// View/Update per call; a txStore reuses its open transaction.
type runner func(writable bool, fn func(*bbolt.Tx) error) error

type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// ApplyMigrations creates any missing buckets.
func (s *Store) ApplyMigrations() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("bolt: create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (s *Store) Close() error { return s.db.Close() }

// Ping checks the file is open and the schema is in place.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if tx.Bucket(name) == nil {
				return fmt.Errorf("bolt: bucket %s missing", name)
			}
		}
		return nil
	})
}

func (s *Store) run(writable bool, fn func(*bbolt.Tx) error) error {
	if writable {
		return s.db.Update(fn)
	}
	return s.db.View(fn)
}

// Tx begins a writable transaction. bolt allows one writer at a time, so
// concurrent read-modify-write callers are serialized here.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := s.db.Begin(true)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // returns ErrTxClosed after a commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{run: s.run} }
func (s *Store) Links() store.Links       { return &linksRepo{run: s.run} }

type txStore struct {
	tx *bbolt.Tx
}

func (t *txStore) run(_ bool, fn func(*bbolt.Tx) error) error { return fn(t.tx) }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Accounts() store.Accounts { return &accountsRepo{run: t.run} }
func (t *txStore) Links() store.Links       { return &linksRepo{run: t.run} }

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, errNoNestedTx }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNoNestedTx
}

func bucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("bolt: bucket %s not found, migrations not applied", name)
	}
	return b, nil
}
