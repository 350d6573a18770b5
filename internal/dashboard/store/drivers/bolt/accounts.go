package bolt

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"go.etcd.io/bbolt"
)

type accountsRepo struct {
	run runner
}

func getAccount(tx *bbolt.Tx, id string) (domain.Account, error) {
	b, err := bucket(tx, bucketAccounts)
	if err != nil {
		return domain.Account{}, err
	}
	data := b.Get([]byte(id))
	if data == nil {
		return domain.Account{}, store.ErrNotFound
	}
	return decodeAccount(data)
}

func putAccount(tx *bbolt.Tx, a domain.Account) error {
	b, err := bucket(tx, bucketAccounts)
	if err != nil {
		return err
	}
	data, err := encodeAccount(a)
	if err != nil {
		return err
	}
	return b.Put([]byte(a.ID), data)
}

// lookupIndex resolves a unique-index key to an account id.
func lookupIndex(tx *bbolt.Tx, index []byte, key string) (string, error) {
	b, err := bucket(tx, index)
	if err != nil {
		return "", err
	}
	id := b.Get([]byte(key))
	if id == nil {
		return "", store.ErrNotFound
	}
	return string(id), nil
}

// claimIndex points key at id, failing with taken if another account holds it.
func claimIndex(tx *bbolt.Tx, index []byte, key, id string, taken error) error {
	b, err := bucket(tx, index)
	if err != nil {
		return err
	}
	if cur := b.Get([]byte(key)); cur != nil && !bytes.Equal(cur, []byte(id)) {
		return taken
	}
	return b.Put([]byte(key), []byte(id))
}

func releaseIndex(tx *bbolt.Tx, index []byte, key string) error {
	b, err := bucket(tx, index)
	if err != nil {
		return err
	}
	return b.Delete([]byte(key))
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	out := []domain.Account{}
	err := r.run(false, func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		return b.ForEach(func(_, v []byte) error {
			a, err := decodeAccount(v)
			if err != nil {
				return err
			}
			out = append(out, a)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b domain.Account) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	var a domain.Account
	err := r.run(false, func(tx *bbolt.Tx) error {
		var err error
		a, err = getAccount(tx, id)
		return err
	})
	return a, err
}

func (r *accountsRepo) getByIndex(index []byte, key string) (domain.Account, error) {
	var a domain.Account
	err := r.run(false, func(tx *bbolt.Tx) error {
		id, err := lookupIndex(tx, index, key)
		if err != nil {
			return err
		}
		a, err = getAccount(tx, id)
		return err
	})
	return a, err
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	return r.getByIndex(bucketByUsername, username)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getByIndex(bucketByEmail, email)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		if _, err := getAccount(tx, a.ID); err == nil {
			return store.ErrAlreadyExists
		}
		if err := claimIndex(tx, bucketByUsername, a.Username, a.ID, store.ErrUsernameTaken); err != nil {
			return err
		}
		if err := claimIndex(tx, bucketByEmail, a.Email, a.ID, store.ErrEmailTaken); err != nil {
			return err
		}
		return putAccount(tx, a)
	})
}

// UpdateAccount keeps the stored CreatedAt and moves index entries when the
// username or email changes.
func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		cur, err := getAccount(tx, a.ID)
		if err != nil {
			return err
		}

		if cur.Username != a.Username {
			if err := claimIndex(tx, bucketByUsername, a.Username, a.ID, store.ErrUsernameTaken); err != nil {
				return err
			}
			if err := releaseIndex(tx, bucketByUsername, cur.Username); err != nil {
				return err
			}
		}
		if cur.Email != a.Email {
			if err := claimIndex(tx, bucketByEmail, a.Email, a.ID, store.ErrEmailTaken); err != nil {
				return err
			}
			if err := releaseIndex(tx, bucketByEmail, cur.Email); err != nil {
				return err
			}
		}

		a.CreatedAt = cur.CreatedAt
		return putAccount(tx, a)
	})
}

// DeleteAccount removes the account, its index entries and every link it owns.
func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		cur, err := getAccount(tx, id)
		if err != nil {
			return err
		}
		if err := releaseIndex(tx, bucketByUsername, cur.Username); err != nil {
			return err
		}
		if err := releaseIndex(tx, bucketByEmail, cur.Email); err != nil {
			return err
		}
		if err := deleteLinksOwnedBy(tx, id); err != nil {
			return err
		}

		b, err := bucket(tx, bucketAccounts)
		if err != nil {
			return err
		}
		return b.Delete([]byte(id))
	})
}

func (r *accountsRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		a, err := getAccount(tx, id)
		if err != nil {
			return err
		}
		a.LastLogin = &at
		return putAccount(tx, a)
	})
}

func (r *accountsRepo) CountAdmins(ctx context.Context) (int, error) {
	accounts, err := r.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, a := range accounts {
		if a.IsAdmin() {
			n++
		}
	}
	return n, nil
}
