package bolt

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"go.etcd.io/bbolt"
)

type linksRepo struct {
	run runner
}

func getLink(tx *bbolt.Tx, id string) (domain.Link, error) {
	b, err := bucket(tx, bucketLinks)
	if err != nil {
		return domain.Link{}, err
	}
	data := b.Get([]byte(id))
	if data == nil {
		return domain.Link{}, store.ErrNotFound
	}
	return decodeLink(data)
}

func putLink(tx *bbolt.Tx, l domain.Link) error {
	b, err := bucket(tx, bucketLinks)
	if err != nil {
		return err
	}
	data, err := encodeLink(l)
	if err != nil {
		return err
	}
	return b.Put([]byte(l.ID), data)
}

// deleteLinksOwnedBy collects matching keys first; bolt forbids mutating a
// bucket while iterating it.
func deleteLinksOwnedBy(tx *bbolt.Tx, ownerID string) error {
	b, err := bucket(tx, bucketLinks)
	if err != nil {
		return err
	}
	var doomed [][]byte
	err = b.ForEach(func(k, v []byte) error {
		l, err := decodeLink(v)
		if err != nil {
			return err
		}
		if l.OwnerID == ownerID {
			doomed = append(doomed, slices.Clone(k))
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, k := range doomed {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (r *linksRepo) filter(keep func(domain.Link) bool) ([]domain.Link, error) {
	out := []domain.Link{}
	err := r.run(false, func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketLinks)
		if err != nil {
			return err
		}
		return b.ForEach(func(_, v []byte) error {
			l, err := decodeLink(v)
			if err != nil {
				return err
			}
			if keep(l) {
				out = append(out, l)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b domain.Link) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *linksRepo) ListLinks(ctx context.Context) ([]domain.Link, error) {
	return r.filter(func(domain.Link) bool { return true })
}

func (r *linksRepo) ListLinksByOwner(ctx context.Context, ownerID string) ([]domain.Link, error) {
	return r.filter(func(l domain.Link) bool { return l.OwnerID == ownerID })
}

func (r *linksRepo) ListPublicLinks(ctx context.Context) ([]domain.Link, error) {
	return r.filter(func(l domain.Link) bool { return l.IsPublic })
}

func (r *linksRepo) GetLinkByID(ctx context.Context, id string) (domain.Link, error) {
	var l domain.Link
	err := r.run(false, func(tx *bbolt.Tx) error {
		var err error
		l, err = getLink(tx, id)
		return err
	})
	return l, err
}

// CreateLink requires the owner to exist, mirroring the sqlite foreign key.
func (r *linksRepo) CreateLink(ctx context.Context, l domain.Link) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		if _, err := getLink(tx, l.ID); err == nil {
			return store.ErrAlreadyExists
		}
		if _, err := getAccount(tx, l.OwnerID); err != nil {
			return err
		}
		return putLink(tx, l)
	})
}

func (r *linksRepo) UpdateLink(ctx context.Context, l domain.Link) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		cur, err := getLink(tx, l.ID)
		if err != nil {
			return err
		}
		if l.OwnerID != cur.OwnerID {
			if _, err := getAccount(tx, l.OwnerID); err != nil {
				return err
			}
		}
		l.ClickCount = cur.ClickCount
		l.LastClicked = cur.LastClicked
		l.CreatedAt = cur.CreatedAt
		return putLink(tx, l)
	})
}

func (r *linksRepo) DeleteLink(ctx context.Context, id string) error {
	return r.run(true, func(tx *bbolt.Tx) error {
		if _, err := getLink(tx, id); err != nil {
			return err
		}
		b, err := bucket(tx, bucketLinks)
		if err != nil {
			return err
		}
		return b.Delete([]byte(id))
	})
}

func (r *linksRepo) IncrementClick(ctx context.Context, id string, at time.Time) (domain.Link, error) {
	var l domain.Link
	err := r.run(true, func(tx *bbolt.Tx) error {
		var err error
		if l, err = getLink(tx, id); err != nil {
			return err
		}
		l.ClickCount++
		l.LastClicked = &at
		return putLink(tx, l)
	})
	return l, err
}
