package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrUsernameTaken and ErrEmailTaken wrap ErrAlreadyExists so callers can
	// tell which unique field collided.
	ErrUsernameTaken = fmt.Errorf("username: %w", ErrAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email: %w", ErrAlreadyExists)
)

// Store is the root data access interface. Concrete drivers (sqlite, bolt)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop anyone starting a transaction inside a transaction.
type Store interface {
	Accounts() Accounts
	Links() Links

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns nil
	// and rolling back otherwise. Every read-modify-write goes through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the backing database is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// ListAccounts returns every account ordered by creation time.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByUsername is an exact, case-sensitive match.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a; fails with ErrUsernameTaken or ErrEmailTaken.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateAccount overwrites every mutable column of the stored record with a.
	// Fails with ErrNotFound, ErrUsernameTaken or ErrEmailTaken.
	UpdateAccount(ctx context.Context, a domain.Account) error

	// DeleteAccount removes the account and every link it owns.
	DeleteAccount(ctx context.Context, id string) error

	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// CountAdmins returns how many accounts hold the admin role.
	CountAdmins(ctx context.Context) (int, error)
}

type Links interface {
	// ListLinks returns every link, newest first.
	ListLinks(ctx context.Context) ([]domain.Link, error)

	// ListLinksByOwner returns the owner's links, newest first.
	ListLinksByOwner(ctx context.Context, ownerID string) ([]domain.Link, error)

	// ListPublicLinks returns links flagged public, newest first.
	ListPublicLinks(ctx context.Context) ([]domain.Link, error)

	GetLinkByID(ctx context.Context, id string) (domain.Link, error)

	CreateLink(ctx context.Context, l domain.Link) error

	// UpdateLink overwrites the mutable columns of the stored link. ClickCount,
	// LastClicked and CreatedAt are left as stored.
	UpdateLink(ctx context.Context, l domain.Link) error

	DeleteLink(ctx context.Context, id string) error

	// IncrementClick atomically adds one to the click counter, stamps
	// lastClicked, and returns the updated link.
	IncrementClick(ctx context.Context, id string, at time.Time) (domain.Link, error)
}
