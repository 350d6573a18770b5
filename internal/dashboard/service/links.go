package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/slogx"
)

type LinkService struct {
	Store store.Store
	Clock Clock
}

// LinkFilter narrows a listing. Category wins over IncludePublic.
type LinkFilter struct {
	Category      string
	IncludePublic bool
}

// List returns links for actor, newest first:
//   - with Category: links in that category that are the actor's own or public
//   - with IncludePublic: the actor's own links merged with every public link
//   - otherwise: only the actor's own links
func (s *LinkService) List(ctx context.Context, actor domain.Account, f LinkFilter) ([]domain.Link, error) {
	links := s.Store.Links()
	switch {
	case f.Category != "":
		all, err := links.ListLinks(ctx)
		if err != nil {
			return nil, err
		}
		return filterLinks(all, func(l domain.Link) bool {
			return l.Category == f.Category && (l.OwnerID == actor.ID || l.IsPublic)
		}), nil

	case f.IncludePublic:
		own, err := links.ListLinksByOwner(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		public, err := links.ListPublicLinks(ctx)
		if err != nil {
			return nil, err
		}
		return mergeLinks(own, public), nil

	default:
		return links.ListLinksByOwner(ctx, actor.ID)
	}
}

// ListPublic serves the unauthenticated listing. When actor is non-nil and a
// category is given, the actor's private links in that category are included.
func (s *LinkService) ListPublic(ctx context.Context, actor *domain.Account, category string) ([]domain.Link, error) {
	if category == "" {
		return s.Store.Links().ListPublicLinks(ctx)
	}
	all, err := s.Store.Links().ListLinks(ctx)
	if err != nil {
		return nil, err
	}
	return filterLinks(all, func(l domain.Link) bool {
		if l.Category != category {
			return false
		}
		return l.IsPublic || (actor != nil && l.OwnerID == actor.ID)
	}), nil
}

// ListAll is the admin view of every link.
func (s *LinkService) ListAll(ctx context.Context) ([]domain.Link, error) {
	return s.Store.Links().ListLinks(ctx)
}

// Get returns the link if actor may see it: owner, admin, or public.
func (s *LinkService) Get(ctx context.Context, actor domain.Account, id string) (domain.Link, error) {
	l, err := s.Store.Links().GetLinkByID(ctx, id)
	if err != nil {
		return domain.Link{}, mapStoreErr(err)
	}
	if !l.VisibleTo(actor) {
		return domain.Link{}, ErrForbidden
	}
	return l, nil
}

func (s *LinkService) Create(ctx context.Context, actor domain.Account, in domain.NewLink) (domain.Link, error) {
	var v domain.Validator
	v.Title(in.Title)
	v.URL(in.URL)
	v.Description(in.Description)
	v.Category(in.Category)
	if err := v.Err(); err != nil {
		return domain.Link{}, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	now := s.Clock.now()
	l := domain.Link{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		URL:         in.URL,
		Description: strings.TrimSpace(in.Description),
		Category:    category,
		OwnerID:     actor.ID,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Links().CreateLink(ctx, l); err != nil {
		return domain.Link{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("link created", slog.String("link_id", l.ID), slog.String("owner_id", l.OwnerID))
	return l, nil
}

// Update applies p for the owner or an admin. Only admins may move a link
// to another owner.
func (s *LinkService) Update(ctx context.Context, actor domain.Account, id string, p domain.LinkPatch) (domain.Link, error) {
	if err := validateLinkPatch(p); err != nil {
		return domain.Link{}, err
	}
	if p.Title != nil {
		p.Title = trimmed(*p.Title)
	}
	if p.Description != nil {
		p.Description = trimmed(*p.Description)
	}
	if p.Category != nil {
		p.Category = trimmed(*p.Category)
	}

	var out domain.Link
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		l, err := tx.Links().GetLinkByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}
		if !l.MutableBy(actor) {
			return ErrForbidden
		}

		if p.OwnerID != nil && *p.OwnerID != l.OwnerID {
			if !actor.IsAdmin() {
				return ErrForbidden
			}
			if _, err := tx.Accounts().GetAccountByID(ctx, *p.OwnerID); errors.Is(err, store.ErrNotFound) {
				var v domain.Validator
				v.Add("ownerId", "Owner does not exist")
				return v.Err()
			} else if err != nil {
				return err
			}
		}

		l.Apply(p, s.Clock.now())
		if err := tx.Links().UpdateLink(ctx, l); err != nil {
			return mapStoreErr(err)
		}
		out = l
		return nil
	})
	if err != nil {
		return domain.Link{}, err
	}
	return out, nil
}

// Delete removes the link for the owner or an admin.
func (s *LinkService) Delete(ctx context.Context, actor domain.Account, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		l, err := tx.Links().GetLinkByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}
		if !l.MutableBy(actor) {
			return ErrForbidden
		}
		return mapStoreErr(tx.Links().DeleteLink(ctx, id))
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("link deleted", slog.String("link_id", id))
	return nil
}

// Click counts one visit and returns the updated link. The actor must be
// able to see the link.
func (s *LinkService) Click(ctx context.Context, actor domain.Account, id string) (domain.Link, error) {
	var out domain.Link
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		l, err := tx.Links().GetLinkByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}
		if !l.VisibleTo(actor) {
			return ErrForbidden
		}
		out, err = tx.Links().IncrementClick(ctx, id, s.Clock.now())
		return mapStoreErr(err)
	})
	return out, err
}

func validateLinkPatch(p domain.LinkPatch) error {
	var v domain.Validator
	if p.Title != nil {
		v.Title(*p.Title)
	}
	if p.URL != nil {
		v.URL(*p.URL)
	}
	if p.Description != nil {
		v.Description(*p.Description)
	}
	if p.Category != nil {
		v.Category(*p.Category)
	}
	return v.Err()
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

func filterLinks(links []domain.Link, keep func(domain.Link) bool) []domain.Link {
	out := []domain.Link{}
	for _, l := range links {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// mergeLinks unions two newest-first lists, dropping duplicates by id.
func mergeLinks(a, b []domain.Link) []domain.Link {
	out := make([]domain.Link, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, l := range slices.Concat(a, b) {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(links []domain.Link) {
	slices.SortStableFunc(links, func(x, y domain.Link) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(y.ID, x.ID)
	})
}
