package domain

import "time"

const DefaultCategory = "general"

type Link struct {
	ID          string
	Title       string
	URL         string
	Description string
	Category    string
	OwnerID     string
	IsPublic    bool
	ClickCount  int64 // only ever incremented, one per click
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastClicked *time.Time
}

// VisibleTo reports whether a may read l.
func (l Link) VisibleTo(a Account) bool {
	return l.IsPublic || l.OwnerID == a.ID || a.IsAdmin()
}

// MutableBy reports whether a may update or delete l.
func (l Link) MutableBy(a Account) bool {
	return l.OwnerID == a.ID || a.IsAdmin()
}

type NewLink struct {
	Title       string
	URL         string
	Description string
	Category    string
	IsPublic    bool
}

// LinkPatch is a partial update. ClickCount, CreatedAt and ID are never
// patchable; OwnerID may only be changed by an administrator.
type LinkPatch struct {
	Title       *string
	URL         *string
	Description *string
	Category    *string
	IsPublic    *bool
	OwnerID     *string
}

// Apply copies the set fields of p onto l.
func (l *Link) Apply(p LinkPatch, now time.Time) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.URL != nil {
		l.URL = *p.URL
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Category != nil {
		l.Category = *p.Category
		if l.Category == "" {
			l.Category = DefaultCategory
		}
	}
	if p.IsPublic != nil {
		l.IsPublic = *p.IsPublic
	}
	if p.OwnerID != nil {
		l.OwnerID = *p.OwnerID
	}
	l.UpdatedAt = now
}
