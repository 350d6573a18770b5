package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
)

type linksRepo struct {
	db dbtx
}

const linkColumns = `id, title, url, description, category, owner_id, is_public,
	click_count, created_at, updated_at, last_clicked`

const newestFirst = ` ORDER BY created_at DESC, id DESC`

func scanLink(row rowScanner) (domain.Link, error) {
	var (
		l                    domain.Link
		createdAt, updatedAt string
		lastClicked          sql.NullString
	)
	if err := row.Scan(
		&l.ID, &l.Title, &l.URL, &l.Description, &l.Category, &l.OwnerID, &l.IsPublic,
		&l.ClickCount, &createdAt, &updatedAt, &lastClicked,
	); err != nil {
		return domain.Link{}, mapNotFound(err)
	}

	var err error
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Link{}, err
	}
	if l.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Link{}, err
	}
	if l.LastClicked, err = parseOptionalTime(lastClicked); err != nil {
		return domain.Link{}, err
	}
	return l, nil
}

func (r *linksRepo) list(ctx context.Context, query string, args ...any) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *linksRepo) ListLinks(ctx context.Context) ([]domain.Link, error) {
	return r.list(ctx, `SELECT `+linkColumns+` FROM links`+newestFirst)
}

func (r *linksRepo) ListLinksByOwner(ctx context.Context, ownerID string) ([]domain.Link, error) {
	return r.list(ctx, `SELECT `+linkColumns+` FROM links WHERE owner_id = ?`+newestFirst, ownerID)
}

func (r *linksRepo) ListPublicLinks(ctx context.Context) ([]domain.Link, error) {
	return r.list(ctx, `SELECT `+linkColumns+` FROM links WHERE is_public = 1`+newestFirst)
}

func (r *linksRepo) GetLinkByID(ctx context.Context, id string) (domain.Link, error) {
	return scanLink(r.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ?`, id))
}

func (r *linksRepo) CreateLink(ctx context.Context, l domain.Link) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO links (`+linkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Title, l.URL, l.Description, l.Category, l.OwnerID, l.IsPublic,
		l.ClickCount, formatTime(l.CreatedAt), formatTime(l.UpdatedAt), formatOptionalTime(l.LastClicked),
	)
	if err != nil {
		return fmt.Errorf("sqlite: create link: %w", mapConstraint(err))
	}
	return nil
}

func (r *linksRepo) UpdateLink(ctx context.Context, l domain.Link) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE links SET
			title = ?, url = ?, description = ?, category = ?, owner_id = ?, is_public = ?, updated_at = ?
		WHERE id = ?`,
		l.Title, l.URL, l.Description, l.Category, l.OwnerID, l.IsPublic, formatTime(l.UpdatedAt),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: update link: %w", mapConstraint(err))
	}
	return requireAffected(res)
}

func (r *linksRepo) DeleteLink(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *linksRepo) IncrementClick(ctx context.Context, id string, at time.Time) (domain.Link, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE links SET click_count = click_count + 1, last_clicked = ?
		WHERE id = ?
		RETURNING `+linkColumns,
		formatTime(at), id,
	)
	return scanLink(row)
}
