package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, username, email, password_hash, roles, two_factor_secret,
	two_factor_enabled, is_active, created_at, updated_at, last_login`

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		a                    domain.Account
		roles                string
		secret, lastLogin    sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &roles, &secret,
		&a.TwoFactorEnabled, &a.IsActive, &createdAt, &updatedAt, &lastLogin,
	); err != nil {
		return domain.Account{}, mapNotFound(err)
	}

	var err error
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Account{}, err
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Account{}, err
	}
	if a.LastLogin, err = parseOptionalTime(lastLogin); err != nil {
		return domain.Account{}, err
	}
	a.Roles = splitRoles(roles)
	a.TwoFactorSecret = mapNullStringPtr(secret)
	return a, nil
}

func (r *accountsRepo) getOne(ctx context.Context, where string, arg any) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE `+where+` = ?`, arg)
	return scanAccount(row)
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.getOne(ctx, "id", id)
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	return r.getOne(ctx, "username", username)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.getOne(ctx, "email", email)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Email, a.PasswordHash, joinRoles(a.Roles), mapOptionalString(a.TwoFactorSecret),
		a.TwoFactorEnabled, a.IsActive, formatTime(a.CreatedAt), formatTime(a.UpdatedAt), formatOptionalTime(a.LastLogin),
	)
	if err != nil {
		return fmt.Errorf("sqlite: create account: %w", mapConstraint(err))
	}
	return nil
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET
			username = ?, email = ?, password_hash = ?, roles = ?, two_factor_secret = ?,
			two_factor_enabled = ?, is_active = ?, updated_at = ?, last_login = ?
		WHERE id = ?`,
		a.Username, a.Email, a.PasswordHash, joinRoles(a.Roles), mapOptionalString(a.TwoFactorSecret),
		a.TwoFactorEnabled, a.IsActive, formatTime(a.UpdatedAt), formatOptionalTime(a.LastLogin),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: update account: %w", mapConstraint(err))
	}
	return requireAffected(res)
}

// DeleteAccount relies on ON DELETE CASCADE to remove the account's links.
func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *accountsRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET last_login = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *accountsRepo) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE (' ' || roles || ' ') LIKE '% admin %'`,
	).Scan(&n)
	return n, err
}
