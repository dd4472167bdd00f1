package sqlite

import (
	"context"
	"database/sql"

	"github.com/prioritypro/prioritypro/internal/api/domain"
)

type accountsRepo struct {
	db *sql.DB
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	const query = `
		INSERT INTO accounts (id, username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.CreatedAt,
	)
	return mapErr(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE id = ?`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE email = ?`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE username = ?`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, username))
}

func (r *accountsRepo) scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		return domain.Account{}, mapErr(err)
	}
	return a, nil
}
