package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/skins-api/internal/models"
)

const accountColumns = `id, username, email, password, session, about_me, profile_picture, created_at`

// AccountReadRepository looks up accounts. Lookups return (nil, nil) when no row matches.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByUsername matches username case-insensitively.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE LOWER(username) = LOWER($1)
		LIMIT 1
	`
	return r.get(ctx, query, []any{username}, username)
}

// GetByEmail matches the encrypted email exactly.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1
		LIMIT 1
	`
	return r.get(ctx, query, []any{email}, email)
}

// GetByCredentials matches both the encrypted email and the encrypted password.
func (r *AccountReadRepository) GetByCredentials(ctx context.Context, email, password string) (*models.Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1 AND password = $2
		LIMIT 1
	`
	return r.get(ctx, query, []any{email, password}, email, "***")
}

// GetBySession matches the stored session token exactly.
func (r *AccountReadRepository) GetBySession(ctx context.Context, session string) (*models.Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE session = $1
		LIMIT 1
	`
	return r.get(ctx, query, []any{session}, "***")
}

func (r *AccountReadRepository) get(ctx context.Context, query string, args []any, logArgs ...any) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, query, args...)

	found := err == nil
	logQuery(query, logArgs, found, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// AccountWriteRepository persists account changes.
type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Save inserts a new account.
func (r *AccountWriteRepository) Save(ctx context.Context, account *models.Account) error {
	const query = `
		INSERT INTO accounts (id, username, email, password, session, about_me, profile_picture, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{
		account.ID, account.Username, account.Email, account.Password,
		account.Session, account.AboutMe, account.ProfilePicture, account.CreatedAt,
	}
	return r.exec(ctx, query, args, []any{account.ID, account.Username})
}

// UpdateSession replaces the account's single active session token.
func (r *AccountWriteRepository) UpdateSession(ctx context.Context, id, session string) error {
	const query = `UPDATE accounts SET session = $2 WHERE id = $1`
	return r.exec(ctx, query, []any{id, session}, []any{id})
}

// UpdateEmail replaces the encrypted email.
func (r *AccountWriteRepository) UpdateEmail(ctx context.Context, id, email string) error {
	const query = `UPDATE accounts SET email = $2 WHERE id = $1`
	return r.exec(ctx, query, []any{id, email}, []any{id, email})
}

// UpdateProfile replaces username and about_me.
func (r *AccountWriteRepository) UpdateProfile(ctx context.Context, id, username, aboutMe string) error {
	const query = `UPDATE accounts SET username = $2, about_me = $3 WHERE id = $1`
	return r.exec(ctx, query, []any{id, username, aboutMe}, []any{id, username})
}

// exec runs a write and reports sql.ErrNoRows when nothing was touched.
func (r *AccountWriteRepository) exec(ctx context.Context, query string, args, logArgs []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, logArgs, rowsAffected, err)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
