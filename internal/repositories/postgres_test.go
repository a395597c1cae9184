package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("boom")

	assert.NoError(t, translateError(nil))
	assert.Same(t, plain, translateError(plain))

	unknownIndex := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "other_key"}
	assert.Same(t, error(unknownIndex), translateError(unknownIndex))

	notUnique := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "accounts_email_key"}
	assert.Same(t, error(notUnique), translateError(notUnique))

	for index, want := range uniqueIndexErrors {
		err := translateError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: index})
		assert.ErrorIs(t, err, want, index)
	}
}

func TestRunMigrations(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	t.Run("success", func(t *testing.T) {
		var gotDir string
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			return nil
		}

		assert.NoError(t, RunMigrations(context.Background(), nil))
		assert.Equal(t, ".", gotDir)
	})

	t.Run("failure", func(t *testing.T) {
		migrateErr := errors.New("migration failed")
		gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return migrateErr
		}

		assert.ErrorIs(t, RunMigrations(context.Background(), nil), migrateErr)
	})
}
