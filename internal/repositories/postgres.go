package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/migrations"
	"github.com/sbilibin2017/skins-api/internal/models"
)

// uniqueIndexErrors maps unique index names from the migrations to domain errors.
var uniqueIndexErrors = map[string]error{
	"accounts_username_lower_key": models.ErrDuplicateUsername,
	"accounts_email_key":          models.ErrDuplicateEmail,
	"accounts_session_key":        models.ErrDuplicateSession,
	"skins_hash_key":              models.ErrDuplicateSkinHash,
	"skins_title_lower_key":       models.ErrDuplicateTitle,
}

// translateError converts unique violations into the matching models.ErrDuplicate* error.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if mapped, ok := uniqueIndexErrors[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s", mapped, pgErr.Message)
		}
	}
	return err
}

// logQuery logs the query in a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
