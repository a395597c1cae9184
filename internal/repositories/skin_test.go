package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/skins-api/internal/models"
)

var skinCols = []string{"id", "hash", "title", "description", "filename", "size", "width", "height", "content_type", "owner", "created_at"}

func TestSkinReadRepository_GetByHash(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSkinReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE hash = $1")).
			WithArgs("fingerprint").
			WillReturnRows(sqlmock.NewRows(skinCols).
				AddRow("skin-1", "fingerprint", "Cool", "desc", "cool.png", 1200, 64, 64, "image/png", "owner-1", created))

		skin, err := repo.GetByHash(context.Background(), "fingerprint")
		require.NoError(t, err)
		require.NotNil(t, skin)
		assert.Equal(t, "skin-1", skin.ID)
		assert.Equal(t, 1200, skin.Size)
		assert.Equal(t, "image/png", skin.ContentType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSkinReadRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE hash = $1")).
			WithArgs("fingerprint").
			WillReturnRows(sqlmock.NewRows(skinCols))

		skin, err := repo.GetByHash(context.Background(), "fingerprint")
		assert.NoError(t, err)
		assert.Nil(t, skin)
	})
}

func TestSkinReadRepository_GetByTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkinReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(title) = LOWER($1)")).
		WithArgs("COOL").
		WillReturnError(sql.ErrConnDone)

	skin, err := repo.GetByTitle(context.Background(), "COOL")
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Nil(t, skin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkinReadRepository_ListByOwner(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	repo := NewSkinReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner = $1")).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(skinCols).
			AddRow("skin-1", "h1", "One", "", "one.png", 100, 64, 32, "image/png", "owner-1", created).
			AddRow("skin-2", "h2", "Two", "", "two.jpg", 200, 64, 64, "image/jpeg", "owner-1", created))

	skins, err := repo.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, skins, 2)
	assert.Equal(t, "skin-1", skins[0].ID)
	assert.Equal(t, 32, skins[0].Height)
	assert.Equal(t, "image/jpeg", skins[1].ContentType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkinWriteRepository_Save(t *testing.T) {
	skin := &models.Skin{
		ID:          "skin-1",
		Hash:        "fingerprint",
		Title:       "Cool",
		Description: "desc",
		Filename:    "cool.png",
		Size:        1200,
		Width:       64,
		Height:      64,
		ContentType: "image/png",
		Owner:       "owner-1",
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "duplicate hash",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "skins_hash_key"},
			wantErr: models.ErrDuplicateSkinHash,
		},
		{
			name:    "duplicate title",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "skins_title_lower_key"},
			wantErr: models.ErrDuplicateTitle,
		},
		{
			name:    "other error",
			err:     sql.ErrConnDone,
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSkinWriteRepository(db)

			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO skins")).
				WithArgs(skin.ID, skin.Hash, skin.Title, skin.Description, skin.Filename, skin.Size,
					skin.Width, skin.Height, skin.ContentType, skin.Owner, skin.CreatedAt)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Save(context.Background(), skin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
