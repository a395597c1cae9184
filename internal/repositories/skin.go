package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/skins-api/internal/models"
)

const skinColumns = `id, hash, title, description, filename, size, width, height, content_type, owner, created_at`

// SkinReadRepository looks up skin records. Single-row lookups return (nil, nil) when nothing matches.
type SkinReadRepository struct {
	db *sqlx.DB
}

func NewSkinReadRepository(db *sqlx.DB) *SkinReadRepository {
	return &SkinReadRepository{db: db}
}

// GetByHash matches the content fingerprint exactly.
func (r *SkinReadRepository) GetByHash(ctx context.Context, hash string) (*models.Skin, error) {
	const query = `
		SELECT ` + skinColumns + `
		FROM skins
		WHERE hash = $1
		LIMIT 1
	`
	return r.get(ctx, query, hash)
}

// GetByTitle matches the title case-insensitively.
func (r *SkinReadRepository) GetByTitle(ctx context.Context, title string) (*models.Skin, error) {
	const query = `
		SELECT ` + skinColumns + `
		FROM skins
		WHERE LOWER(title) = LOWER($1)
		LIMIT 1
	`
	return r.get(ctx, query, title)
}

// ListByOwner returns the owner's skins, oldest first.
func (r *SkinReadRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Skin, error) {
	const query = `
		SELECT ` + skinColumns + `
		FROM skins
		WHERE owner = $1
		ORDER BY created_at, id
	`

	var skins []models.Skin
	err := r.db.SelectContext(ctx, &skins, query, ownerID)

	logQuery(query, []any{ownerID}, len(skins), err)

	if err != nil {
		return nil, err
	}
	return skins, nil
}

func (r *SkinReadRepository) get(ctx context.Context, query string, arg string) (*models.Skin, error) {
	var skin models.Skin
	err := r.db.GetContext(ctx, &skin, query, arg)

	logQuery(query, []any{arg}, err == nil, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skin, nil
}

// SkinWriteRepository persists skin records.
type SkinWriteRepository struct {
	db *sqlx.DB
}

func NewSkinWriteRepository(db *sqlx.DB) *SkinWriteRepository {
	return &SkinWriteRepository{db: db}
}

// Save inserts a new skin record.
func (r *SkinWriteRepository) Save(ctx context.Context, skin *models.Skin) error {
	const query = `
		INSERT INTO skins (id, hash, title, description, filename, size, width, height, content_type, owner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	args := []any{
		skin.ID, skin.Hash, skin.Title, skin.Description, skin.Filename, skin.Size,
		skin.Width, skin.Height, skin.ContentType, skin.Owner, skin.CreatedAt,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{skin.ID, skin.Hash, skin.Title, skin.Owner}, rowsAffected, err)

	return translateError(err)
}
