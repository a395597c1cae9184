package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
)

//go:generate mockgen -source=skin.go -destination=mock_skin.go -package=services

// fingerprintLength is the number of trailing ciphertext characters kept as a skin hash.
const fingerprintLength = 48

// Accepted skin dimensions.
const (
	skinWidth      = 64
	skinHeight     = 64
	skinHeightHalf = 32
)

// SkinReader defines read-only operations for skins.
type SkinReader interface {
	GetByHash(ctx context.Context, hash string) (*models.Skin, error)
	GetByTitle(ctx context.Context, title string) (*models.Skin, error)
}

// SkinWriter defines write operations for skins.
type SkinWriter interface {
	Save(ctx context.Context, skin *models.Skin) error
}

// SkinFileStore persists raw skin files.
type SkinFileStore interface {
	Save(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
}

// SkinService validates, deduplicates and stores uploaded skins.
type SkinService struct {
	reader SkinReader
	writer SkinWriter
	files  SkinFileStore
	codec  Encrypter
	events *EventPublisher
}

// NewSkinService creates a new SkinService instance.
func NewSkinService(
	reader SkinReader,
	writer SkinWriter,
	files SkinFileStore,
	codec Encrypter,
	events *EventPublisher,
) *SkinService {
	return &SkinService{
		reader: reader,
		writer: writer,
		files:  files,
		codec:  codec,
		events: events,
	}
}

// Upload runs an upload through the validation chain and stores it for owner.
// The first failing check decides the error. On success the new skin id is returned.
func (svc *SkinService) Upload(ctx context.Context, owner *models.Account, upload *models.SkinUpload) (string, error) {
	if len(upload.Data) == 0 {
		return "", ErrSkinMissing
	}
	if len(upload.Data) > MaxSkinSize {
		return "", ErrSkinTooLarge
	}
	if utf8.RuneCountInString(upload.Title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	if utf8.RuneCountInString(upload.Description) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}

	contentType, err := detectContentType(upload.Data)
	if err != nil {
		return "", err
	}

	width, height, err := decodeDimensions(upload.Data)
	if err != nil {
		return "", err
	}

	hash, err := Fingerprint(svc.codec, upload.Data)
	if err != nil {
		logger.Log.Errorw("failed to fingerprint skin", "err", err)
		return "", err
	}

	existing, err := svc.reader.GetByHash(ctx, hash)
	if err != nil {
		logger.Log.Errorw("failed to check skin hash", "err", err)
		return "", err
	}
	if existing != nil {
		return "", ErrSkinExists
	}

	existing, err = svc.reader.GetByTitle(ctx, upload.Title)
	if err != nil {
		logger.Log.Errorw("failed to check skin title", "err", err)
		return "", err
	}
	if existing != nil {
		return "", ErrTitleExists
	}

	skin := &models.Skin{
		ID:          uuid.NewString(),
		Hash:        hash,
		Title:       upload.Title,
		Description: upload.Description,
		Filename:    upload.Filename,
		Size:        len(upload.Data),
		Width:       width,
		Height:      height,
		ContentType: contentType,
		Owner:       owner.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := svc.files.Save(ctx, skin.ID, upload.Data); err != nil {
		logger.Log.Errorw("failed to write skin file", "skin_id", skin.ID, "err", err)
		return "", err
	}

	if err := svc.writer.Save(ctx, skin); err != nil {
		logger.Log.Errorw("failed to save skin", "skin_id", skin.ID, "err", err)
		if delErr := svc.files.Delete(ctx, skin.ID); delErr != nil {
			logger.Log.Errorw("failed to remove orphaned skin file", "skin_id", skin.ID, "err", delErr)
		}
		return "", skinWriteError(err)
	}

	svc.events.Publish(ctx, models.Event{Type: models.EventSkinUploaded, AccountID: owner.ID, SkinID: skin.ID})
	return skin.ID, nil
}

// Fingerprint derives the deduplication hash of a skin file: the trailing
// characters of the encrypted, lossily UTF-8 decoded file content. Invalid
// byte sequences decode to U+FFFD, so files differing only inside invalid
// sequences share a fingerprint.
func Fingerprint(codec Encrypter, data []byte) (string, error) {
	text, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}

	encrypted := codec.Encrypt(string(text))
	if len(encrypted) <= fingerprintLength {
		return encrypted, nil
	}
	return encrypted[len(encrypted)-fingerprintLength:], nil
}

func detectContentType(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is(models.ContentTypePNG):
		return models.ContentTypePNG, nil
	case mtype.Is(models.ContentTypeJPEG):
		return models.ContentTypeJPEG, nil
	default:
		logger.Log.Infow("rejected skin content type", "content_type", mtype.String())
		return "", ErrUnsupportedMediaType
	}
}

func decodeDimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		logger.Log.Infow("failed to decode skin dimensions", "err", err)
		return 0, 0, ErrInvalidDimensions
	}
	if cfg.Width != skinWidth || (cfg.Height != skinHeight && cfg.Height != skinHeightHalf) {
		return 0, 0, ErrInvalidDimensions
	}
	return cfg.Width, cfg.Height, nil
}

// skinWriteError maps unique index violations to the pre-check errors.
func skinWriteError(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateSkinHash):
		return ErrSkinExists
	case errors.Is(err, models.ErrDuplicateTitle):
		return ErrTitleExists
	default:
		return err
	}
}
