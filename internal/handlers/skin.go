package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"unicode/utf8"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

//go:generate mockgen -source=skin.go -destination=mock_skin.go -package=handlers

// DefaultMaxUploadBodyBytes bounds an upload request body.
const DefaultMaxUploadBodyBytes int64 = 1 << 20

// Multipart field names of an upload.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldSkin        = "skin"
)

// SkinUploader stores uploaded skins.
type SkinUploader interface {
	Upload(ctx context.Context, owner *models.Account, upload *models.SkinUpload) (string, error)
}

// uploadStatuses maps pipeline failures to HTTP statuses.
var uploadStatuses = map[error]int{
	services.ErrSkinMissing:          http.StatusBadRequest,
	services.ErrSkinTooLarge:         http.StatusRequestEntityTooLarge,
	services.ErrTitleTooLong:         http.StatusForbidden,
	services.ErrDescriptionTooLong:   http.StatusForbidden,
	services.ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
	services.ErrInvalidDimensions:    http.StatusBadRequest,
	services.ErrSkinExists:           http.StatusConflict,
	services.ErrTitleExists:          http.StatusConflict,
}

// NewUploadSkinHandler returns an HTTP handler for skin uploads.
// @Summary Upload skin
// @Description Validates size, title, description, content type and dimensions, rejects duplicate content and titles, then stores the skin.
// @Tags skins
// @Accept multipart/form-data
// @Produce json
// @Param x-session header string true "Session token"
// @Param title formData string false "Title, at most 16 characters"
// @Param description formData string false "Description, at most 256 characters"
// @Param skin formData file true "64x64 or 64x32 png or jpeg, at most 5000 bytes"
// @Success 200 {object} models.UploadResponse
// @Failure 400 {object} models.StatusResponse
// @Failure 401 {object} models.StatusResponse
// @Failure 403 {object} models.StatusResponse
// @Failure 409 {object} models.StatusResponse
// @Failure 413 {object} models.StatusResponse
// @Failure 415 {object} models.StatusResponse
// @Failure 500 {object} models.StatusResponse
// @Router /v1/skins/upload [put]
func NewUploadSkinHandler(svc SkinUploader, accountGetter AccountGetter, maxBodyBytes int64) http.HandlerFunc {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxUploadBodyBytes
	}

	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := accountGetter(r.Context())
		if !ok {
			writeStatus(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		upload, err := readUpload(r)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				msg, _ := clientMessage(services.ErrSkinTooLarge)
				writeStatus(w, http.StatusRequestEntityTooLarge, msg)
				return
			}
			logger.Log.Infow("malformed upload", "err", err)
			writeStatus(w, http.StatusBadRequest, msgBadForm)
			return
		}

		id, err := svc.Upload(r.Context(), account, upload)
		if err != nil {
			msg, _ := clientMessage(err)
			for target, status := range uploadStatuses {
				if errors.Is(err, target) {
					writeStatus(w, status, msg)
					return
				}
			}
			logger.Log.Errorw("failed to upload skin", "account_id", account.ID, "err", err)
			writeStatus(w, http.StatusInternalServerError, msg)
			return
		}

		writeJSON(w, http.StatusOK, models.UploadResponse{
			Status:  http.StatusOK,
			Success: true,
			Skin:    id,
		})
	}
}

// readUpload collects the multipart fields of an upload. Unknown fields are
// skipped; repeated skin parts are concatenated.
func readUpload(r *http.Request) (*models.SkinUpload, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	upload := &models.SkinUpload{}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return upload, nil
		}
		if err != nil {
			return nil, err
		}

		if err := readPart(part, upload); err != nil {
			return nil, err
		}
	}
}

func readPart(part *multipart.Part, upload *models.SkinUpload) error {
	defer part.Close()

	switch part.FormName() {
	case fieldTitle, fieldDescription:
		data, err := io.ReadAll(part)
		if err != nil {
			return err
		}
		if !utf8.Valid(data) {
			return errors.New("form field is not valid utf-8")
		}
		if part.FormName() == fieldTitle {
			upload.Title = string(data)
		} else {
			upload.Description = string(data)
		}
	case fieldSkin:
		data, err := io.ReadAll(part)
		if err != nil {
			return err
		}
		upload.Data = append(upload.Data, data...)
		upload.Filename = part.FileName()
	default:
		if _, err := io.Copy(io.Discard, part); err != nil {
			return err
		}
	}
	return nil
}
