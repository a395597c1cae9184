package models

import "time"

// Supported skin content types.
const (
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
)

// Skin represents a stored skin record in the database.
type Skin struct {
	ID          string    `db:"id"`
	Hash        string    `db:"hash"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Filename    string    `db:"filename"`
	Size        int       `db:"size"`
	Width       int       `db:"width"`
	Height      int       `db:"height"`
	ContentType string    `db:"content_type"`
	Owner       string    `db:"owner"`
	CreatedAt   time.Time `db:"created_at"`
}

// SkinUpload is the collected multipart form of an upload request.
type SkinUpload struct {
	Title       string
	Description string
	Filename    string
	Data        []byte
}

// ImageMetadata describes a decoded skin image.
type ImageMetadata struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"content_type"`
}

// SkinMetadata is a tagged variant; Image is currently the only kind.
type SkinMetadata struct {
	Image *ImageMetadata `json:"Image,omitempty"`
}

// SkinView is the public representation of a skin.
// swagger:model SkinView
type SkinView struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Owner       string       `json:"owner"`
	Filename    string       `json:"filename"`
	Size        int          `json:"size"`
	Metadata    SkinMetadata `json:"metadata"`
}

// View converts a stored skin into its public representation.
func (s Skin) View() SkinView {
	return SkinView{
		ID:          s.ID,
		Date:        s.CreatedAt,
		Title:       s.Title,
		Description: s.Description,
		Owner:       s.Owner,
		Filename:    s.Filename,
		Size:        s.Size,
		Metadata: SkinMetadata{
			Image: &ImageMetadata{
				Width:       s.Width,
				Height:      s.Height,
				ContentType: s.ContentType,
			},
		},
	}
}
